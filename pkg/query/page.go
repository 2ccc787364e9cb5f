package query

import (
	"fmt"
	"strings"

	"recipe-api/domain"

	"gorm.io/gorm"
)

type PageRequest struct {
	SortBy string
	Order  string
	Page   int
	Size   int
}

// NewPageRequest converts the transport-level search request.
func NewPageRequest(req domain.SearchRequest) PageRequest {
	return PageRequest{
		SortBy: req.SortBy,
		Order:  req.Order,
		Page:   req.Page,
		Size:   req.Size,
	}
}

type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// MapPage projects every element of p with fn, keeping the paging metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return Page[U]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// Where applies f to db.
func Where(db *gorm.DB, f Filter, columns Columns) (*gorm.DB, error) {
	sql, args, err := Compile(f, columns)
	if err != nil {
		return nil, err
	}
	if sql == "" {
		return db, nil
	}
	return db.Where(sql, args...), nil
}

// OrderBy returns the ORDER BY clause for sortBy/order. The primary key is
// always appended so equal sort values page deterministically.
func OrderBy(columns Columns, sortBy, order, pk string) (string, error) {
	col, ok := columns.column(sortBy)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidSort, sortBy)
	}
	dir := "ASC"
	switch strings.ToLower(order) {
	case "", domain.SortAsc:
	case domain.SortDesc:
		dir = "DESC"
	default:
		return "", fmt.Errorf("%w: order %q", domain.ErrInvalidSort, order)
	}
	clause := col + " " + dir
	if pk != "" && col != pk {
		clause += ", " + pk + " ASC"
	}
	return clause, nil
}

func withPreloads(db *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		db = db.Preload(p)
	}
	return db
}

// FindAll returns every T matching f, with the named associations preloaded.
func FindAll[T any](db *gorm.DB, f Filter, columns Columns, preloads ...string) ([]*T, error) {
	q, err := Where(db.Model(new(T)), f, columns)
	if err != nil {
		return nil, err
	}
	var out []*T
	if err := withPreloads(q, preloads).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindPage counts the records matching f and loads the requested slice.
// pk names the primary key column used as a sort tiebreaker; preloads are only
// applied to the content query.
func FindPage[T any](db *gorm.DB, f Filter, columns Columns, pk string, req PageRequest, preloads ...string) (Page[T], error) {
	if req.Page < 0 || req.Size <= 0 {
		return Page[T]{}, domain.ErrInvalidPaging
	}

	order, err := OrderBy(columns, req.SortBy, req.Order, pk)
	if err != nil {
		return Page[T]{}, err
	}

	q, err := Where(db.Model(new(T)), f, columns)
	if err != nil {
		return Page[T]{}, err
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	var content []T
	if err := withPreloads(q.Session(&gorm.Session{}), preloads).
		Order(order).
		Offset(req.Page * req.Size).
		Limit(req.Size).
		Find(&content).Error; err != nil {
		return Page[T]{}, err
	}

	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    int((total + int64(req.Size) - 1) / int64(req.Size)),
	}, nil
}
