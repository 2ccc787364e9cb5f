package category

import (
	"context"
	"errors"
	"strings"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/pkg/guard"
	"recipe-api/pkg/query"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		FindAll(ctx context.Context) ([]domain.CategoryResponse, error)
		FindByID(ctx context.Context, id string) (domain.CategoryResponse, error)
		Create(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error)
		Update(ctx context.Context, id string, req domain.CategoryRequest) (domain.CategoryResponse, error)
		Delete(ctx context.Context, id string) error
		Search(ctx context.Context, keyword string) ([]domain.CategoryResponse, error)
		SearchPage(ctx context.Context, req domain.SearchRequest) (query.Page[domain.CategoryResponse], error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

// ToCategoryResponse projects a stored category.
func ToCategoryResponse(c *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
	}
}

func toResponses(categories []*entities.Category) []domain.CategoryResponse {
	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, ToCategoryResponse(c))
	}
	return res
}

func (s *categoryService) FindAll(ctx context.Context) ([]domain.CategoryResponse, error) {
	return s.Search(ctx, "")
}

func (s *categoryService) FindByID(ctx context.Context, id string) (domain.CategoryResponse, error) {
	categoryID, err := domain.ParseID(id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	category, err := s.categoryRepository.FindByID(ctx, categoryID)
	if err != nil {
		return domain.CategoryResponse{}, query.StoreError("find category", notFound(err))
	}
	return ToCategoryResponse(category), nil
}

func (s *categoryService) Create(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CategoryResponse{}, domain.ErrNameRequired
	}

	category := &entities.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: req.Description,
	}

	err := s.categoryRepository.Transaction(ctx, func(repo CategoryRepository) error {
		if err := s.assertUnique(ctx, repo, name, uuid.Nil); err != nil {
			return err
		}
		return repo.Create(ctx, category)
	})
	if err != nil {
		return domain.CategoryResponse{}, query.StoreError("create category", err)
	}

	log.Infow("category created", "id", category.ID, "name", category.Name)
	return ToCategoryResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, id string, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	categoryID, err := domain.ParseID(id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CategoryResponse{}, domain.ErrNameRequired
	}

	var updated *entities.Category
	err = s.categoryRepository.Transaction(ctx, func(repo CategoryRepository) error {
		current, err := repo.FindByID(ctx, categoryID)
		if err != nil {
			return notFound(err)
		}
		if err := s.assertUnique(ctx, repo, name, categoryID); err != nil {
			return err
		}

		next := *current
		next.Name = name
		next.Description = req.Description
		if err := repo.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return domain.CategoryResponse{}, query.StoreError("update category", err)
	}
	return ToCategoryResponse(updated), nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	categoryID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	err = s.categoryRepository.Transaction(ctx, func(repo CategoryRepository) error {
		if _, err := repo.FindByID(ctx, categoryID); err != nil {
			return notFound(err)
		}
		return repo.Delete(ctx, categoryID)
	})
	return query.StoreError("delete category", err)
}

func (s *categoryService) Search(ctx context.Context, keyword string) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.FindAll(ctx, query.KeywordFilter(keyword, SearchFields...))
	if err != nil {
		return nil, query.StoreError("search categories", err)
	}
	return toResponses(categories), nil
}

func (s *categoryService) SearchPage(ctx context.Context, req domain.SearchRequest) (query.Page[domain.CategoryResponse], error) {
	page, err := s.categoryRepository.FindPage(ctx, query.KeywordFilter(req.Keyword, SearchFields...), query.NewPageRequest(req))
	if err != nil {
		return query.Page[domain.CategoryResponse]{}, query.StoreError("search categories page", err)
	}
	return query.MapPage(page, func(c entities.Category) domain.CategoryResponse {
		return ToCategoryResponse(&c)
	}), nil
}

func (s *categoryService) assertUnique(ctx context.Context, repo CategoryRepository, name string, excludeID uuid.UUID) error {
	ids, err := repo.FindIDsByName(ctx, name)
	if err != nil {
		return err
	}
	return guard.AssertUnique(ids, excludeID, domain.ErrCategoryExists)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCategoryNotFound
	}
	return err
}
