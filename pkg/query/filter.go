// Package query holds the composable search filter used by every repository and
// the paged executor that runs it against gorm.
package query

import (
	"strings"
)

// Filter is a predicate tree: All, Equals, Contains, And or Or.
type Filter interface {
	isFilter()
}

type (
	// All matches every record.
	All struct{}

	// Equals is a case-insensitive equality on Field.
	Equals struct {
		Field string
		Value string
	}

	// Contains is a case-insensitive substring match on Field.
	Contains struct {
		Field string
		Value string
	}

	And []Filter
	Or  []Filter
)

func (All) isFilter()      {}
func (Equals) isFilter()   {}
func (Contains) isFilter() {}
func (And) isFilter()      {}
func (Or) isFilter()       {}

// KeywordFilter ORs a Contains over fields. An empty keyword matches everything.
func KeywordFilter(keyword string, fields ...string) Filter {
	if keyword == "" || len(fields) == 0 {
		return All{}
	}
	or := make(Or, 0, len(fields))
	for _, f := range fields {
		or = append(or, Contains{Field: f, Value: keyword})
	}
	return or
}

// WithEquals ANDs an Equals on field when value is present, and returns base
// untouched otherwise.
func WithEquals(base Filter, field, value string) Filter {
	if value == "" {
		return base
	}
	eq := Equals{Field: field, Value: value}
	if _, ok := base.(All); ok || base == nil {
		return eq
	}
	return And{base, eq}
}

// IsAll reports whether f matches every record.
func IsAll(f Filter) bool {
	switch v := f.(type) {
	case nil, All:
		return true
	case And:
		for _, c := range v {
			if !IsAll(c) {
				return false
			}
		}
		return true
	case Or:
		if len(v) == 0 {
			return true
		}
		for _, c := range v {
			if IsAll(c) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
}
