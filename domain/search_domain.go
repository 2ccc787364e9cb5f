package domain

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	DefaultPageSize = 10
)

type (
	// SearchRequest is bound both from the query string (GET) and from a JSON body
	// (POST .../search).
	SearchRequest struct {
		Keyword string `json:"keyword" query:"keyword"`
		SortBy  string `json:"sort_by" query:"sort_by"`
		Order   string `json:"order" query:"order" validate:"omitempty,oneof=asc desc ASC DESC"`
		Page    int    `json:"page" query:"page" validate:"min=0"`
		Size    int    `json:"size" query:"size" validate:"gt=0"`
	}

	RecipeSearchRequest struct {
		SearchRequest
		CategoryName string `json:"category_name" query:"category_name"`
	}
)

// WithDefaults fills sort field, order and size when the caller left them out.
func (r SearchRequest) WithDefaults(sortBy string) SearchRequest {
	if r.SortBy == "" {
		r.SortBy = sortBy
	}
	if r.Order == "" {
		r.Order = SortAsc
	}
	if r.Size == 0 {
		r.Size = DefaultPageSize
	}
	return r
}
