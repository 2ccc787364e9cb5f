package domain

var (
	MessageSuccessGetCategories     = "success get categories"
	MessageSuccessGetCategoryDetail = "success get category detail"
	MessageSuccessCreateCategory    = "category created successfully"
	MessageSuccessUpdateCategory    = "category updated successfully"
	MessageSuccessDeleteCategory    = "category deleted successfully"

	MessageFailedGetCategories     = "failed to get categories"
	MessageFailedGetCategoryDetail = "failed to get category detail"
	MessageFailedCreateCategory    = "failed to create category"
	MessageFailedUpdateCategory    = "failed to update category"
	MessageFailedDeleteCategory    = "failed to delete category"

	ErrCategoryNotFound = NotFound("category not found")
	ErrCategoryExists   = Conflict("category name already exists")
)

type (
	CategoryRequest struct {
		Name        string `json:"name" validate:"required,max=500"`
		Description string `json:"description" validate:"max=500"`
	}

	CategoryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
)
