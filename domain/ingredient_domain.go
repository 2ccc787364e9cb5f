package domain

var (
	MessageSuccessGetIngredients      = "success get ingredients"
	MessageSuccessGetIngredientDetail = "success get ingredient detail"
	MessageSuccessCreateIngredient    = "ingredient created successfully"
	MessageSuccessUpdateIngredient    = "ingredient updated successfully"
	MessageSuccessDeleteIngredient    = "ingredient deleted successfully"

	MessageFailedGetIngredients      = "failed to get ingredients"
	MessageFailedGetIngredientDetail = "failed to get ingredient detail"
	MessageFailedCreateIngredient    = "failed to create ingredient"
	MessageFailedUpdateIngredient    = "failed to update ingredient"
	MessageFailedDeleteIngredient    = "failed to delete ingredient"

	ErrIngredientNotFound  = NotFound("ingredient not found")
	ErrIngredientExists    = Conflict("ingredient name already exists")
	ErrIngredientRequired  = InvalidArgument("ingredient is required")
	ErrIngredientsRequired = InvalidArgument("ingredients are required")
	ErrIngredientName      = InvalidArgument("ingredient name must be 3 to 255 characters")
	ErrIngredientDuplicate = Conflict("ingredient name repeated in batch")
)

type (
	IngredientRequest struct {
		Name string `json:"name" validate:"required,min=3,max=255"`
	}

	IngredientBatchRequest struct {
		Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	IngredientResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
