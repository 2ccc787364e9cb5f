package domain

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessAddIngredient   = "ingredient added to recipe successfully"
	MessageSuccessAddIngredients  = "ingredients added to recipe successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedAddIngredient   = "failed to add ingredient to recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound    = NotFound("recipe not found")
	ErrRecipeExists      = Conflict("recipe title already exists")
	ErrTitleRequired     = InvalidArgument("title is required")
	ErrAmountRequired    = InvalidArgument("amount is required")
	ErrNegativeNumeric   = InvalidArgument("preparation time, cook time and serving must not be negative")
	ErrRecipeImageNeeded = InvalidArgument("image file is required")
)

type (
	RecipeIngredientRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
		Amount       string `json:"amount" validate:"required"`
	}

	RecipeRequest struct {
		Title           string                    `json:"title" validate:"required,max=255"`
		Description     string                    `json:"description" validate:"max=500"`
		Image           string                    `json:"image"`
		PreparationTime float64                   `json:"preparation_time" validate:"gte=0"`
		CookTime        float64                   `json:"cook_time" validate:"gte=0"`
		Serving         int                       `json:"serving" validate:"gte=0"`
		CategoryID      string                    `json:"category_id" validate:"omitempty,uuid"`
		Ingredients     []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	RecipeAddIngredientsRequest struct {
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,dive"`
	}

	RecipeIngredientResponse struct {
		IngredientID string `json:"ingredient_id"`
		Name         string `json:"name"`
		Amount       string `json:"amount"`
	}

	RecipeIngredientListResponse struct {
		RecipeID    string                     `json:"recipe_id"`
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
	}

	RecipeResponse struct {
		ID              string                     `json:"id"`
		Title           string                     `json:"title"`
		Description     string                     `json:"description"`
		Image           string                     `json:"image,omitempty"`
		PreparationTime float64                    `json:"preparation_time"`
		CookTime        float64                    `json:"cook_time"`
		Serving         int                        `json:"serving"`
		Category        *CategoryResponse          `json:"category,omitempty"`
		Ingredients     []RecipeIngredientResponse `json:"ingredients"`
	}
)
