package recipe

import (
	"recipe-api/domain"
	"recipe-api/entities"
)

// ToRecipeResponse flattens a recipe loaded with its category and ingredients.
func ToRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:              r.ID.String(),
		Title:           r.Title,
		Description:     r.Description,
		Image:           r.Image,
		PreparationTime: r.PreparationTime,
		CookTime:        r.CookTime,
		Serving:         r.Serving,
		Ingredients:     make([]domain.RecipeIngredientResponse, 0, len(r.Ingredients)),
	}

	if r.Category != nil {
		res.Category = &domain.CategoryResponse{
			ID:          r.Category.ID.String(),
			Name:        r.Category.Name,
			Description: r.Category.Description,
		}
	}

	for _, ri := range r.Ingredients {
		item := domain.RecipeIngredientResponse{
			IngredientID: ri.IngredientID.String(),
			Amount:       ri.Amount,
		}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
		}
		res.Ingredients = append(res.Ingredients, item)
	}
	return res
}
