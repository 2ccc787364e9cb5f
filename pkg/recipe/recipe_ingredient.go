package recipe

import (
	"context"
	"strings"

	"recipe-api/domain"
	"recipe-api/entities"

	"github.com/google/uuid"
)

// attach resolves the ingredient, validates the amount and writes the pairing,
// overwriting the amount when the recipe already uses the ingredient. The
// amount is stored as given.
func attach(ctx context.Context, repo RecipeRepository, recipeID uuid.UUID, req domain.RecipeIngredientRequest) (domain.RecipeIngredientResponse, error) {
	ingredientID, err := domain.ParseID(req.IngredientID)
	if err != nil {
		return domain.RecipeIngredientResponse{}, err
	}

	ingredient, err := repo.FindIngredientByID(ctx, ingredientID)
	if err != nil {
		return domain.RecipeIngredientResponse{}, notFound(err, domain.ErrIngredientNotFound)
	}

	if strings.TrimSpace(req.Amount) == "" {
		return domain.RecipeIngredientResponse{}, domain.ErrAmountRequired
	}

	ri := &entities.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredient.ID,
		Amount:       req.Amount,
	}
	if err := repo.UpsertIngredient(ctx, ri); err != nil {
		return domain.RecipeIngredientResponse{}, err
	}

	return domain.RecipeIngredientResponse{
		IngredientID: ingredient.ID.String(),
		Name:         ingredient.Name,
		Amount:       req.Amount,
	}, nil
}

// attachAll runs attach for every pair in input order and stops at the first error.
func attachAll(ctx context.Context, repo RecipeRepository, recipeID uuid.UUID, reqs []domain.RecipeIngredientRequest) ([]domain.RecipeIngredientResponse, error) {
	res := make([]domain.RecipeIngredientResponse, 0, len(reqs))
	for _, req := range reqs {
		attached, err := attach(ctx, repo, recipeID, req)
		if err != nil {
			return nil, err
		}
		res = append(res, attached)
	}
	return res, nil
}

// replaceAll drops every pairing of the recipe before attaching reqs.
func replaceAll(ctx context.Context, repo RecipeRepository, recipeID uuid.UUID, reqs []domain.RecipeIngredientRequest) error {
	if err := repo.DeleteIngredients(ctx, recipeID); err != nil {
		return err
	}
	_, err := attachAll(ctx, repo, recipeID, reqs)
	return err
}
