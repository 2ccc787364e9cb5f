package recipe

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/internal/utils/storage"
	"recipe-api/pkg/guard"
	"recipe-api/pkg/query"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const imageFolder = "recipes"

type (
	RecipeService interface {
		FindAll(ctx context.Context) ([]domain.RecipeResponse, error)
		FindByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		Create(ctx context.Context, req domain.RecipeRequest) (domain.RecipeResponse, error)
		Update(ctx context.Context, id string, req domain.RecipeRequest) (domain.RecipeResponse, error)
		Delete(ctx context.Context, id string) error
		Search(ctx context.Context, keyword string) ([]domain.RecipeResponse, error)
		SearchPage(ctx context.Context, req domain.RecipeSearchRequest) (query.Page[domain.RecipeResponse], error)
		AddIngredient(ctx context.Context, recipeID string, req domain.RecipeIngredientRequest) (domain.RecipeIngredientResponse, error)
		AddIngredients(ctx context.Context, recipeID string, req domain.RecipeAddIngredientsRequest) (domain.RecipeIngredientListResponse, error)
		UploadImage(ctx context.Context, recipeID string, file *multipart.FileHeader) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// RecipeFilter matches the keyword against title and description and, when
// categoryName is given, restricts to that category (case-insensitive).
func RecipeFilter(keyword, categoryName string) query.Filter {
	return query.WithEquals(query.KeywordFilter(keyword, SearchFields...), "category.name", categoryName)
}

func (s *recipeService) FindAll(ctx context.Context) ([]domain.RecipeResponse, error) {
	return s.Search(ctx, "")
}

func (s *recipeService) FindByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipeID, err := domain.ParseID(id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe, err := s.recipeRepository.FindByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, query.StoreError("find recipe", notFound(err, domain.ErrRecipeNotFound))
	}
	return ToRecipeResponse(recipe), nil
}

func (s *recipeService) Create(ctx context.Context, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := recipeFromRequest(uuid.New(), req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if err := assertUnique(ctx, repo, recipe.Title, uuid.Nil); err != nil {
			return err
		}
		if err := checkCategory(ctx, repo, recipe.CategoryID); err != nil {
			return err
		}
		if err := repo.Create(ctx, recipe); err != nil {
			return err
		}
		_, err := attachAll(ctx, repo, recipe.ID, req.Ingredients)
		return err
	})
	if err != nil {
		return domain.RecipeResponse{}, query.StoreError("create recipe", err)
	}

	log.Infow("recipe created", "id", recipe.ID, "title", recipe.Title)
	return s.FindByID(ctx, recipe.ID.String())
}

// Update replaces every field of the recipe, including its ingredient list. An
// image object the recipe no longer links to is removed from storage.
func (s *recipeService) Update(ctx context.Context, id string, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	recipeID, err := domain.ParseID(id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	next, err := recipeFromRequest(recipeID, req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	var previousImage string
	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		current, err := repo.FindByID(ctx, recipeID)
		if err != nil {
			return notFound(err, domain.ErrRecipeNotFound)
		}
		previousImage = current.Image
		if err := assertUnique(ctx, repo, next.Title, recipeID); err != nil {
			return err
		}
		if err := checkCategory(ctx, repo, next.CategoryID); err != nil {
			return err
		}

		next.CreatedAt = current.CreatedAt
		if err := repo.Update(ctx, next); err != nil {
			return err
		}
		return replaceAll(ctx, repo, recipeID, req.Ingredients)
	})
	if err != nil {
		return domain.RecipeResponse{}, query.StoreError("update recipe", err)
	}

	if previousImage != next.Image {
		s.removeImage(ctx, previousImage)
	}
	return s.FindByID(ctx, id)
}

func (s *recipeService) Delete(ctx context.Context, id string) error {
	recipeID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if _, err := repo.FindByID(ctx, recipeID); err != nil {
			return notFound(err, domain.ErrRecipeNotFound)
		}
		return repo.Delete(ctx, recipeID)
	})
	return query.StoreError("delete recipe", err)
}

func (s *recipeService) Search(ctx context.Context, keyword string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.FindAll(ctx, RecipeFilter(keyword, ""))
	if err != nil {
		return nil, query.StoreError("search recipes", err)
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) SearchPage(ctx context.Context, req domain.RecipeSearchRequest) (query.Page[domain.RecipeResponse], error) {
	filter := RecipeFilter(req.Keyword, strings.TrimSpace(req.CategoryName))
	page, err := s.recipeRepository.FindPage(ctx, filter, query.NewPageRequest(req.SearchRequest))
	if err != nil {
		return query.Page[domain.RecipeResponse]{}, query.StoreError("search recipes page", err)
	}
	return query.MapPage(page, func(r entities.Recipe) domain.RecipeResponse {
		return ToRecipeResponse(&r)
	}), nil
}

func (s *recipeService) AddIngredient(ctx context.Context, recipeID string, req domain.RecipeIngredientRequest) (domain.RecipeIngredientResponse, error) {
	id, err := domain.ParseID(recipeID)
	if err != nil {
		return domain.RecipeIngredientResponse{}, err
	}

	var res domain.RecipeIngredientResponse
	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return notFound(err, domain.ErrRecipeNotFound)
		}
		res, err = attach(ctx, repo, id, req)
		return err
	})
	if err != nil {
		return domain.RecipeIngredientResponse{}, query.StoreError("add recipe ingredient", err)
	}
	return res, nil
}

// AddIngredients attaches the pairs in order. The first failing pair aborts
// the batch and nothing is kept.
func (s *recipeService) AddIngredients(ctx context.Context, recipeID string, req domain.RecipeAddIngredientsRequest) (domain.RecipeIngredientListResponse, error) {
	id, err := domain.ParseID(recipeID)
	if err != nil {
		return domain.RecipeIngredientListResponse{}, err
	}

	var attached []domain.RecipeIngredientResponse
	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return notFound(err, domain.ErrRecipeNotFound)
		}
		attached, err = attachAll(ctx, repo, id, req.Ingredients)
		return err
	})
	if err != nil {
		return domain.RecipeIngredientListResponse{}, query.StoreError("add recipe ingredients", err)
	}

	return domain.RecipeIngredientListResponse{
		RecipeID:    id.String(),
		Ingredients: attached,
	}, nil
}

// UploadImage stores file in object storage and points the recipe at it. A
// previously uploaded image is removed once the recipe is updated.
func (s *recipeService) UploadImage(ctx context.Context, recipeID string, file *multipart.FileHeader) (domain.RecipeResponse, error) {
	id, err := domain.ParseID(recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if file == nil {
		return domain.RecipeResponse{}, domain.ErrRecipeImageNeeded
	}

	current, err := s.recipeRepository.FindByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, query.StoreError("find recipe", notFound(err, domain.ErrRecipeNotFound))
	}

	objectKey, err := s.s3.UploadFile(ctx, uuid.NewString(), file, imageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return domain.RecipeResponse{}, err
		}
		log.Errorw("error uploading recipe image", "recipe_id", id, "error", err)
		return domain.RecipeResponse{}, errors.New(domain.MessageFailedUploadImage)
	}

	if err := s.recipeRepository.UpdateImage(ctx, id, s.s3.GetPublicLinkKey(objectKey)); err != nil {
		if derr := s.s3.DeleteFile(ctx, objectKey); derr != nil {
			log.Warnw("error deleting unused recipe image", "key", objectKey, "error", derr)
		}
		return domain.RecipeResponse{}, query.StoreError("update recipe image", err)
	}

	s.removeImage(ctx, current.Image)
	return s.FindByID(ctx, recipeID)
}

// removeImage deletes the stored object behind link. Links that do not point
// into the bucket are left alone.
func (s *recipeService) removeImage(ctx context.Context, link string) {
	key := s.s3.GetObjectKeyFromLink(link)
	if key == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, key); err != nil {
		log.Warnw("error deleting previous recipe image", "key", key, "error", err)
	}
}

func recipeFromRequest(id uuid.UUID, req domain.RecipeRequest) (*entities.Recipe, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}
	if req.PreparationTime < 0 || req.CookTime < 0 || req.Serving < 0 {
		return nil, domain.ErrNegativeNumeric
	}

	recipe := &entities.Recipe{
		ID:              id,
		Title:           title,
		Description:     req.Description,
		Image:           req.Image,
		PreparationTime: req.PreparationTime,
		CookTime:        req.CookTime,
		Serving:         req.Serving,
	}
	if req.CategoryID != "" {
		categoryID, err := domain.ParseID(req.CategoryID)
		if err != nil {
			return nil, err
		}
		recipe.CategoryID = &categoryID
	}
	return recipe, nil
}

func assertUnique(ctx context.Context, repo RecipeRepository, title string, excludeID uuid.UUID) error {
	ids, err := repo.FindIDsByTitle(ctx, title)
	if err != nil {
		return err
	}
	return guard.AssertUnique(ids, excludeID, domain.ErrRecipeExists)
}

func checkCategory(ctx context.Context, repo RecipeRepository, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	if _, err := repo.FindCategoryByID(ctx, *categoryID); err != nil {
		return notFound(err, domain.ErrCategoryNotFound)
	}
	return nil
}

func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
