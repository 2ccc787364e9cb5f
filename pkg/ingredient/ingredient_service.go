package ingredient

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/pkg/guard"
	"recipe-api/pkg/query"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		FindAll(ctx context.Context) ([]domain.IngredientResponse, error)
		FindByID(ctx context.Context, id string) (domain.IngredientResponse, error)
		Create(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error)
		CreateBatch(ctx context.Context, req domain.IngredientBatchRequest) ([]domain.IngredientResponse, error)
		Update(ctx context.Context, id string, req domain.IngredientRequest) (domain.IngredientResponse, error)
		Delete(ctx context.Context, id string) error
		Search(ctx context.Context, keyword string) ([]domain.IngredientResponse, error)
		SearchPage(ctx context.Context, req domain.SearchRequest) (query.Page[domain.IngredientResponse], error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func ToIngredientResponse(i *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:   i.ID.String(),
		Name: i.Name,
	}
}

func (s *ingredientService) FindAll(ctx context.Context) ([]domain.IngredientResponse, error) {
	return s.Search(ctx, "")
}

func (s *ingredientService) FindByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredientID, err := domain.ParseID(id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient, err := s.ingredientRepository.FindByID(ctx, ingredientID)
	if err != nil {
		return domain.IngredientResponse{}, query.StoreError("find ingredient", notFound(err))
	}
	return ToIngredientResponse(ingredient), nil
}

func (s *ingredientService) Create(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	created, err := s.CreateBatch(ctx, domain.IngredientBatchRequest{Ingredients: []domain.IngredientRequest{req}})
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	return created[0], nil
}

// CreateBatch stores every ingredient or none of them.
func (s *ingredientService) CreateBatch(ctx context.Context, req domain.IngredientBatchRequest) ([]domain.IngredientResponse, error) {
	if len(req.Ingredients) == 0 {
		return nil, domain.ErrIngredientsRequired
	}

	seen := make(map[string]struct{}, len(req.Ingredients))
	ingredients := make([]*entities.Ingredient, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		name, err := normalizeName(item.Name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[name]; ok {
			return nil, domain.ErrIngredientDuplicate
		}
		seen[name] = struct{}{}
		ingredients = append(ingredients, &entities.Ingredient{ID: uuid.New(), Name: name})
	}

	err := s.ingredientRepository.Transaction(ctx, func(repo IngredientRepository) error {
		for _, ingredient := range ingredients {
			if err := assertUnique(ctx, repo, ingredient.Name, uuid.Nil); err != nil {
				return err
			}
			if err := repo.Create(ctx, ingredient); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, query.StoreError("create ingredients", err)
	}

	log.Infow("ingredients created", "count", len(ingredients))
	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, ToIngredientResponse(ingredient))
	}
	return res, nil
}

func (s *ingredientService) Update(ctx context.Context, id string, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredientID, err := domain.ParseID(id)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	var updated *entities.Ingredient
	err = s.ingredientRepository.Transaction(ctx, func(repo IngredientRepository) error {
		current, err := repo.FindByID(ctx, ingredientID)
		if err != nil {
			return notFound(err)
		}
		if err := assertUnique(ctx, repo, name, ingredientID); err != nil {
			return err
		}

		next := *current
		next.Name = name
		if err := repo.Update(ctx, &next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return domain.IngredientResponse{}, query.StoreError("update ingredient", err)
	}
	return ToIngredientResponse(updated), nil
}

func (s *ingredientService) Delete(ctx context.Context, id string) error {
	ingredientID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	err = s.ingredientRepository.Transaction(ctx, func(repo IngredientRepository) error {
		if _, err := repo.FindByID(ctx, ingredientID); err != nil {
			return notFound(err)
		}
		return repo.Delete(ctx, ingredientID)
	})
	return query.StoreError("delete ingredient", err)
}

func (s *ingredientService) Search(ctx context.Context, keyword string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.FindAll(ctx, query.KeywordFilter(keyword, SearchFields...))
	if err != nil {
		return nil, query.StoreError("search ingredients", err)
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, ToIngredientResponse(ingredient))
	}
	return res, nil
}

func (s *ingredientService) SearchPage(ctx context.Context, req domain.SearchRequest) (query.Page[domain.IngredientResponse], error) {
	page, err := s.ingredientRepository.FindPage(ctx, query.KeywordFilter(req.Keyword, SearchFields...), query.NewPageRequest(req))
	if err != nil {
		return query.Page[domain.IngredientResponse]{}, query.StoreError("search ingredients page", err)
	}
	return query.MapPage(page, func(i entities.Ingredient) domain.IngredientResponse {
		return ToIngredientResponse(&i)
	}), nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if n := utf8.RuneCountInString(name); n < 3 || n > 255 {
		return "", domain.ErrIngredientName
	}
	return name, nil
}

func assertUnique(ctx context.Context, repo IngredientRepository, name string, excludeID uuid.UUID) error {
	ids, err := repo.FindIDsByName(ctx, name)
	if err != nil {
		return err
	}
	return guard.AssertUnique(ids, excludeID, domain.ErrIngredientExists)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrIngredientNotFound
	}
	return err
}
