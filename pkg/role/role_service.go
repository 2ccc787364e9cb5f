package role

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
	RoleService interface {
		FindAll(ctx context.Context) ([]domain.RoleResponse, error)
		FindByID(ctx context.Context, id string) (domain.RoleResponse, error)
		Create(ctx context.Context, req domain.RoleRequest) (domain.RoleResponse, error)
		Update(ctx context.Context, id string, req domain.RoleRequest) (domain.RoleResponse, error)
		Delete(ctx context.Context, id string) error
		Search(ctx context.Context, keyword string) ([]domain.RoleResponse, error)
		SearchPage(ctx context.Context, req domain.SearchRequest) (query.Page[domain.RoleResponse], error)
	}

	roleService struct {
		roleRepository RoleRepository
	}
)

func NewRoleService(roleRepository RoleRepository) RoleService {
	return &roleService{roleRepository: roleRepository}
}

func ToRoleResponse(r *entities.Role) domain.RoleResponse {
	return domain.RoleResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
	}
}

func (s *roleService) FindAll(ctx context.Context) ([]domain.RoleResponse, error) {
	return s.Search(ctx, "")
}

func (s *roleService) FindByID(ctx context.Context, id string) (domain.RoleResponse, error) {
	roleID, err := domain.ParseID(id)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	role, err := s.roleRepository.FindByID(ctx, roleID)
	if err != nil {
		return domain.RoleResponse{}, query.StoreError("find role", notFound(err))
	}
	return ToRoleResponse(role), nil
}

func (s *roleService) Create(ctx context.Context, req domain.RoleRequest) (domain.RoleResponse, error) {
	name, err := normalizeName(req.Name)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	role := &entities.Role{
		ID:          uuid.New(),
		Name:        name,
		Description: req.Description,
	}

	err = s.roleRepository.Transaction(ctx, func(repo RoleRepository) error {
		if err := assertUnique(ctx, repo, name, uuid.Nil); err != nil {
			return err
		}
		return repo.Create(ctx, role)
	})
	if err != nil {
		return domain.RoleResponse{}, query.StoreError("create role", err)
	}

	log.Infow("role created", "id", role.ID, "name", role.Name)
	return ToRoleResponse(role), nil
}

func (s *roleService) Update(ctx context.Context, id string, req domain.RoleRequest) (domain.RoleResponse, error) {
	roleID, err := domain.ParseID(id)
	if err != nil {
		return domain.RoleResponse{}, err
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return domain.RoleResponse{}, err
	}

	var updated *entities.Role
	err = s.roleRepository.Transaction(ctx, func(repo RoleRepository) error {
		current, err := repo.FindByID(ctx, roleID)
		if err != nil {
			return notFound(err)
		}
		if err := assertUnique(ctx, repo, name, roleID); err != nil {
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
		return domain.RoleResponse{}, query.StoreError("update role", err)
	}
	return ToRoleResponse(updated), nil
}

func (s *roleService) Delete(ctx context.Context, id string) error {
	roleID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	err = s.roleRepository.Transaction(ctx, func(repo RoleRepository) error {
		if _, err := repo.FindByID(ctx, roleID); err != nil {
			return notFound(err)
		}
		return repo.Delete(ctx, roleID)
	})
	return query.StoreError("delete role", err)
}

func (s *roleService) Search(ctx context.Context, keyword string) ([]domain.RoleResponse, error) {
	roles, err := s.roleRepository.FindAll(ctx, query.KeywordFilter(keyword, SearchFields...))
	if err != nil {
		return nil, query.StoreError("search roles", err)
	}

	res := make([]domain.RoleResponse, 0, len(roles))
	for _, role := range roles {
		res = append(res, ToRoleResponse(role))
	}
	return res, nil
}

func (s *roleService) SearchPage(ctx context.Context, req domain.SearchRequest) (query.Page[domain.RoleResponse], error) {
	page, err := s.roleRepository.FindPage(ctx, query.KeywordFilter(req.Keyword, SearchFields...), query.NewPageRequest(req))
	if err != nil {
		return query.Page[domain.RoleResponse]{}, query.StoreError("search roles page", err)
	}
	return query.MapPage(page, func(r entities.Role) domain.RoleResponse {
		return ToRoleResponse(&r)
	}), nil
}

// normalizeName trims name and checks it is 3 to 255 characters long.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if n := utf8.RuneCountInString(name); n < 3 || n > 255 {
		return "", domain.ErrRoleName
	}
	return name, nil
}

func assertUnique(ctx context.Context, repo RoleRepository, name string, excludeID uuid.UUID) error {
	ids, err := repo.FindIDsByName(ctx, name)
	if err != nil {
		return err
	}
	return guard.AssertUnique(ids, excludeID, domain.ErrRoleExists)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRoleNotFound
	}
	return err
}
