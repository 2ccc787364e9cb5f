package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/internal/utils/mailing"
	"recipe-api/pkg/guard"
	"recipe-api/pkg/jwt"
	"recipe-api/pkg/query"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		FindAll(ctx context.Context) ([]domain.UserResponse, error)
		FindByID(ctx context.Context, id string) (domain.UserResponse, error)
		Create(ctx context.Context, req domain.UserRequest) (domain.UserResponse, error)
		Update(ctx context.Context, id string, req domain.UserRequest) (domain.UserResponse, error)
		Delete(ctx context.Context, id string) error
		Search(ctx context.Context, keyword string) ([]domain.UserResponse, error)
		SearchPage(ctx context.Context, req domain.SearchRequest) (query.Page[domain.UserResponse], error)

		Register(ctx context.Context, req domain.UserRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		AssignRole(ctx context.Context, userID, roleID string) (domain.UserResponse, error)
		RevokeRole(ctx context.Context, userID, roleID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		appURL         string
	}
)

// NewUserService builds the service. mailer may be nil, in which case no
// welcome mail is sent on registration.
func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer, appURL string) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		appURL:         appURL,
	}
}

// ToUserResponse never carries the password; roles are the active role names.
func ToUserResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
		Email:     u.Email,
		Roles:     u.ActiveRoleNames(),
	}
}

func (s *userService) FindAll(ctx context.Context) ([]domain.UserResponse, error) {
	return s.Search(ctx, "")
}

func (s *userService) FindByID(ctx context.Context, id string) (domain.UserResponse, error) {
	userID, err := domain.ParseID(id)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return domain.UserResponse{}, query.StoreError("find user", notFound(err, domain.ErrUserNotFound))
	}
	return ToUserResponse(user), nil
}

func (s *userService) Create(ctx context.Context, req domain.UserRequest) (domain.UserResponse, error) {
	return s.create(ctx, req, "")
}

// Register creates the user with the default USER role, when that role exists,
// and sends a welcome mail.
func (s *userService) Register(ctx context.Context, req domain.UserRequest) (domain.UserResponse, error) {
	res, err := s.create(ctx, req, domain.RoleUser)
	if err != nil {
		return domain.UserResponse{}, err
	}
	s.sendWelcome(res)
	return res, nil
}

func (s *userService) create(ctx context.Context, req domain.UserRequest, defaultRole string) (domain.UserResponse, error) {
	user, err := userFromRequest(uuid.New(), req)
	if err != nil {
		return domain.UserResponse{}, err
	}

	err = s.userRepository.Transaction(ctx, func(repo UserRepository) error {
		if err := assertUnique(ctx, repo, user, uuid.Nil); err != nil {
			return err
		}
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
		if defaultRole == "" {
			return nil
		}

		role, err := repo.FindRoleByName(ctx, defaultRole)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warnw("default role missing, user registered without roles", "role", defaultRole)
			return nil
		}
		if err != nil {
			return err
		}
		return repo.CreateUserRole(ctx, newUserRole(user.ID, role.ID))
	})
	if err != nil {
		return domain.UserResponse{}, query.StoreError("create user", err)
	}

	log.Infow("user created", "id", user.ID, "user_name", user.UserName)
	return s.FindByID(ctx, user.ID.String())
}

func (s *userService) Update(ctx context.Context, id string, req domain.UserRequest) (domain.UserResponse, error) {
	userID, err := domain.ParseID(id)
	if err != nil {
		return domain.UserResponse{}, err
	}
	next, err := userFromRequest(userID, req)
	if err != nil {
		return domain.UserResponse{}, err
	}

	err = s.userRepository.Transaction(ctx, func(repo UserRepository) error {
		current, err := repo.FindByID(ctx, userID)
		if err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}
		if err := assertUnique(ctx, repo, next, userID); err != nil {
			return err
		}
		next.CreatedAt = current.CreatedAt
		return repo.Update(ctx, next)
	})
	if err != nil {
		return domain.UserResponse{}, query.StoreError("update user", err)
	}
	return s.FindByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	userID, err := domain.ParseID(id)
	if err != nil {
		return err
	}

	err = s.userRepository.Transaction(ctx, func(repo UserRepository) error {
		if _, err := repo.FindByID(ctx, userID); err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}
		return repo.Delete(ctx, userID)
	})
	return query.StoreError("delete user", err)
}

func (s *userService) Search(ctx context.Context, keyword string) ([]domain.UserResponse, error) {
	users, err := s.userRepository.FindAll(ctx, query.KeywordFilter(keyword, SearchFields...))
	if err != nil {
		return nil, query.StoreError("search users", err)
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, ToUserResponse(user))
	}
	return res, nil
}

func (s *userService) SearchPage(ctx context.Context, req domain.SearchRequest) (query.Page[domain.UserResponse], error) {
	page, err := s.userRepository.FindPage(ctx, query.KeywordFilter(req.Keyword, SearchFields...), query.NewPageRequest(req))
	if err != nil {
		return query.Page[domain.UserResponse]{}, query.StoreError("search users page", err)
	}
	return query.MapPage(page, func(u entities.User) domain.UserResponse {
		return ToUserResponse(&u)
	}), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.FindByUserName(ctx, strings.TrimSpace(req.UserName))
	if err != nil {
		return domain.LoginResponse{}, query.StoreError("login", notFound(err, domain.ErrInvalidCredentials))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	roles := user.ActiveRoleNames()
	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), roles)
	if err != nil {
		log.Errorw("error signing token", "user_id", user.ID, "error", err)
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		UserID:      user.ID.String(),
		AccessToken: token,
		Roles:       roles,
	}, nil
}

// AssignRole creates the association, or reactivates an inactive one.
func (s *userService) AssignRole(ctx context.Context, userID, roleID string) (domain.UserResponse, error) {
	uid, rid, err := parsePair(userID, roleID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	err = s.userRepository.Transaction(ctx, func(repo UserRepository) error {
		if _, err := repo.FindByID(ctx, uid); err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}
		if _, err := repo.FindRoleByID(ctx, rid); err != nil {
			return notFound(err, domain.ErrRoleNotFound)
		}

		userRole, err := repo.FindUserRole(ctx, uid, rid)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return repo.CreateUserRole(ctx, newUserRole(uid, rid))
		case err != nil:
			return err
		}

		userRole.ActiveStatus = entities.UserRoleActive
		userRole.UpdatedAt = time.Now()
		return repo.SaveUserRole(ctx, userRole)
	})
	if err != nil {
		return domain.UserResponse{}, query.StoreError("assign role", err)
	}
	return s.FindByID(ctx, userID)
}

// RevokeRole marks the association inactive.
func (s *userService) RevokeRole(ctx context.Context, userID, roleID string) (domain.UserResponse, error) {
	uid, rid, err := parsePair(userID, roleID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	err = s.userRepository.Transaction(ctx, func(repo UserRepository) error {
		userRole, err := repo.FindUserRole(ctx, uid, rid)
		if err != nil {
			return notFound(err, domain.ErrUserRoleNotFound)
		}
		userRole.ActiveStatus = entities.UserRoleInactive
		userRole.UpdatedAt = time.Now()
		return repo.SaveUserRole(ctx, userRole)
	})
	if err != nil {
		return domain.UserResponse{}, query.StoreError("revoke role", err)
	}
	return s.FindByID(ctx, userID)
}

func (s *userService) sendWelcome(user domain.UserResponse) {
	if s.mailer == nil {
		return
	}

	body, err := mailing.WelcomeBody(mailing.WelcomeData{
		FirstName: user.FirstName,
		UserName:  user.UserName,
		AppURL:    s.appURL,
	})
	if err == nil {
		err = s.mailer.SendMail(user.Email, mailing.WelcomeSubject, body)
	}
	if err != nil {
		log.Warnw("error sending welcome mail", "user_id", user.ID, "error", err)
	}
}

func userFromRequest(id uuid.UUID, req domain.UserRequest) (*entities.User, error) {
	user := &entities.User{
		ID:        id,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		UserName:  strings.TrimSpace(req.UserName),
		Email:     strings.TrimSpace(req.Email),
	}
	if user.FirstName == "" || user.LastName == "" || user.UserName == "" || user.Email == "" || req.Password == "" {
		return nil, domain.ErrUserRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrHashPassword
	}
	user.Password = string(hash)
	return user, nil
}

func newUserRole(userID, roleID uuid.UUID) *entities.UserRole {
	now := time.Now()
	return &entities.UserRole{
		UserID:       userID,
		RoleID:       roleID,
		ActiveStatus: entities.UserRoleActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func parsePair(userID, roleID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := domain.ParseID(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	rid, err := domain.ParseID(roleID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return uid, rid, nil
}

func assertUnique(ctx context.Context, repo UserRepository, user *entities.User, excludeID uuid.UUID) error {
	ids, err := repo.FindIDsByUserNameOrEmail(ctx, user.UserName, user.Email)
	if err != nil {
		return err
	}
	return guard.AssertUnique(ids, excludeID, domain.ErrUserExists)
}

func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
