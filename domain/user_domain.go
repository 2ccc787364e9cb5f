package domain

var (
	MessageSuccessGetUsers      = "success get users"
	MessageSuccessGetUserDetail = "success get user detail"
	MessageSuccessCreateUser    = "user created successfully"
	MessageSuccessUpdateUser    = "user updated successfully"
	MessageSuccessDeleteUser    = "user deleted successfully"
	MessageSuccessAssignRole    = "role assigned successfully"
	MessageSuccessRevokeRole    = "role revoked successfully"
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successfully"

	MessageFailedGetUsers      = "failed to get users"
	MessageFailedGetUserDetail = "failed to get user detail"
	MessageFailedCreateUser    = "failed to create user"
	MessageFailedUpdateUser    = "failed to update user"
	MessageFailedDeleteUser    = "failed to delete user"
	MessageFailedAssignRole    = "failed to assign role"
	MessageFailedRevokeRole    = "failed to revoke role"
	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"

	ErrUserNotFound       = NotFound("user not found")
	ErrUserRoleNotFound   = NotFound("user role not found")
	ErrUserExists         = Conflict("user name or email already exists")
	ErrUserRequired       = InvalidArgument("user is required")
	ErrInvalidCredentials = InvalidArgument("invalid user name or password")
	ErrHashPassword       = InvalidArgument("failed to hash password")
)

type (
	UserRequest struct {
		FirstName string `json:"first_name" validate:"required,min=3,max=255"`
		LastName  string `json:"last_name" validate:"required,min=3,max=255"`
		UserName  string `json:"user_name" validate:"required,min=3,max=50"`
		Email     string `json:"email" validate:"required,email,max=50"`
		Password  string `json:"password" validate:"required,min=8,max=20"`
	}

	UserResponse struct {
		ID        string   `json:"id"`
		FirstName string   `json:"first_name"`
		LastName  string   `json:"last_name"`
		UserName  string   `json:"user_name"`
		Email     string   `json:"email"`
		Roles     []string `json:"roles"`
	}

	LoginRequest struct {
		UserName string `json:"user_name" validate:"required,min=3,max=255"`
		Password string `json:"password" validate:"required,min=8,max=20"`
	}

	LoginResponse struct {
		UserID      string   `json:"user_id"`
		AccessToken string   `json:"access_token"`
		Roles       []string `json:"roles"`
	}
)
