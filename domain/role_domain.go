package domain

var (
	MessageSuccessGetRoles      = "success get roles"
	MessageSuccessGetRoleDetail = "success get role detail"
	MessageSuccessCreateRole    = "role created successfully"
	MessageSuccessUpdateRole    = "role updated successfully"
	MessageSuccessDeleteRole    = "role deleted successfully"

	MessageFailedGetRoles      = "failed to get roles"
	MessageFailedGetRoleDetail = "failed to get role detail"
	MessageFailedCreateRole    = "failed to create role"
	MessageFailedUpdateRole    = "failed to update role"
	MessageFailedDeleteRole    = "failed to delete role"

	ErrRoleNotFound = NotFound("role not found")
	ErrRoleExists   = Conflict("role name already exists")
	ErrRoleName     = InvalidArgument("role name must be 3 to 255 characters")
)

type (
	RoleRequest struct {
		Name        string `json:"name" validate:"required,min=3,max=255"`
		Description string `json:"description" validate:"max=500"`
	}

	RoleResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
)
