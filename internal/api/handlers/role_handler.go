package handlers

import (
	"recipe-api/domain"
	"recipe-api/internal/api/presenters"
	"recipe-api/pkg/role"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RoleHandler interface {
		GetAll(c *fiber.Ctx) error
		GetPage(c *fiber.Ctx) error
		GetByID(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	roleHandler struct {
		roleService role.RoleService
		validator   *validator.Validate
	}
)

func NewRoleHandler(roleService role.RoleService, validator *validator.Validate) RoleHandler {
	return &roleHandler{
		roleService: roleService,
		validator:   validator,
	}
}

func (h *roleHandler) GetAll(c *fiber.Ctx) error {
	res, err := h.roleService.Search(c.Context(), c.Query("keyword"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetRoles, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRoles)
}

func (h *roleHandler) GetPage(c *fiber.Ctx) error {
	var req domain.SearchRequest
	if err := bindSearch(c, h.validator, "name", &req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.roleService.SearchPage(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetRoles, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRoles)
}

func (h *roleHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.roleService.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetRoleDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRoleDetail)
}

func (h *roleHandler) Create(c *fiber.Ctx) error {
	req := new(domain.RoleRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRole, err)
	}

	res, err := h.roleService.Create(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateRole, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRole)
}

func (h *roleHandler) Update(c *fiber.Ctx) error {
	req := new(domain.RoleRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRole, err)
	}

	res, err := h.roleService.Update(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateRole, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRole)
}

func (h *roleHandler) Delete(c *fiber.Ctx) error {
	if err := h.roleService.Delete(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedDeleteRole, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRole)
}
