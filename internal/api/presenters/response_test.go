package presenters

import (
	"errors"
	"fmt"
	"testing"

	"recipe-api/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrRecipeExists, fiber.StatusConflict},
		{domain.ErrIngredientNotFound, fiber.StatusNotFound},
		{domain.ErrAmountRequired, fiber.StatusBadRequest},
		{fmt.Errorf("%w: bogus", domain.ErrInvalidSort), fiber.StatusBadRequest},
		{domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{domain.ErrUserNotAllowed, fiber.StatusForbidden},
		{domain.ErrDatabase, fiber.StatusInternalServerError},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromError(tt.err), tt.err.Error())
	}
}
