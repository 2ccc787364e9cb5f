package query

import (
	"errors"

	"recipe-api/domain"

	"github.com/gofiber/fiber/v2/log"
)

// StoreError passes domain errors through untouched. Anything else is a store
// failure: it is logged under op and reported as domain.ErrDatabase.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidArgument) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrNotFound) {
		return err
	}
	log.Errorw("store failure", "op", op, "error", err)
	return domain.ErrDatabase
}
