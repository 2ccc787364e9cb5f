// Package guard holds the uniqueness check shared by every create and update.
package guard

import "github.com/google/uuid"

// AssertUnique returns conflict when any of existing belongs to a record other
// than excludeID. Pass uuid.Nil as excludeID on create.
func AssertUnique(existing []uuid.UUID, excludeID uuid.UUID, conflict error) error {
	for _, id := range existing {
		if excludeID == uuid.Nil || id != excludeID {
			return conflict
		}
	}
	return nil
}
