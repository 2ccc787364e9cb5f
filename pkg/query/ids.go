package query

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDsWhere returns the ids of every T matching the condition. It backs the
// uniqueness lookups, which compare values exactly (case-sensitive).
func IDsWhere[T any](db *gorm.DB, cond string, args ...any) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := db.Model(new(T)).Where(cond, args...).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
