package migration_test

import (
	"testing"

	migration "recipe-api/cmd/database/migrate"
	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := migration.SeedConfig{AdminUserName: "admin", AdminEmail: "admin@mail.com", AdminPassword: "admin_password"}

	require.NoError(t, migration.Seed(db, cfg))
	require.NoError(t, migration.Seed(db, cfg))

	var roles []entities.Role
	require.NoError(t, db.Order("name").Find(&roles).Error)
	require.Len(t, roles, 2)
	assert.Equal(t, domain.RoleAdmin, roles[0].Name)
	assert.Equal(t, domain.RoleUser, roles[1].Name)

	var admin entities.User
	require.NoError(t, db.Preload("Roles.Role").Where("user_name = ?", "admin").First(&admin).Error)
	assert.Equal(t, []string{domain.RoleAdmin}, admin.ActiveRoleNames())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin_password")))
}

func TestSeedWithoutAdminCredentials(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, migration.Seed(db, migration.SeedConfig{}))

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
