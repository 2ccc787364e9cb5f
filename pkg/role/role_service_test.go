package role_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/internal/testutil"
	"recipe-api/pkg/role"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := role.NewRoleService(role.NewRoleRepository(db))
	ctx := context.Background()

	editor, err := svc.Create(ctx, domain.RoleRequest{Name: "EDITOR", Description: "edits recipes"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.RoleRequest{Name: "EDITOR"})
	assert.ErrorIs(t, err, domain.ErrRoleExists)

	got, err := svc.FindByID(ctx, editor.ID)
	require.NoError(t, err)
	assert.Equal(t, editor, got)

	updated, err := svc.Update(ctx, editor.ID, domain.RoleRequest{Name: "CURATOR"})
	require.NoError(t, err)
	assert.Equal(t, "CURATOR", updated.Name)
	assert.Empty(t, updated.Description, "update replaces every field")

	found, err := svc.Search(ctx, "cura")
	require.NoError(t, err)
	require.Len(t, found, 1)

	user := entities.User{ID: uuid.New(), FirstName: "Jane", LastName: "Doe", UserName: "jane", Email: "jane@mail.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&entities.UserRole{
		UserID: user.ID, RoleID: uuid.MustParse(editor.ID), ActiveStatus: entities.UserRoleActive,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}).Error)

	require.NoError(t, svc.Delete(ctx, editor.ID))

	var count int64
	require.NoError(t, db.Model(&entities.UserRole{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err = svc.FindByID(ctx, editor.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoleSearchPage(t *testing.T) {
	db := testutil.NewDB(t)
	svc := role.NewRoleService(role.NewRoleRepository(db))
	ctx := context.Background()

	for _, name := range []string{"ADMIN", "USER", "AUDITOR"} {
		_, err := svc.Create(ctx, domain.RoleRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := svc.SearchPage(ctx, domain.SearchRequest{SortBy: "name", Order: "asc", Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	assert.Equal(t, "ADMIN", page.Content[0].Name)
	assert.Equal(t, "AUDITOR", page.Content[1].Name)
	assert.Equal(t, "USER", page.Content[2].Name)
	assert.Equal(t, 1, page.TotalPages)
}

func TestRoleNameLengthCountsTrimmedName(t *testing.T) {
	db := testutil.NewDB(t)
	svc := role.NewRoleService(role.NewRoleRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.RoleRequest{Name: "  ab  "})
	assert.ErrorIs(t, err, domain.ErrRoleName)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Create(ctx, domain.RoleRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = svc.Create(ctx, domain.RoleRequest{Name: strings.Repeat("r", 256)})
	assert.ErrorIs(t, err, domain.ErrRoleName)

	created, err := svc.Create(ctx, domain.RoleRequest{Name: "  abc  "})
	require.NoError(t, err)
	assert.Equal(t, "abc", created.Name)

	_, err = svc.Update(ctx, created.ID, domain.RoleRequest{Name: " xy "})
	assert.ErrorIs(t, err, domain.ErrRoleName)

	roles, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}
