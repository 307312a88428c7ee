package service

import (
	"context"
	"testing"

	"logistics_api/internal/model"
	"logistics_api/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser_HashesPasswordAndDefaultsPermissions(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Username: "ravi",
		Password: "secret123",
		Role:     model.RoleDriver,
		Name:     "Ravi Kumar",
	})

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.DefaultPermissions, user.Permissions)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", user.PasswordHash))
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ravi", "secret123", model.RoleDriver)
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), model.CreateUserRequest{
		Username: "ravi",
		Password: "other456",
		Role:     model.RoleDriver,
		Name:     "Other Ravi",
	})

	assert.ErrorIs(t, err, ErrUsernameExists)

	// No row was added
	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestUserService_UpdateUser_StatusOnlyLeavesRestUnchanged(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "ravi", "secret123", model.RoleDriver)
	svc := NewUserService(repo)

	err := svc.UpdateUser(context.Background(), seeded.ID, model.UpdateUserRequest{Status: "inactive"})
	assert.NoError(t, err)

	updated, _ := repo.FindByID(context.Background(), seeded.ID)
	require.NotNil(t, updated)
	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, "ravi", updated.Username)
	assert.Equal(t, model.RoleDriver, updated.Role)
	assert.True(t, utils.CheckPasswordHash("secret123", updated.PasswordHash))
}

func TestUserService_UpdateUser_RehashesNewPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "ravi", "secret123", model.RoleDriver)
	svc := NewUserService(repo)

	err := svc.UpdateUser(context.Background(), seeded.ID, model.UpdateUserRequest{Password: "newpass789"})
	assert.NoError(t, err)

	updated, _ := repo.FindByID(context.Background(), seeded.ID)
	require.NotNil(t, updated)
	assert.NotEqual(t, "newpass789", updated.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("newpass789", updated.PasswordHash))
}

func TestUserService_UpdateUser_MissingIDSucceeds(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.UpdateUser(context.Background(), 999, model.UpdateUserRequest{Status: "inactive"})

	assert.NoError(t, err)
}

func TestUserService_DeleteUser_Self(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "admin", "secret123", model.RoleOwner)
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), seeded.ID, seeded.ID)

	assert.ErrorIs(t, err, ErrSelfDeletion)

	// The row is left intact
	still, _ := repo.FindByID(context.Background(), seeded.ID)
	assert.NotNil(t, still)
}

func TestUserService_DeleteUser_MissingIDSucceeds(t *testing.T) {
	repo := newFakeUserRepo()
	caller := seedUser(t, repo, "admin", "secret123", model.RoleOwner)
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), caller.ID, 999)

	assert.NoError(t, err)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestUserService_ListUsers_NoPasswordHashes(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin", "secret123", model.RoleOwner)
	seedUser(t, repo, "ravi", "secret456", model.RoleDriver)
	svc := NewUserService(repo)

	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
