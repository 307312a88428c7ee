package service

import (
	"context"
	"errors"
	"fmt"

	"logistics_api/internal/model"
	"logistics_api/internal/repository"
	"logistics_api/internal/utils"
)

var (
	ErrUsernameExists = errors.New("Username already exists")
	ErrSelfDeletion   = errors.New("Cannot delete your own account")
)

// UserService provides owner-gated user directory operations
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, targetID int, patch model.UpdateUserRequest) error
	DeleteUser(ctx context.Context, callerID, targetID int) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns all users without their password hashes
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// CreateUser provisions a new account. Permissions default to "basic" and the
// password is stored hashed.
func (s *userService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	permissions := req.Permissions
	if permissions == "" {
		permissions = model.DefaultPermissions
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hashed,
		Role:         req.Role,
		Name:         req.Name,
		Permissions:  permissions,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a truthy-overwrite merge patch. A new password is hashed
// before storage. A missing target id affects zero rows and still succeeds.
func (s *userService) UpdateUser(ctx context.Context, targetID int, patch model.UpdateUserRequest) error {
	if patch.Password != "" {
		hashed, err := utils.HashPassword(patch.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		patch.Password = hashed
	}

	if err := s.userRepo.Update(ctx, targetID, patch); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrUsernameExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteUser removes an account, refusing to delete the caller's own identity.
// Deleting a missing id still succeeds.
func (s *userService) DeleteUser(ctx context.Context, callerID, targetID int) error {
	if callerID == targetID {
		return ErrSelfDeletion
	}
	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
