package service

import (
	"context"
	"errors"
	"fmt"

	"logistics_api/internal/model"
	"logistics_api/internal/repository"
	"logistics_api/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrIdentityNotFound   = errors.New("user not found")
)

// AuthService provides credential checks and identity resolution
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	ResolveIdentity(ctx context.Context, userID int) (*model.User, error)
	SeedOwner(ctx context.Context, username, password, name string) error
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	log      *zap.SugaredLogger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, log *zap.SugaredLogger) AuthService {
	return &authService{userRepo: userRepo, jwtUtil: jwtUtil, log: log}
}

// Login verifies the credentials and returns the user with a signed identity
// token. Unknown username and wrong password both map to ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// ResolveIdentity maps a token's user id back to the stored row.
// Returns ErrIdentityNotFound when the row no longer exists.
func (s *authService) ResolveIdentity(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error resolving identity: %w", err)
	}
	if user == nil {
		return nil, ErrIdentityNotFound
	}
	return user, nil
}

// SeedOwner bootstraps the first owner account when the users table is empty,
// so login is possible on a fresh store. A non-empty table is left alone.
func (s *authService) SeedOwner(ctx context.Context, username, password, name string) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users for seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed owner password: %w", err)
	}

	owner := &model.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         model.RoleOwner,
		Name:         name,
		Permissions:  "all",
	}
	if err := s.userRepo.Create(ctx, owner); err != nil {
		return fmt.Errorf("failed to create seed owner: %w", err)
	}
	s.log.Infof("Seeded initial owner account %q (id %d)", username, owner.ID)
	return nil
}
