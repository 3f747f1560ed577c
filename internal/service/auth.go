package service

import (
	"context"
	"fmt"

	"github.com/aurorahealth/aurora-backend/internal/logger"
	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/internal/repository"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

type authService struct {
	client   *supabase.Client
	userRepo repository.UserRepository
}

// NewAuthService creates the auth service backed by Supabase GoTrue.
func NewAuthService(client *supabase.Client, userRepo repository.UserRepository) AuthService {
	return &authService{client: client, userRepo: userRepo}
}

func (s *authService) Signup(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	session, err := s.client.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}

	// Mirror the auth user into the application users table so batch runs
	// can enumerate it. A conflict just means the row already exists.
	user := &models.User{
		ID:       session.User.ID,
		Email:    session.User.Email,
		IsActive: true,
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		logger.Ctx(ctx).Warn("failed to mirror user row", logger.Err(err))
		created = user
	}

	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         *created,
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	session, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, session.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		user = &models.User{ID: session.User.ID, Email: session.User.Email, IsActive: true}
	}

	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         *user,
	}, nil
}

func (s *authService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
