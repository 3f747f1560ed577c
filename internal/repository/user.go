package repository

import (
	"context"
	"fmt"

	"github.com/aurorahealth/aurora-backend/internal/models"
	"github.com/aurorahealth/aurora-backend/pkg/supabase"
)

const usersTable = "users"

type userRepository struct {
	client *supabase.Client
}

// NewUserRepository creates a new user repository
func NewUserRepository(client *supabase.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	params := map[string]string{
		"id": "eq." + id,
	}

	var users []models.User
	if err := r.client.Select(ctx, usersTable, params, &users); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	params := map[string]string{
		"email": "eq." + email,
	}

	var users []models.User
	if err := r.client.Select(ctx, usersTable, params, &users); err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	data := map[string]any{
		"id":        user.ID,
		"email":     user.Email,
		"is_active": user.IsActive,
	}

	var created []models.User
	if err := r.client.Insert(ctx, usersTable, data, &created); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no user returned")
	}
	return &created[0], nil
}

func (r *userRepository) GetActive(ctx context.Context) ([]models.User, error) {
	params := map[string]string{
		"is_active": "eq.true",
		"order":     "created_at.asc",
	}

	var users []models.User
	if err := r.client.Select(ctx, usersTable, params, &users); err != nil {
		return nil, fmt.Errorf("failed to get active users: %w", err)
	}
	return users, nil
}
