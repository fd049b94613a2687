package service

import (
	"context"
	"fmt"
	"time"

	"survey_platform/internal/model"
	"survey_platform/internal/repository"

	"github.com/google/uuid"
)

// UserService manages users and their roles
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	// Create is idempotent on email: an existing email yields a result with a nil InsertedID.
	Create(ctx context.Context, req model.CreateUserRequest) (model.InsertResult, error)
	// HasRole reports whether the stored role of email equals role exactly.
	HasRole(ctx context.Context, email string, role model.Role) (bool, error)
	GrantRole(ctx context.Context, id string, role model.Role) (model.UpdateResult, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, req model.CreateUserRequest) (model.InsertResult, error) {
	user := &model.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Role:      model.RoleNone,
		CreatedAt: time.Now(),
	}

	inserted, err := s.repo.CreateIfAbsent(ctx, user)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("failed to create user: %w", err)
	}
	if !inserted {
		return model.InsertResult{Message: "user already exists", InsertedID: nil}, nil
	}
	return model.Inserted(user.ID), nil
}

func (s *userService) HasRole(ctx context.Context, email string, role model.Role) (bool, error) {
	if email == "" {
		return false, nil
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user role: %w", err)
	}
	if user == nil {
		return false, nil
	}
	return user.Role == role, nil
}

func (s *userService) GrantRole(ctx context.Context, id string, role model.Role) (model.UpdateResult, error) {
	if role == model.RoleNone || !role.Valid() {
		return model.UpdateResult{}, ErrInvalidRole
	}
	if err := validateID(id); err != nil {
		return model.UpdateResult{}, err
	}
	n, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to grant role %s: %w", role, err)
	}
	return model.Updated(n), nil
}

func (s *userService) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return model.DeleteResult{}, err
	}
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("failed to delete user: %w", err)
	}
	return model.Deleted(n), nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
