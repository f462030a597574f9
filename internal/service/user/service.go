package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

func requireAdmin(ctx context.Context) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	roleStr, ok := claims["role"].(string)
	if !ok || user.Role(roleStr) != user.RoleAdmin {
		return user.ErrAdminRoleRequired
	}
	return nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, role string) ([]user.UserResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	roles := []user.Role{user.RoleAdmin, user.RoleStaff}
	if role != "" {
		if user.Role(role) != user.RoleAdmin && user.Role(role) != user.RoleStaff {
			return nil, user.ErrInvalidRole
		}
		roles = []user.Role{user.Role(role)}
	}

	out := make([]user.UserResponse, 0)
	for _, r := range roles {
		users, err := s.UserRepository.ListByRole(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		for _, u := range users {
			out = append(out, user.ToResponse(u))
		}
	}
	return out, nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return user.UserResponse{}, err
	}

	record, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.ToResponse(record), nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return user.UserResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.Username != nil {
		existing, err := s.UserRepository.GetByUsername(ctx, *req.Username)
		if err == nil && existing.ID != id {
			return user.UserResponse{}, user.ErrUsernameExists
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
	}

	if err := s.UserRepository.Update(ctx, id, req); err != nil {
		return user.UserResponse{}, err
	}

	record, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to get updated user: %w", err)
	}
	return user.ToResponse(record), nil
}
