package user

import "context"

// UserService defines directory operations over registered accounts
type UserService interface {
	// ListUsers retrieves users filtered by role, or every account when
	// role is empty (admin only)
	ListUsers(ctx context.Context, role string) ([]UserResponse, error)

	// GetUser retrieves a single user by id (admin only)
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// UpdateUser changes a user's username or full name (admin only)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
}
