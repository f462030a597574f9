package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameExists        = errors.New("username already registered")
	ErrInvalidRole           = errors.New("role must be 'admin' or 'staff'")
	ErrInvalidPasswordLength = errors.New("password must be at least 8 characters")
	ErrAdminRoleRequired     = errors.New("admin role required")
	ErrStaffRoleRequired     = errors.New("staff role required")
)
