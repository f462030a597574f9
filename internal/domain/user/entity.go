package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Can build schedules and generate reports
	RoleStaff Role = "staff" // Can be rostered and clock in/out of own shifts
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleStaff),
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage schedules and reports
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaff checks if user can appear on a roster
func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}
