package domain

import (
	"errors"
	"time"
)

// Role types
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Errors surfaced by user operations.
var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

// ValidRole reports whether role is one of the three enumerated values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleSuperAdmin
}

// User represents an account with a role.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Username  string     `json:"username" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"` // bcrypt hash, never exposed
	Role      string     `json:"role" gorm:"not null;default:'user'"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has administrative privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id string) (*User, error)
	FindByUsername(username string) (*User, error)
	FindAll() ([]User, error)
	Update(user *User) error
	Delete(id string) error
	Count() (int64, error)
}
