package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a write rejected by a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// NotFoundError reports a referenced row that does not exist (or no longer exists).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "Record not found (it may have been deleted)."
	}
	return strings.ToUpper(e.Resource[:1]) + e.Resource[1:] + " not found (it may have been deleted)."
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError carries a message the collaborator can show as is.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// StorageError wraps a connectivity or engine failure that is neither a
// missing row nor a constraint the caller can act on.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage error during " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// User is a front-desk login. Password holds the lowercase hex SHA-256 digest.
type User struct {
	Username string `gorm:"column:username;primaryKey;type:varchar(100)"`
	Password string `gorm:"column:password;type:varchar(64);not null"`
}

func (User) TableName() string {
	return "users"
}

var ErrUserNotFound = &NotFoundError{Resource: "user"}

type UserRepository interface {
	// GetByUsername matches exactly, case included. Returns ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Upsert inserts u or replaces the stored digest of the same username.
	Upsert(ctx context.Context, u *User) error
}

// Option pairs a display label with a record id for pickers.
type Option struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"` // Always "Bearer"
}

type Claims struct {
	Username string `json:"sub"`
}
