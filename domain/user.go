package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, and perform actions like writing articles.
type User struct {
	ID        int64     // Unique identifier
	Username  string    // Display/login name (unique)
	Email     string    // Login email (unique)
	Password  string    // Argon2id hashed password
	Bio       string    // Profile bio
	Image     string    // Profile image URL
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserUpdate carries a partial user change. Nil fields keep their previous
// values. Password, when present, is already hashed.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
	Bio      *string
	Image    *string
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByUsername retrieves a user by their username.
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByEmail retrieves a user by their email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Insert creates a new user account.
	// Returns ErrConflict if the username or email is taken.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error

	// Update applies the non-nil fields of patch.
	Update(ctx context.Context, id int64, patch UserUpdate) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
// Handles authentication, registration, and user management.
type UserUsecase interface {
	// Register creates a new user account and returns it with a fresh
	// session token. Returns ErrConflict if the username or email exists.
	Register(ctx context.Context, username, email, password string) (User, string, error)

	// Login verifies user credentials and returns the user with a session
	// token. An unknown email and a wrong password both surface
	// ErrUnauthorized; the caller cannot tell them apart.
	Login(ctx context.Context, email, password string) (User, string, error)

	// GetCurrent resolves the authenticated user.
	GetCurrent(ctx context.Context, id int64) (User, error)

	// UpdateUser applies a partial profile change, hashing the password
	// when one is supplied.
	UpdateUser(ctx context.Context, id int64, username, email, password, bio, image *string) (User, error)
}
