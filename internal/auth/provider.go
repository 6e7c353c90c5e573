package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

var (
	// ErrUnknownIdentity means the provider does not know the username; the next provider is tried.
	ErrUnknownIdentity = errors.New("identity not found")
	// ErrPasswordMismatch means the provider knows the username but the password is wrong.
	ErrPasswordMismatch = errors.New("password mismatch")
)

// IdentityProvider authenticates a username/password pair.
type IdentityProvider interface {
	Authenticate(ctx context.Context, username, password string) (*Identity, error)
}

// BuiltinAdminProvider matches the configured admin pair by plain comparison.
// It never touches the user table.
type BuiltinAdminProvider struct {
	username string
	password string
}

// NewBuiltinAdminProvider creates a provider for the configured admin credentials.
func NewBuiltinAdminProvider(username, password string) *BuiltinAdminProvider {
	return &BuiltinAdminProvider{username: username, password: password}
}

// Username returns the reserved built-in admin username.
func (p *BuiltinAdminProvider) Username() string {
	return p.username
}

// Authenticate implements IdentityProvider.
func (p *BuiltinAdminProvider) Authenticate(_ context.Context, username, password string) (*Identity, error) {
	if p.username == "" || username != p.username || password != p.password {
		return nil, ErrUnknownIdentity
	}
	return &Identity{ID: BuiltinAdminID, Username: username, Role: model.UserRoleAdmin}, nil
}

// DatabaseProvider authenticates against bcrypt hashes in the user table.
type DatabaseProvider struct {
	users repository.UserRepository
}

// NewDatabaseProvider creates a provider backed by the user repository.
func NewDatabaseProvider(users repository.UserRepository) *DatabaseProvider {
	return &DatabaseProvider{users: users}
}

// Authenticate implements IdentityProvider.
func (p *DatabaseProvider) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	user, err := p.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownIdentity
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrPasswordMismatch
	}

	return &Identity{
		ID:       strconv.FormatUint(uint64(user.ID), 10),
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
