package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shiftmaster/internal/auth"
	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

const bcryptCost = 10

// UserView is a login as listed to admins. The built-in admin carries IsBuiltIn.
type UserView struct {
	ID        string         `json:"id"`
	Username  string         `json:"username"`
	Role      model.UserRole `json:"role"`
	IsBuiltIn bool           `json:"isBuiltIn,omitempty"`
}

// CreateUserInput is the payload for adding a database-backed login.
type CreateUserInput struct {
	Username string         `json:"username"`
	Password string         `json:"password"`
	Role     model.UserRole `json:"role"`
}

// UserService manages database-backed logins.
type UserService interface {
	List(ctx context.Context) ([]UserView, error)
	Create(ctx context.Context, actor auth.Identity, in CreateUserInput) (*UserView, error)
	Delete(ctx context.Context, actor auth.Identity, id string) error
}

type userService struct {
	repo            repository.UserRepository
	audit           AuditService
	builtinUsername string
}

// NewUserService builds a UserService. builtinUsername is the reserved configured admin name.
func NewUserService(repo repository.UserRepository, audit AuditService, builtinUsername string) UserService {
	return &userService{repo: repo, audit: audit, builtinUsername: builtinUsername}
}

func newUserView(u *model.User) UserView {
	return UserView{ID: strconv.FormatUint(uint64(u.ID), 10), Username: u.Username, Role: u.Role}
}

// List returns the built-in admin first, then database users ordered by username.
func (s *userService) List(ctx context.Context) ([]UserView, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr("list users", err)
	}

	views := make([]UserView, 0, len(users)+1)
	views = append(views, UserView{
		ID:        auth.BuiltinAdminID,
		Username:  s.builtinUsername,
		Role:      model.UserRoleAdmin,
		IsBuiltIn: true,
	})
	for i := range users {
		views = append(views, newUserView(&users[i]))
	}
	return views, nil
}

func (s *userService) Create(ctx context.Context, actor auth.Identity, in CreateUserInput) (*UserView, error) {
	username := strings.TrimSpace(in.Username)
	switch {
	case username == "":
		return nil, missingField("username")
	case in.Password == "":
		return nil, missingField("password")
	case in.Role == "":
		return nil, missingField("role")
	}
	if !in.Role.Valid() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if username == s.builtinUsername {
		return nil, apperrors.ErrBuiltinUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         in.Role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, storeErr("create user", err)
	}

	s.audit.Record(ctx, actor.Username, model.ActionUserCreated, fmt.Sprintf("Created user: %s (%s)", user.Username, user.Role))
	view := newUserView(user)
	return &view, nil
}

// Delete removes a database user. The built-in admin can never be deleted.
func (s *userService) Delete(ctx context.Context, actor auth.Identity, id string) error {
	if id == auth.BuiltinAdminID {
		return apperrors.ErrBuiltinAdminProtected
	}
	userID, err := strconv.ParseUint(id, 10, 64)
	if err != nil || userID == 0 {
		return apperrors.ErrInvalidID
	}

	user, err := s.repo.FindByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return storeErr("find user", err)
	}

	if err := s.repo.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return storeErr("delete user", err)
	}

	s.audit.Record(ctx, actor.Username, model.ActionUserDeleted, fmt.Sprintf("Deleted user: %s", user.Username))
	return nil
}
