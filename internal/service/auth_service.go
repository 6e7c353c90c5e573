package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"shiftmaster/internal/auth"
	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string        `json:"token"`
	User  auth.Identity `json:"user"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	providers  []auth.IdentityProvider
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	audit      AuditService
	log        *zap.Logger
}

// NewAuthService creates a new authentication service. Providers are consulted in order;
// the first one that knows the username decides the outcome.
func NewAuthService(providers []auth.IdentityProvider, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, audit AuditService, log *zap.Logger) AuthService {
	if log == nil {
		log = zap.L()
	}
	return &authService{
		providers:  providers,
		jwtService: jwtService,
		tokenStore: tokenStore,
		audit:      audit,
		log:        log.Named("auth"),
	}
}

// Login authenticates a username/password pair and issues a token.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if strings.TrimSpace(username) == "" {
		return nil, missingField("username")
	}
	if password == "" {
		return nil, missingField("password")
	}

	for _, p := range s.providers {
		identity, err := p.Authenticate(ctx, username, password)
		switch {
		case err == nil:
			return s.issue(ctx, *identity)
		case errors.Is(err, auth.ErrUnknownIdentity):
			continue
		case errors.Is(err, auth.ErrPasswordMismatch):
			s.audit.Record(ctx, username, model.ActionLoginFailed, "Incorrect password")
			return nil, apperrors.ErrInvalidCredentials
		default:
			return nil, storeErr("authenticate", err)
		}
	}

	s.audit.Record(ctx, username, model.ActionLoginFailed, "User not found")
	return nil, apperrors.ErrInvalidCredentials
}

func (s *authService) issue(ctx context.Context, identity auth.Identity) (*LoginResult, error) {
	token, err := s.jwtService.GenerateToken(identity)
	if err != nil {
		return nil, err
	}

	details := "User logged in"
	if identity.IsBuiltinAdmin() {
		details = "Built-in admin logged in"
	}
	s.audit.Record(ctx, identity.Username, model.ActionLogin, details)

	return &LoginResult{Token: token, User: identity}, nil
}

// Logout revokes the presented token until it would have expired.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return apperrors.ErrMissingToken
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.tokenStore.Revoke(ctx, claims.RegisteredClaims.ID, ttl); err != nil {
		s.log.Warn("failed to revoke token", zap.String("username", claims.Username), zap.Error(err))
	}

	s.audit.Record(ctx, claims.Username, model.ActionLogout, "User logged out")
	return nil
}
