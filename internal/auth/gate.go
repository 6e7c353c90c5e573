package auth

import (
	"strings"

	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
)

const bearerScheme = "Bearer"

// Gate verifies bearer tokens and enforces an optional required role.
// It holds no state beyond the signing key.
type Gate struct {
	jwt *JWTService
}

// NewGate creates a gate backed by the given JWT service.
func NewGate(jwtService *JWTService) *Gate {
	return &Gate{jwt: jwtService}
}

// Verify decodes a raw credential, with or without the "Bearer" scheme.
// A scheme with nothing after it counts as a missing token.
func (g *Gate) Verify(raw string) (*Claims, error) {
	token := stripScheme(strings.TrimSpace(raw))
	if token == "" {
		return nil, apperrors.ErrMissingToken
	}

	claims, err := g.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.ID == "" || claims.Username == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// Authorize verifies raw and, when requiredRole is non-empty, requires an exact role match.
// Admin does not implicitly satisfy an editor requirement.
func (g *Gate) Authorize(raw string, requiredRole model.UserRole) (*Identity, error) {
	claims, err := g.Verify(raw)
	if err != nil {
		return nil, err
	}
	identity := claims.Identity()
	if err := RequireRole(identity, requiredRole); err != nil {
		return nil, err
	}
	return &identity, nil
}

// RequireRole checks identity against requiredRole; an empty requirement always passes.
func RequireRole(identity Identity, requiredRole model.UserRole) error {
	if requiredRole == "" {
		return nil
	}
	if identity.Role != requiredRole {
		return apperrors.ErrForbidden
	}
	return nil
}

// stripScheme removes a case-insensitive "Bearer" scheme. HTTP servers trim
// trailing header whitespace, so a bare "Bearer" must be recognized too.
func stripScheme(token string) string {
	n := len(bearerScheme)
	if len(token) < n || !strings.EqualFold(token[:n], bearerScheme) {
		return token
	}
	if len(token) > n && token[n] != ' ' && token[n] != '\t' {
		return token
	}
	return strings.TrimSpace(token[n:])
}
