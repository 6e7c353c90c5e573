package middleware

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"shiftmaster/internal/auth"
	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
)

const (
	claimsContextKey    = "claims"
	identityContextKey  = "identity"
	authErrorContextKey = "auth_error"
)

// Authenticate verifies the Authorization header through the gate and rejects tokens
// revoked by logout. On success the identity is available via CurrentIdentity.
func Authenticate(gate *auth.Gate, tokens auth.TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		// No prefix: the gate accepts the credential with or without "Bearer ".
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ContextKey:  claimsContextKey,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			claims, err := gate.Verify(raw)
			if err != nil {
				c.Set(authErrorContextKey, err)
				return nil, err
			}
			if tokens != nil {
				if revoked, _ := tokens.IsRevoked(c.Request().Context(), claims.RegisteredClaims.ID); revoked {
					c.Set(authErrorContextKey, apperrors.ErrInvalidToken)
					return nil, apperrors.ErrInvalidToken
				}
			}
			return claims, nil
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get(claimsContextKey).(*auth.Claims); ok {
				c.Set(identityContextKey, claims.Identity())
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Parsing never ran when the header could not be extracted.
			gateErr, parsed := c.Get(authErrorContextKey).(error)
			if !parsed || errors.Is(gateErr, apperrors.ErrMissingToken) {
				return httpError(apperrors.ErrMissingToken)
			}
			return httpError(apperrors.ErrInvalidToken)
		},
	})
}

// RequireRole rejects identities whose role is not exactly role. It must run after Authenticate.
func RequireRole(role model.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := CurrentIdentity(c)
			if !ok {
				return httpError(apperrors.ErrMissingToken)
			}
			if err := auth.RequireRole(identity, role); err != nil {
				return httpError(err)
			}
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity set by Authenticate.
func CurrentIdentity(c echo.Context) (auth.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(auth.Identity)
	return identity, ok
}

// CurrentClaims returns the verified token claims set by Authenticate.
func CurrentClaims(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	return claims, ok
}

func httpError(err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
}
