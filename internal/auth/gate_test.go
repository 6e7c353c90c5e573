package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
)

const testSecret = "test-secret"

func issue(t *testing.T, svc *JWTService, identity Identity) string {
	t.Helper()
	token, err := svc.GenerateToken(identity)
	require.NoError(t, err)
	return token
}

func TestGate_Verify(t *testing.T) {
	svc := NewJWTService(testSecret)
	gate := NewGate(svc)
	editor := Identity{ID: "5", Username: "alice", Role: model.UserRoleEditor}
	token := issue(t, svc, editor)

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty", "", apperrors.ErrMissingToken},
		{"whitespace", "   ", apperrors.ErrMissingToken},
		{"bare prefix", "Bearer ", apperrors.ErrMissingToken},
		{"bare prefix padded", "Bearer    ", apperrors.ErrMissingToken},
		{"scheme only", "Bearer", apperrors.ErrMissingToken},
		{"lowercase scheme only", "bearer", apperrors.ErrMissingToken},
		{"lowercase prefix", "bearer " + token, nil},
		{"extra spaces after prefix", "Bearer   " + token, nil},
		{"scheme glued to token", "Bearer" + token, apperrors.ErrInvalidToken},
		{"with prefix", "Bearer " + token, nil},
		{"without prefix", token, nil},
		{"garbage", "Bearer not-a-jwt", apperrors.ErrInvalidToken},
		{"wrong key", "Bearer " + issue(t, NewJWTService("other-secret"), editor), apperrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := gate.Verify(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, editor, claims.Identity())
			assert.NotEmpty(t, claims.RegisteredClaims.ID)
		})
	}
}

func TestGate_Expiry(t *testing.T) {
	gate := NewGate(NewJWTService(testSecret))
	identity := Identity{ID: BuiltinAdminID, Username: "admin", Role: model.UserRoleAdmin}

	t.Run("accepted just before eight hours", func(t *testing.T) {
		issuedAt := time.Now().Add(-(7*time.Hour + 59*time.Minute))
		svc := NewJWTService(testSecret).WithClock(func() time.Time { return issuedAt })

		got, err := gate.Authorize(issue(t, svc, identity), "")
		require.NoError(t, err)
		assert.Equal(t, identity, *got)
	})

	t.Run("rejected just after eight hours", func(t *testing.T) {
		issuedAt := time.Now().Add(-(8*time.Hour + time.Minute))
		svc := NewJWTService(testSecret).WithClock(func() time.Time { return issuedAt })

		_, err := gate.Authorize(issue(t, svc, identity), "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestGate_Authorize_ExactRole(t *testing.T) {
	svc := NewJWTService(testSecret)
	gate := NewGate(svc)
	admin := issue(t, svc, Identity{ID: BuiltinAdminID, Username: "admin", Role: model.UserRoleAdmin})
	editor := issue(t, svc, Identity{ID: "5", Username: "alice", Role: model.UserRoleEditor})

	tests := []struct {
		name     string
		token    string
		required model.UserRole
		wantErr  error
	}{
		{"admin with no requirement", admin, "", nil},
		{"editor with no requirement", editor, "", nil},
		{"admin requires admin", admin, model.UserRoleAdmin, nil},
		{"editor requires admin", editor, model.UserRoleAdmin, apperrors.ErrForbidden},
		{"admin does not satisfy editor", admin, model.UserRoleEditor, apperrors.ErrForbidden},
		{"editor requires editor", editor, model.UserRoleEditor, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := gate.Authorize("Bearer "+tt.token, tt.required)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, identity)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, identity)
		})
	}
}

func TestIdentity_IsBuiltinAdmin(t *testing.T) {
	assert.True(t, Identity{ID: BuiltinAdminID}.IsBuiltinAdmin())
	assert.False(t, Identity{ID: "1"}.IsBuiltinAdmin())
}
