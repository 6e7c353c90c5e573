package auth

import "shiftmaster/internal/model"

// BuiltinAdminID is the reserved subject id of the configuration-sourced admin.
const BuiltinAdminID = "admin_builtin"

// Identity is the acting principal decoded from a verified token.
// It is request scoped and passed explicitly to services.
type Identity struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Role     model.UserRole `json:"role"`
}

// IsBuiltinAdmin reports whether the identity is the configured built-in admin.
func (i Identity) IsBuiltinAdmin() bool {
	return i.ID == BuiltinAdminID
}
