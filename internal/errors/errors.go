package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingToken is returned when a request carries no bearer credential.
	ErrMissingToken = errors.New("no token provided")
	// ErrInvalidToken is returned when a token fails signature, expiry or revocation checks.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when the caller's role does not match the required role.
	ErrForbidden = errors.New("insufficient role")
	// ErrInvalidCredentials is returned for both unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingField is returned when a required input field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
	// ErrInvalidID is returned when a path identifier cannot be parsed.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidEmployeeType is returned when an employee type is not FT or PT.
	ErrInvalidEmployeeType = errors.New(`type must be "FT" or "PT"`)
	// ErrInvalidUserRole is returned when a user role is not admin or editor.
	ErrInvalidUserRole = errors.New(`role must be "admin" or "editor"`)

	// ErrEmployeeNotFound is returned when an employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrRoleNotFound is returned when a role does not exist.
	ErrRoleNotFound = errors.New("role not found")
	// ErrTimeSlotNotFound is returned when a time slot does not exist.
	ErrTimeSlotNotFound = errors.New("time slot not found")
	// ErrAssignmentNotFound is returned when no assignment exists for an (employee, date) pair.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrReferenceNotFound is returned when a write references a missing employee, role or time slot.
	ErrReferenceNotFound = errors.New("referenced employee, role or time slot does not exist")

	// ErrAssignmentConflict is returned when a concurrent insert claimed the same (employee, date) key.
	ErrAssignmentConflict = errors.New("assignment for this employee and date was created concurrently; retry the request")
	// ErrRoleExists is returned when a role name is already taken.
	ErrRoleExists = errors.New("role with this name already exists")
	// ErrRoleInUse is returned when deleting a role still referenced by assignments.
	ErrRoleInUse = errors.New("cannot delete role that is currently assigned to shifts")
	// ErrTimeSlotExists is returned when a time slot label is already taken.
	ErrTimeSlotExists = errors.New("time slot with this label already exists")
	// ErrTimeSlotInUse is returned when deleting a time slot still referenced by assignments.
	ErrTimeSlotInUse = errors.New("cannot delete time slot that is currently assigned to shifts")
	// ErrUsernameTaken is returned when a username already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrBuiltinUsername is returned when creating a user named like the built-in admin.
	ErrBuiltinUsername = errors.New("cannot create a user with the built-in admin username")
	// ErrBuiltinAdminProtected is returned when deleting the built-in admin.
	ErrBuiltinAdminProtected = errors.New("the built-in admin account cannot be deleted")

	// ErrStoreUnavailable wraps unexpected persistence failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

type mapping struct {
	target error
	status int
	code   string
}

var mappings = []mapping{
	{ErrMissingToken, http.StatusUnauthorized, "MISSING_TOKEN"},
	{ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{ErrBuiltinAdminProtected, http.StatusForbidden, "BUILTIN_ADMIN_PROTECTED"},

	{ErrMissingField, http.StatusBadRequest, "MISSING_FIELD"},
	{ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
	{ErrInvalidID, http.StatusBadRequest, "INVALID_ID"},
	{ErrInvalidEmployeeType, http.StatusBadRequest, "INVALID_EMPLOYEE_TYPE"},
	{ErrInvalidUserRole, http.StatusBadRequest, "INVALID_USER_ROLE"},
	{ErrReferenceNotFound, http.StatusBadRequest, "REFERENCE_NOT_FOUND"},

	{ErrEmployeeNotFound, http.StatusNotFound, "EMPLOYEE_NOT_FOUND"},
	{ErrRoleNotFound, http.StatusNotFound, "ROLE_NOT_FOUND"},
	{ErrTimeSlotNotFound, http.StatusNotFound, "TIME_SLOT_NOT_FOUND"},
	{ErrAssignmentNotFound, http.StatusNotFound, "ASSIGNMENT_NOT_FOUND"},
	{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},

	{ErrAssignmentConflict, http.StatusConflict, "ASSIGNMENT_CONFLICT"},
	{ErrRoleExists, http.StatusConflict, "ROLE_EXISTS"},
	{ErrRoleInUse, http.StatusConflict, "ROLE_IN_USE"},
	{ErrTimeSlotExists, http.StatusConflict, "TIME_SLOT_EXISTS"},
	{ErrTimeSlotInUse, http.StatusConflict, "TIME_SLOT_IN_USE"},
	{ErrUsernameTaken, http.StatusConflict, "USERNAME_TAKEN"},
	{ErrBuiltinUsername, http.StatusConflict, "USERNAME_TAKEN"},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors keep their
// message so field names survive; anything unknown becomes a bare 500.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return NewHTTPError(m.status, err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
