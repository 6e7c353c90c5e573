package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shiftmaster/internal/service"
)

// AssignmentHandler serves shift assignments.
type AssignmentHandler struct {
	svc service.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(svc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

// UpsertAssignmentRequest is the body of POST /assignments.
type UpsertAssignmentRequest struct {
	EmployeeID     uint   `json:"employee_id" validate:"required"`
	AssignmentDate string `json:"assignment_date" validate:"required,datetime=2006-01-02"`
	RoleID         uint   `json:"role_id" validate:"required"`
	TimeSlotID     *uint  `json:"time_slot_id"`
}

// ListAssignments godoc
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} service.AssignmentView
// @Failure 400 {object} errors.ErrorResponse
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c echo.Context) error {
	views, err := h.svc.List(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// UpsertAssignment godoc
// @Summary Create or update the assignment of an employee on a date
// @Description Updates the existing row for (employee_id, assignment_date) in place, otherwise inserts one.
// @Tags assignments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpsertAssignmentRequest true "Assignment"
// @Success 200 {object} service.AssignmentView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse "created concurrently, retry"
// @Failure 500 {object} errors.ErrorResponse
// @Router /assignments [post]
func (h *AssignmentHandler) UpsertAssignment(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	var req UpsertAssignmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.svc.Upsert(c.Request().Context(), identity, service.UpsertAssignmentInput{
		EmployeeID:     req.EmployeeID,
		AssignmentDate: req.AssignmentDate,
		RoleID:         req.RoleID,
		TimeSlotID:     req.TimeSlotID,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteAssignment godoc
// @Summary Delete the assignment of an employee on a date
// @Tags assignments
// @Security BearerAuth
// @Param employeeId path int true "Employee ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /assignments/{employeeId}/{date} [delete]
func (h *AssignmentHandler) DeleteAssignment(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	employeeID, err := pathID(c, "employeeId")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), identity, employeeID, c.Param("date")); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
