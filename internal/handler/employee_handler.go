package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shiftmaster/internal/model"
	"shiftmaster/internal/service"
)

// EmployeeHandler serves the employee roster.
type EmployeeHandler struct {
	svc service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// CreateEmployeeRequest is the body of POST /employees.
type CreateEmployeeRequest struct {
	Name           string `json:"name" validate:"required"`
	Responsibility string `json:"responsibility"`
	Contact        string `json:"contact"`
	Type           string `json:"type" validate:"required"`
}

// ListEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} model.Employee
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}

// CreateEmployee godoc
// @Summary Add employee
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateEmployeeRequest true "Employee"
// @Success 201 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	var req CreateEmployeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	employee, err := h.svc.Create(c.Request().Context(), identity, service.CreateEmployeeInput{
		Name:           req.Name,
		Responsibility: req.Responsibility,
		Contact:        req.Contact,
		Type:           model.EmployeeType(req.Type),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, employee)
}

// DeleteEmployee godoc
// @Summary Remove employee
// @Description Also removes every assignment of the employee.
// @Tags employees
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), identity, id); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
