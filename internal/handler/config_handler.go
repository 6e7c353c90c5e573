package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shiftmaster/internal/service"
)

// ConfigHandler serves roles and time slots.
type ConfigHandler struct {
	svc service.ConfigService
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(svc service.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// CreateRoleRequest is the body of POST /config/roles.
type CreateRoleRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required"`
}

// CreateTimeSlotRequest is the body of POST /config/times.
type CreateTimeSlotRequest struct {
	Label     string `json:"label" validate:"required"`
	TimeRange string `json:"time_range" validate:"required"`
}

// ListRoles godoc
// @Summary List roles
// @Tags config
// @Produce json
// @Success 200 {array} model.Role
// @Router /config/roles [get]
func (h *ConfigHandler) ListRoles(c echo.Context) error {
	roles, err := h.svc.ListRoles(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

// CreateRole godoc
// @Summary Add role
// @Tags config
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateRoleRequest true "Role"
// @Success 201 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /config/roles [post]
func (h *ConfigHandler) CreateRole(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	var req CreateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, err := h.svc.CreateRole(c.Request().Context(), identity, service.CreateRoleInput{Name: req.Name, Color: req.Color})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, role)
}

// DeleteRole godoc
// @Summary Delete role
// @Tags config
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse "role is assigned to shifts"
// @Router /config/roles/{id} [delete]
func (h *ConfigHandler) DeleteRole(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteRole(c.Request().Context(), identity, id); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTimeSlots godoc
// @Summary List time slots
// @Tags config
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.TimeSlot
// @Router /config/times [get]
func (h *ConfigHandler) ListTimeSlots(c echo.Context) error {
	slots, err := h.svc.ListTimeSlots(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, slots)
}

// CreateTimeSlot godoc
// @Summary Add time slot
// @Tags config
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateTimeSlotRequest true "Time slot"
// @Success 201 {object} model.TimeSlot
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /config/times [post]
func (h *ConfigHandler) CreateTimeSlot(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	var req CreateTimeSlotRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	slot, err := h.svc.CreateTimeSlot(c.Request().Context(), identity, service.CreateTimeSlotInput{Label: req.Label, TimeRange: req.TimeRange})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, slot)
}

// DeleteTimeSlot godoc
// @Summary Delete time slot
// @Tags config
// @Security BearerAuth
// @Param id path int true "Time slot ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse "time slot is assigned to shifts"
// @Router /config/times/{id} [delete]
func (h *ConfigHandler) DeleteTimeSlot(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteTimeSlot(c.Request().Context(), identity, id); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
