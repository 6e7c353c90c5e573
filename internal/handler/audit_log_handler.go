package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/service"
)

// AuditLogHandler serves the audit trail.
type AuditLogHandler struct {
	svc service.AuditService
}

// NewAuditLogHandler creates a new audit log handler.
func NewAuditLogHandler(svc service.AuditService) *AuditLogHandler {
	return &AuditLogHandler{svc: svc}
}

// ListAuditLogs godoc
// @Summary List audit log entries, newest first
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} model.AuditLog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "limit must be a non-negative integer",
				Code:  "VALIDATION_ERROR",
			})
		}
		limit = n
	}

	entries, err := h.svc.List(c.Request().Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ClearAuditLogs godoc
// @Summary Delete every audit log entry
// @Tags audit
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /audit-logs [delete]
func (h *AuditLogHandler) ClearAuditLogs(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	if err := h.svc.Clear(c.Request().Context(), identity); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
