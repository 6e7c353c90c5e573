package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"shiftmaster/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ScheduleHandler serves the weekly grid.
type ScheduleHandler struct {
	svc service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(svc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// Week godoc
// @Summary Weekly schedule grid
// @Tags schedule
// @Produce json
// @Param start query string false "First day (YYYY-MM-DD), defaults to this Monday"
// @Success 200 {object} service.WeekView
// @Failure 400 {object} errors.ErrorResponse
// @Router /schedule/week [get]
func (h *ScheduleHandler) Week(c echo.Context) error {
	week, err := h.svc.Week(c.Request().Context(), c.QueryParam("start"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, week)
}

// ExportWeek godoc
// @Summary Weekly schedule as a spreadsheet
// @Tags schedule
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start query string false "First day (YYYY-MM-DD), defaults to this Monday"
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse
// @Router /schedule/week/export [get]
func (h *ScheduleHandler) ExportWeek(c echo.Context) error {
	start := c.QueryParam("start")
	data, err := h.svc.ExportWeek(c.Request().Context(), start)
	if err != nil {
		return errorResponse(c, err)
	}

	name := "schedule.xlsx"
	if start != "" {
		name = fmt.Sprintf("schedule_%s.xlsx", start)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
