package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

// DaysPerWeek is the width of the schedule grid.
const DaysPerWeek = 7

const scheduleSheet = "Schedule"

// WeekRow is one employee's line of the grid. Cells[i] belongs to Dates[i] and is nil
// when the employee has no shift that day.
type WeekRow struct {
	Employee model.Employee    `json:"employee"`
	Cells    []*AssignmentView `json:"cells"`
}

// WeekView is the seven-day schedule grid starting at Start.
type WeekView struct {
	Start model.Date   `json:"start"`
	End   model.Date   `json:"end"`
	Dates []model.Date `json:"dates"`
	Rows  []WeekRow    `json:"rows"`
}

// ScheduleService builds the weekly grid and its spreadsheet export.
type ScheduleService interface {
	Week(ctx context.Context, start string) (*WeekView, error)
	ExportWeek(ctx context.Context, start string) ([]byte, error)
}

type scheduleService struct {
	employees   repository.EmployeeRepository
	assignments repository.AssignmentRepository
	now         func() time.Time
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(employees repository.EmployeeRepository, assignments repository.AssignmentRepository) ScheduleService {
	return &scheduleService{
		employees:   employees,
		assignments: assignments,
		now:         time.Now,
	}
}

// weekStart parses start, defaulting to the Monday of the current week.
func (s *scheduleService) weekStart(start string) (model.Date, error) {
	if start == "" {
		today := model.NewDate(s.now())
		offset := (int(today.Weekday()) + 6) % 7
		return today.AddDays(-offset), nil
	}
	d, err := model.ParseDate(start)
	if err != nil {
		return model.Date{}, apperrors.ErrInvalidDate
	}
	return d, nil
}

// Week returns every employee with their assignments over seven consecutive dates.
func (s *scheduleService) Week(ctx context.Context, start string) (*WeekView, error) {
	from, err := s.weekStart(start)
	if err != nil {
		return nil, err
	}
	to := from.AddDays(DaysPerWeek - 1)

	dates := make([]model.Date, DaysPerWeek)
	index := make(map[string]int, DaysPerWeek)
	for i := range dates {
		dates[i] = from.AddDays(i)
		index[dates[i].String()] = i
	}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, storeErr("list employees", err)
	}
	assignments, err := s.assignments.List(ctx, repository.AssignmentFilter{From: &from, To: &to})
	if err != nil {
		return nil, storeErr("list assignments", err)
	}

	rows := make([]WeekRow, len(employees))
	rowOf := make(map[uint]int, len(employees))
	for i, e := range employees {
		rows[i] = WeekRow{Employee: e, Cells: make([]*AssignmentView, DaysPerWeek)}
		rowOf[e.ID] = i
	}
	for i := range assignments {
		r, ok := rowOf[assignments[i].EmployeeID]
		if !ok {
			continue
		}
		day, ok := index[assignments[i].AssignmentDate.String()]
		if !ok {
			continue
		}
		view := NewAssignmentView(&assignments[i])
		rows[r].Cells[day] = &view
	}

	return &WeekView{Start: from, End: to, Dates: dates, Rows: rows}, nil
}

// ExportWeek renders the weekly grid as an XLSX workbook.
func (s *scheduleService) ExportWeek(ctx context.Context, start string) ([]byte, error) {
	week, err := s.Week(ctx, start)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Employee", "Type"}
	for _, d := range week.Dates {
		headers = append(headers, fmt.Sprintf("%s %s", d.Weekday().String()[:3], d))
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := writeCell(f, scheduleSheet, cell, header, 0); err != nil {
			return nil, err
		}
	}

	styles := make(map[string]int)
	for r, row := range week.Rows {
		line := r + 2
		if err := writeCell(f, scheduleSheet, fmt.Sprintf("A%d", line), row.Employee.Name, 0); err != nil {
			return nil, err
		}
		if err := writeCell(f, scheduleSheet, fmt.Sprintf("B%d", line), string(row.Employee.Type), 0); err != nil {
			return nil, err
		}

		for day, a := range row.Cells {
			if a == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(day+3, line)
			style, _ := s.fillStyle(f, styles, a.RoleColor)
			if err := writeCell(f, scheduleSheet, cell, cellText(a), style); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetColWidth(scheduleSheet, "A", "A", 24); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(scheduleSheet, "C", "I", 18); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeCell sets one cell and, when style is non-zero, its style.
func writeCell(f *excelize.File, sheet, cell string, value interface{}, style int) error {
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("write cell %s: %w", cell, err)
	}
	if style == 0 {
		return nil
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("style cell %s: %w", cell, err)
	}
	return nil
}

func cellText(a *AssignmentView) string {
	if a.TimeSlotLabel == "" {
		return a.RoleName
	}
	return fmt.Sprintf("%s (%s)", a.RoleName, a.TimeSlotLabel)
}

// fillStyle returns a cached solid-fill style for a #RRGGBB color.
func (s *scheduleService) fillStyle(f *excelize.File, styles map[string]int, color string) (int, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(hex) != 6 {
		return 0, false
	}
	if id, ok := styles[hex]; ok {
		return id, true
	}
	id, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{hex}, Pattern: 1},
	})
	if err != nil {
		return 0, false
	}
	styles[hex] = id
	return id, true
}
