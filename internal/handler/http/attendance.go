package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// MarkAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "Failed to decode mark attendance request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, employee.ErrEmployeeNotFound):
			response.NotFound(w, "Employee does not exist")
		case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
			response.Conflict(w, fmt.Sprintf("Attendance already marked for employee %d on %s", req.EmployeeID, strings.TrimSpace(req.Date)))
		default:
			response.HandleError(w, err)
		}
		return
	}

	response.Created(w, "Attendance marked successfully", result)
}

// GetEmployeeAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r, "emp_id")
	if !ok {
		return
	}

	filter := attendance.AttendanceFilter{EmployeeID: employeeID}
	if date := r.URL.Query().Get("attendance_date"); date != "" {
		filter.Date = &date
	}

	results, err := h.attendanceService.GetEmployeeAttendance(r.Context(), filter)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			response.BadRequest(w, "Invalid attendance_date parameter", verrs.ToMap())
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
