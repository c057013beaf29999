package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deeraj1899/EMS/internal/domain/attendance"
	"github.com/deeraj1899/EMS/internal/handler/http/middleware"
	"github.com/deeraj1899/EMS/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	MyRecords(w http.ResponseWriter, r *http.Request)
	EmployeeRecords(w http.ResponseWriter, r *http.Request)
	StatusToday(w http.ResponseWriter, r *http.Request)
	DepartmentStatusToday(w http.ResponseWriter, r *http.Request)
	MarkAbsentees(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckIn(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked", resp)
}

// MyRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyRecords(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.GetEmployeeRecords(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// EmployeeRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EmployeeRecords(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.attendanceService.GetEmployeeRecords(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// StatusToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StatusToday(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.StatusToday(r.Context(), middleware.OrganizationID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// DepartmentStatusToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DepartmentStatusToday(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	resp, err := h.attendanceService.DepartmentStatusToday(r.Context(), organizationID, middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MarkAbsentees implements AttendanceHandler. Exposed for manual runs;
// the cron job covers the scheduled sweep.
func (h *AttendanceHandlerImpl) MarkAbsentees(w http.ResponseWriter, r *http.Request) {
	outcomes, err := h.attendanceService.MarkAbsentees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absentee sweep completed", outcomes)
}
