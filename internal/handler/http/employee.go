package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/handler/http/middleware"
	"github.com/deeraj1899/EMS/internal/handler/http/response"
	"github.com/deeraj1899/EMS/internal/pkg/storage"
)

type EmployeeHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	ListByOrganization(w http.ResponseWriter, r *http.Request)
	ListDepartmentColleagues(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Promote(w http.ResponseWriter, r *http.Request)
	UpdateProfilePhoto(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
	fileStorage     storage.FileStorage
}

func NewEmployeeHandler(employeeService employee.Service, fileStorage storage.FileStorage) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		fileStorage:     fileStorage,
	}
}

// Add implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req employee.AddEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrganizationID = chi.URLParam(r, "organizationID")

	resp, err := h.employeeService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added successfully", resp)
}

// ListByOrganization implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	employees, err := h.employeeService.ListByOrganization(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// ListDepartmentColleagues implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListDepartmentColleagues(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListDepartmentColleagues(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Me implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.GetDetails(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")
	employeeID := chi.URLParam(r, "employeeID")
	if organizationID == "" || employeeID == "" {
		response.BadRequest(w, "Organization ID and Employee ID are required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), employeeID, organizationID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Promote implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Promote(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Promote(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee promoted successfully and code emailed", nil)
}

// UpdateProfilePhoto implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateProfilePhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No file uploaded", nil)
		return
	}
	defer file.Close()

	path := fmt.Sprintf("profiles/%s%s", uuid.NewString(), filepath.Ext(header.Filename))
	stored, err := h.fileStorage.Upload(r.Context(), file, path, header.Header.Get("Content-Type"))
	if err != nil {
		slog.Error("Profile photo upload failed", "error", err)
		response.InternalServerError(w, "Failed to store profile photo")
		return
	}

	url := h.fileStorage.PublicURL(stored)

	if err := h.employeeService.UpdateProfilePhoto(r.Context(), middleware.EmployeeID(r), url); err != nil {
		_ = h.fileStorage.Delete(r.Context(), stored)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", map[string]string{"profile_photo": url})
}
