package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/deeraj1899/EMS/internal/domain/organization"
	"github.com/deeraj1899/EMS/internal/handler/http/response"
	"github.com/deeraj1899/EMS/internal/pkg/storage"
)

// maxUploadSize bounds multipart form memory for logo and photo uploads.
const maxUploadSize = 5 << 20

type OrganizationHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	orgService  organization.Service
	fileStorage storage.FileStorage
}

func NewOrganizationHandler(orgService organization.Service, fileStorage storage.FileStorage) OrganizationHandler {
	return &OrganizationHandlerImpl{
		orgService:  orgService,
		fileStorage: fileStorage,
	}
}

// Register implements OrganizationHandler. The payload is multipart so
// the logo can ride along with the form fields.
func (h *OrganizationHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	price, _ := strconv.Atoi(r.FormValue("price"))
	duration, _ := strconv.Atoi(r.FormValue("duration"))

	req := organization.RegisterRequest{
		Name:            r.FormValue("organization_name"),
		Mail:            r.FormValue("mail"),
		AdminName:       r.FormValue("admin_name"),
		Departments:     r.MultipartForm.Value["departments"],
		AdminDepartment: r.FormValue("admin_department"),
		Price:           price,
		DurationMonths:  duration,
	}

	var logoPath string
	if file, header, err := r.FormFile("logo"); err == nil {
		defer file.Close()

		path := fmt.Sprintf("logos/%s%s", uuid.NewString(), filepath.Ext(header.Filename))
		stored, err := h.fileStorage.Upload(r.Context(), file, path, header.Header.Get("Content-Type"))
		if err != nil {
			slog.Error("Logo upload failed", "error", err)
			response.InternalServerError(w, "Failed to store organization logo")
			return
		}
		req.LogoURL = h.fileStorage.PublicURL(stored)
		logoPath = stored
	}

	resp, err := h.orgService.Register(r.Context(), req)
	if err != nil {
		if logoPath != "" {
			_ = h.fileStorage.Delete(r.Context(), logoPath)
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Organization registered successfully", resp)
}

// List implements OrganizationHandler.
func (h *OrganizationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, orgs)
}

// ListDepartments implements OrganizationHandler.
func (h *OrganizationHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	depts, err := h.orgService.ListDepartments(r.Context(), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, depts)
}

// Delete implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	if err := h.orgService.Delete(r.Context(), organizationID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Organization deleted successfully", nil)
}
