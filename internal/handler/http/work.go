package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deeraj1899/EMS/internal/domain/work"
	"github.com/deeraj1899/EMS/internal/handler/http/middleware"
	"github.com/deeraj1899/EMS/internal/handler/http/response"
)

type WorkHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	ListMySubmissions(w http.ResponseWriter, r *http.Request)
	ListAssignedSubmissions(w http.ResponseWriter, r *http.Request)
	AddReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
	EditReview(w http.ResponseWriter, r *http.Request)
	DeleteReview(w http.ResponseWriter, r *http.Request)
}

type WorkHandlerImpl struct {
	workService work.Service
}

func NewWorkHandler(workService work.Service) WorkHandler {
	return &WorkHandlerImpl{workService: workService}
}

// Assign implements WorkHandler.
func (h *WorkHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req work.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign work decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AssignedTo = chi.URLParam(r, "employeeID")
	req.AssignedBy = middleware.EmployeeID(r)

	created, err := h.workService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work assigned successfully", created)
}

// ListMine implements WorkHandler.
func (h *WorkHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	works, err := h.workService.ListMine(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, works)
}

// Remove implements WorkHandler.
func (h *WorkHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	workID := chi.URLParam(r, "workID")
	if workID == "" {
		response.BadRequest(w, "Work ID is required", nil)
		return
	}

	if err := h.workService.Remove(r.Context(), middleware.EmployeeID(r), workID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work removed successfully", nil)
}

// Submit implements WorkHandler.
func (h *WorkHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req work.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit work decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SubmittedBy = middleware.EmployeeID(r)

	created, err := h.workService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work submitted successfully", created)
}

// ListMySubmissions implements WorkHandler.
func (h *WorkHandlerImpl) ListMySubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.workService.ListMySubmissions(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, submissions)
}

// ListAssignedSubmissions implements WorkHandler.
func (h *WorkHandlerImpl) ListAssignedSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.workService.ListAssignedSubmissions(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, submissions)
}

// AddReview implements WorkHandler.
func (h *WorkHandlerImpl) AddReview(w http.ResponseWriter, r *http.Request) {
	var req work.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ReviewedBy = middleware.EmployeeID(r)
	req.OrganizationID = middleware.OrganizationID(r)

	created, err := h.workService.AddReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review added successfully", created)
}

// ListReviews implements WorkHandler.
func (h *WorkHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	submittedWorkID := chi.URLParam(r, "submittedWorkID")
	if submittedWorkID == "" {
		response.BadRequest(w, "Submitted work ID is required", nil)
		return
	}

	reviews, err := h.workService.ListReviews(r.Context(), submittedWorkID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// EditReview implements WorkHandler.
func (h *WorkHandlerImpl) EditReview(w http.ResponseWriter, r *http.Request) {
	var req work.EditReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Edit review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ReviewID = chi.URLParam(r, "reviewID")

	updated, err := h.workService.EditReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review updated successfully", updated)
}

// DeleteReview implements WorkHandler.
func (h *WorkHandlerImpl) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")
	if reviewID == "" {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.workService.DeleteReview(r.Context(), reviewID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review deleted", nil)
}
