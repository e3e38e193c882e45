package handlers

import (
	"net/http"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/app"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/job"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/middleware"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/response"
)

// EmployerHandler serves the employer dashboard routes: the caller's own
// postings with application counts, and status management for the
// applications received on them.
type EmployerHandler struct {
	jobs         *app.JobService
	applications *app.ApplicationService
}

func NewEmployerHandler(jobs *app.JobService, applications *app.ApplicationService) *EmployerHandler {
	return &EmployerHandler{jobs: jobs, applications: applications}
}

func (h *EmployerHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByOwner(r.Context(), account.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *EmployerHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromVars(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.Update(r.Context(), account, id, req.toUpdate())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

func (h *EmployerHandler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromVars(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	status := job.Status(req.Status)
	if status != job.StatusActive && status != job.StatusClosed {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"status": "must be Active or Closed"}))
		return
	}
	updated, err := h.jobs.UpdateStatus(r.Context(), account, id, status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *EmployerHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromVars(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), account, id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Job removed successfully"})
}

func (h *EmployerHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListByOwner(r.Context(), account.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *EmployerHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	id, err := idFromVars(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	update, err := req.toUpdate()
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), account, id, update)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
