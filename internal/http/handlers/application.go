package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/app"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/application"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/middleware"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/response"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/upload"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	uploads      *upload.Store
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, uploads *upload.Store, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, uploads: uploads, limiter: limiter}
}

// Apply handles the multipart submission: resume file plus jobId, coverLetter,
// email, and phone form fields. The file is validated and stored before the
// application row is written, mirroring the upload-then-create flow.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if err := r.ParseMultipartForm(upload.MaxResumeBytes + 1<<20); err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid multipart body", err))
		return
	}
	jobID, err := common.ParseUUID(r.FormValue("jobId"))
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"jobId": "invalid job id"}))
		return
	}
	if h.limiter != nil {
		key := "apply:" + jobID.String() + ":" + account.ID.String()
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}

	sub := app.Submission{
		JobID:       jobID,
		CoverLetter: r.FormValue("coverLetter"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
	}
	_, header, err := r.FormFile("resume")
	switch {
	case err == nil:
		stored, err := h.uploads.Save(header)
		if err != nil {
			response.Error(w, err)
			return
		}
		sub.ResumeURL = stored.URL
		sub.ResumeName = stored.Name
	case errors.Is(err, http.ErrMissingFile):
		// Left empty; the service reports the missing-resume validation error.
	default:
		response.Error(w, common.NewError(common.CodeValidation, "invalid resume upload", err))
		return
	}

	created, err := h.applications.Apply(r.Context(), account.ID, sub)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListByApplicant(r.Context(), account.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromVars(r, "jobId")
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListForJob(r.Context(), account, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type updateApplicationRequest struct {
	Status            string `json:"status"`
	InterviewDate     string `json:"interviewDate,omitempty"`
	InterviewTime     string `json:"interviewTime,omitempty"`
	InterviewLocation string `json:"interviewLocation,omitempty"`
}

func (req updateApplicationRequest) toUpdate() (app.StatusUpdate, error) {
	update := app.StatusUpdate{
		Status:            application.Status(req.Status),
		InterviewTime:     req.InterviewTime,
		InterviewLocation: req.InterviewLocation,
	}
	if req.InterviewDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.InterviewDate)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", req.InterviewDate)
		}
		if err != nil {
			return app.StatusUpdate{}, common.NewValidationError("invalid request", map[string]string{"interviewDate": "invalid date"})
		}
		update.InterviewDate = &parsed
	}
	return update, nil
}

// UpdateStatus is the admin path; the employer path in the employer handler
// shares the same service call and ownership rules.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
