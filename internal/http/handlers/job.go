package handlers

import (
	"net/http"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/app"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/job"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/middleware"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
}

type updateJobRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Salary      *string `json:"salary"`
	Status      *string `json:"status"`
}

func (req updateJobRequest) toUpdate() job.Update {
	update := job.Update{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
	}
	if req.Status != nil {
		status := job.Status(*req.Status)
		update.Status = &status
	}
	return update
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), account.ID, job.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func filterFromQuery(r *http.Request) job.Filter {
	query := r.URL.Query()
	return job.Filter{
		Location: query.Get("location"),
		Company:  query.Get("company"),
		Search:   query.Get("search"),
	}
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.List(r.Context(), filterFromQuery(r))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

// Browse is the public listing with per-caller application annotations when a
// valid token accompanied the request.
func (h *JobHandler) Browse(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.UserFromContext(r.Context())
	items, err := h.jobs.ListWithApplicationStatus(r.Context(), filterFromQuery(r), caller)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromVars(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
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

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
