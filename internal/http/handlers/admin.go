package handlers

import (
	"net/http"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/app"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/response"
)

type AdminHandler struct {
	admin *app.AdminService
}

func NewAdminHandler(admin *app.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.ListUsers(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromVars(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	update := app.UserUpdate{Name: req.Name, Email: req.Email}
	if req.Role != nil {
		role := user.Role(*req.Role)
		update.Role = &role
	}
	updated, err := h.admin.UpdateUser(r.Context(), id, update)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromVars(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.admin.DeleteUser(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "User removed successfully"})
}

func (h *AdminHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.ListJobs(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *AdminHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := idFromVars(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.admin.DeleteJob(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Job removed successfully"})
}

func (h *AdminHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	items, err := h.admin.ListApplications(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
