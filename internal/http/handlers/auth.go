package handlers

import (
	"net/http"
	"time"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/app"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/middleware"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/response"
)

type AuthHandler struct {
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		key := "register:ip:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "too many registration attempts", nil))
			return
		}
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	session, err := h.auth.Register(r.Context(), app.Credentials{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     user.Role(req.Role),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, sessionPayload(session))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		key := "login:ip:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "too many login attempts", nil))
			return
		}
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, sessionPayload(session))
}

// Logout exists for API symmetry; bearer tokens expire on their own and the
// client just discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	response.JSON(w, http.StatusOK, account)
}

func sessionPayload(session *app.Session) sessionResponse {
	return sessionResponse{
		ID:    session.User.ID.String(),
		Name:  session.User.Name,
		Email: session.User.Email,
		Role:  string(session.User.Role),
		Token: session.Token,
	}
}
