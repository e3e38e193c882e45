package handlers

import (
	"net/http"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/response"
)

func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	})
}
