package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

func decodeJSON(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return common.NewError(common.CodeValidation, "invalid JSON body", err)
	}
	return nil
}

func idFromVars(r *http.Request, name string) (common.UUID, error) {
	value := mux.Vars(r)[name]
	parsed, err := common.ParseUUID(value)
	if err != nil {
		return "", common.NewValidationError("invalid request", map[string]string{name: "invalid id"})
	}
	return parsed, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "Not authorized", nil)
}
