package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/parkgate/enterprise-api/internal/domain"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondResult writes the mutation envelope. The envelope always ships
// with HTTP 200; clients read the success flag, not the status code.
func respondResult(w http.ResponseWriter, message string, success bool) {
	respondJSON(w, http.StatusOK, domain.APIResponse{Message: message, Success: success})
}

func respondFailure(w http.ResponseWriter, format string, args ...interface{}) {
	respondResult(w, fmt.Sprintf(format, args...), false)
}

// respondWithError writes the envelope with an explicit status, for page
// endpoints and the few non-200 paths.
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.APIResponse{Message: message, Success: false})
}

// decodeJSON parses the request body into target
func decodeJSON(r *http.Request, target interface{}) error {
	return json.NewDecoder(r.Body).Decode(target)
}

// idParam reads a numeric URL parameter
func idParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}
