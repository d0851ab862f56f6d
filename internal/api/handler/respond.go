package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondRaw writes an already-encoded JSON body untouched.
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// respondText writes msg as a plain-text body.
func respondText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// missingUserIDBody is the exact text callers receive on a 400.
const missingUserIDBody = "No user_id"

// statusFor translates relay errors to HTTP status codes. A missing user id
// is the only client error; request, transport and upstream failures are all
// reported as 500.
func statusFor(err error) int {
	if errors.Is(err, domain.ErrMissingUserID) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// bodyFor is the plain-text body sent with statusFor(err).
func bodyFor(err error) string {
	if errors.Is(err, domain.ErrMissingUserID) {
		return missingUserIDBody
	}
	return err.Error()
}
