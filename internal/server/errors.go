package server

import (
	"encoding/json"
	"net/http"

	"spaceexplorer/internal/models"
)

const (
	errRateLimited = "rate_limited"
	errBadRequest  = "bad_request"
	errInternal    = "internal_error"

	msgRateLimited = "The space expert is answering a lot of questions right now. Please wait a minute and try again."
)

// errorResponse is the JSON body of every API error
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusForKind maps a component error kind to an HTTP status
func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindNetwork:
		return http.StatusBadGateway
	case models.KindModelUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessages holds the user-facing text per kind for one action
type errorMessages struct {
	NotFound string
	Network  string
	Model    string
}

var (
	todayMessages = errorMessages{
		NotFound: "No picture of the day is available yet. Please try again later.",
		Network:  "Couldn't fetch today's image. Please try again in a moment.",
	}
	searchMessages = errorMessages{
		NotFound: "No images found. Try a different search!",
		Network:  "The NASA image library is unreachable. Please try again in a moment.",
	}
	weatherMessages = errorMessages{
		NotFound: "No space weather data is available.",
		Network:  "Space weather data is unavailable right now. Please try again in a moment.",
	}
)

// message picks the text for err's kind
func (m errorMessages) message(err error) string {
	switch models.KindOf(err) {
	case models.KindNotFound:
		if m.NotFound != "" {
			return m.NotFound
		}
	case models.KindNetwork:
		if m.Network != "" {
			return m.Network
		}
	case models.KindModelUnavailable:
		if m.Model != "" {
			return m.Model
		}
	}
	return "Something went wrong. Please try again."
}

// writeJSON writes v with status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an API error body
func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: kind, Message: message})
}

// writeComponentError maps a component error to its status and API body
func writeComponentError(w http.ResponseWriter, err error, messages errorMessages) {
	kind := models.KindOf(err)
	code := string(kind)
	if kind == models.KindUnknown {
		code = errInternal
	}
	writeError(w, statusForKind(kind), code, messages.message(err))
}
