package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"spaceexplorer/internal/models"
)

// chatRequest is the body of POST /api/chat
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse carries the turn and its rendered message
type chatResponse struct {
	models.ChatTurn
	Message string `json:"message"`
}

// HandleAPIToday returns today's image as JSON
func (s *Server) HandleAPIToday(w http.ResponseWriter, r *http.Request) {
	today, err := s.Images.Today(r.Context())
	if err != nil {
		writeComponentError(w, err, todayMessages)
		return
	}
	writeJSON(w, http.StatusOK, today)
}

// HandleAPISearch returns search results as JSON
func (s *Server) HandleAPISearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, errBadRequest, "Query parameter q is required")
		return
	}

	results, err := s.Images.Search(r.Context(), query)
	if err != nil {
		writeComponentError(w, err, searchMessages)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// HandleAPIWeather returns the weather snapshot as JSON
func (s *Server) HandleAPIWeather(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Weather.Report(r.Context())
	if err != nil {
		writeComponentError(w, err, weatherMessages)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// HandleAPIChat answers a JSON question
func (s *Server) HandleAPIChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errBadRequest, "Request body must be JSON like {\"message\": \"...\"}")
		return
	}

	turn, err := s.Chat.Respond(r.Context(), req.Message)
	if err != nil {
		writeComponentError(w, err, s.chatMessages())
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{ChatTurn: turn, Message: turn.Message()})
}
