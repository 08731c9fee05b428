package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"
	"time"

	"spaceexplorer/internal/config"
	"spaceexplorer/internal/views"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func pageDataWithError(message string) views.PageData {
	return views.PageData{Error: message}
}

// renderPage writes page with status; component errors are shown inline by the caller
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page views.Page, data views.PageData) {
	var buf bytes.Buffer
	if err := s.Pages.Render(&buf, page, data); err != nil {
		s.log.Error("Failed to render page", err, map[string]interface{}{
			"page":       string(page),
			"request_id": chiMiddleware.GetReqID(r.Context()),
		})
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":    "healthy",
		"version":   config.GetVersion(),
		"mockup":    s.Config.MockupMode,
		"started":   s.startedAt.Format(time.RFC3339),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, health)
}

// HandleToday serves today's image tab with the recent gallery strip
func (s *Server) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data views.PageData

	today, err := s.Images.Today(ctx)
	if err != nil {
		data.Error = todayMessages.message(err)
	} else {
		view := s.Pages.ImageView(today)
		data.Today = &view
	}

	// The gallery is optional; its failures never fail the page
	if recent, err := s.Images.Recent(ctx); err == nil {
		data.Gallery = s.Pages.ImageViews(recent)
	} else {
		s.log.Warn("Gallery hidden", map[string]interface{}{"error": err.Error()})
	}

	s.renderPage(w, r, http.StatusOK, views.PageToday, data)
}

// HandleSearch serves the search tab; without a query it shows the empty form
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	data := views.PageData{Query: query}

	if query != "" {
		results, err := s.Images.Search(r.Context(), query)
		if err != nil {
			data.Error = searchMessages.message(err)
		} else {
			data.Results = s.Pages.ImageViews(results)
		}
	}

	s.renderPage(w, r, http.StatusOK, views.PageSearch, data)
}

// HandleChatPage serves an empty chat tab
func (s *Server) HandleChatPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, views.PageChat, views.PageData{})
}

// HandleChat answers a question posted from the chat form
func (s *Server) HandleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, http.StatusBadRequest, views.PageChat, pageDataWithError("Your question could not be read. Please try again."))
		return
	}

	turn, err := s.Chat.Respond(r.Context(), r.PostForm.Get("message"))
	if err != nil {
		s.renderPage(w, r, http.StatusOK, views.PageChat, pageDataWithError(s.chatMessages().message(err)))
		return
	}

	s.renderPage(w, r, http.StatusOK, views.PageChat, views.PageData{Chat: s.Pages.ChatView(turn)})
}

func (s *Server) chatMessages() errorMessages {
	return errorMessages{Model: s.Chat.UnavailableMessage()}
}

// HandleWeather serves the space weather tab
func (s *Server) HandleWeather(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Weather.Report(r.Context())
	if err != nil {
		s.renderPage(w, r, http.StatusOK, views.PageWeather, pageDataWithError(weatherMessages.message(err)))
		return
	}

	var gauge template.HTML
	if snippet, err := s.Charts.KpGaugeSnippet(snapshot.KpIndex); err == nil {
		gauge = template.HTML(snippet.HTML)
	} else {
		s.log.Warn("Kp gauge skipped", map[string]interface{}{"error": err.Error()})
	}

	s.renderPage(w, r, http.StatusOK, views.PageWeather, views.PageData{
		Weather: s.Pages.WeatherView(snapshot, gauge, true),
	})
}

// HandleKpChart serves the interactive K-index chart page
func (s *Server) HandleKpChart(w http.ResponseWriter, r *http.Request) {
	points, err := s.Weather.KpHistory(r.Context())
	if err != nil {
		writeComponentError(w, err, weatherMessages)
		return
	}

	var buf bytes.Buffer
	if err := s.Charts.RenderInteractive(&buf, points); err != nil {
		s.log.Error("Failed to render interactive chart", err)
		writeError(w, http.StatusInternalServerError, errInternal, "Failed to render chart")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// HandleKpPNG serves the K-index trend image
func (s *Server) HandleKpPNG(w http.ResponseWriter, r *http.Request) {
	points, err := s.Weather.KpHistory(r.Context())
	if err != nil {
		writeComponentError(w, err, weatherMessages)
		return
	}

	var buf bytes.Buffer
	if err := s.Charts.RenderPNG(&buf, points); err != nil {
		s.log.Error("Failed to render K-index PNG", err)
		writeError(w, http.StatusInternalServerError, errInternal, "Failed to render chart")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}
