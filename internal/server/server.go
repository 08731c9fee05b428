package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"spaceexplorer/internal/charts"
	"spaceexplorer/internal/config"
	"spaceexplorer/internal/logger"
	"spaceexplorer/internal/models"
	"spaceexplorer/internal/views"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// ImageSource serves today's image, keyword search and the recent gallery
type ImageSource interface {
	Today(ctx context.Context) (models.ImageResult, error)
	Search(ctx context.Context, keyword string) ([]models.ImageResult, error)
	Recent(ctx context.Context) ([]models.ImageResult, error)
}

// WeatherSource serves the space weather snapshot and K-index history
type WeatherSource interface {
	Report(ctx context.Context) (models.WeatherSnapshot, error)
	KpHistory(ctx context.Context) ([]models.KpPoint, error)
}

// ChatSource answers questions about space
type ChatSource interface {
	Respond(ctx context.Context, text string) (models.ChatTurn, error)
	UnavailableMessage() string
}

// maxFormBytes caps chat request bodies
const maxFormBytes = 64 << 10

// Server wires the components to the HTTP routes
type Server struct {
	Config  *config.Config
	Images  ImageSource
	Weather WeatherSource
	Chat    ChatSource
	Pages   *views.PageBuilder
	Charts  *charts.KpChartGenerator

	chatLimiter *rate.Limiter
	startedAt   time.Time
	log         *logger.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, images ImageSource, weather WeatherSource, chat ChatSource) (*Server, error) {
	startedAt := time.Now().UTC()
	pages, err := views.NewPageBuilder(views.SiteInfo{
		CurrentUser: cfg.CurrentUser,
		Version:     config.GetVersion(),
		StartedAt:   startedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize page templates: %w", err)
	}

	return &Server{
		Config:      cfg,
		Images:      images,
		Weather:     weather,
		Chat:        chat,
		Pages:       pages,
		Charts:      charts.NewKpChartGenerator(),
		chatLimiter: newChatLimiter(cfg.ChatRatePerMin),
		startedAt:   startedAt,
		log:         logger.WithComponent("server"),
	}, nil
}

// newChatLimiter allows perMinute chat requests per minute with a burst of the same size
func newChatLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(s.accessLog)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health", s.HandleHealth)

	// HTML tabs
	r.Get("/", s.HandleToday)
	r.Get("/search", s.HandleSearch)
	r.Get("/chat", s.HandleChatPage)
	r.With(s.limitChat).Post("/chat", s.HandleChat)
	r.Get("/weather", s.HandleWeather)
	r.Get("/weather/kp-chart", s.HandleKpChart)
	r.Get("/weather/kp.png", s.HandleKpPNG)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/images/today", s.HandleAPIToday)
		r.Get("/images/search", s.HandleAPISearch)
		r.Get("/weather", s.HandleAPIWeather)
		r.With(s.limitChat).Post("/chat", s.HandleAPIChat)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "No such page")
	})

	return r
}
