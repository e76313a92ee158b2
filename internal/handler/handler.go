package handler

import (
	"net/http"

	"englearn/internal/config"
	"englearn/internal/middleware"
	"englearn/internal/realtime"
	"englearn/internal/service"
	"englearn/internal/tts"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Handler wires the HTTP API to the services
type Handler struct {
	auth     *service.AuthService
	selector *service.SelectorService
	progress *service.ProgressService
	review   *service.ReviewService
	stats    *service.StatsService
	importer *service.ImportService
	tts      *tts.Client
	hub      *realtime.Hub
	logger   *zap.Logger
}

// New creates a new handler instance
func New(
	auth *service.AuthService,
	selector *service.SelectorService,
	progress *service.ProgressService,
	review *service.ReviewService,
	stats *service.StatsService,
	importer *service.ImportService,
	ttsClient *tts.Client,
	hub *realtime.Hub,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		auth:     auth,
		selector: selector,
		progress: progress,
		review:   review,
		stats:    stats,
		importer: importer,
		tts:      ttsClient,
		hub:      hub,
		logger:   logger,
	}
}

// Routes builds the router with all API endpoints registered
func (h *Handler) Routes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/health", h.handleHealth)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
		r.Get("/current", h.handleCurrentUser)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(h.auth, h.logger))
			r.Post("/logout", h.handleLogout)
			r.Put("/profile", h.handleUpdateProfile)
			r.Put("/password", h.handleChangePassword)
		})
	})

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/list", h.handleListItems)
		r.Get("/statistics", h.handleStatistics)
		r.Post("/import", h.handleImportItems)
		r.Get("/test", h.handleTestItems)
	})

	r.Route("/api/learning", func(r chi.Router) {
		r.Post("/record", h.handleRecord)
		r.Post("/review/add", h.handleAddToReview)
		r.Get("/review/list", h.handleReviewList)
		r.Post("/review/mark", h.handleMarkReviewed)
		r.Get("/history", h.handleHistory)
		r.Get("/statistics/detail", h.handleDetailedStatistics)
		r.Get("/progress/today", h.handleTodayProgress)
		r.Get("/streak", h.handleStreak)
	})

	r.Route("/api/audio", func(r chi.Router) {
		r.Post("/generate", h.handleGenerateAudio)
		r.Get("/voices", h.handleVoices)
	})

	r.Get("/ws", h.hub.ServeWS)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
