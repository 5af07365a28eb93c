package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/draft"
	"github.com/claude/liftlog/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	cat    *catalog.Catalog
	drafts *draft.Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, cat *catalog.Catalog, drafts *draft.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		cat:    cat,
		drafts: drafts,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Engine operations: pure functions over the posted exercise state.
		r.Route("/exercises", func(r chi.Router) {
			r.Post("/cascade", s.handleCascadeUpdate)
			r.Post("/cascade/delete", s.handleCascadeDelete)
			r.Post("/group", s.handleGroupExercises)
			r.Post("/rest", s.handleResolveRest)
			r.Get("/{id}/records", s.handleRecords)
			r.Get("/{id}/history", s.handleExerciseHistory)
		})

		// Read-side analytics.
		r.Get("/analytics/onerm", s.handleOneRepMax)
		r.Post("/analytics/warmup", s.handleWarmupLadder)
		r.Get("/analytics/volume", s.handleVolumeSummary)

		r.Get("/catalog", s.handleCatalog)

		// History and templates.
		r.Get("/sessions", s.handleQuerySessions)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Get("/routines", s.handleListRoutines)

		// Writes and the draft require the API key.
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/sessions", s.handleFinishSession)
			r.Delete("/sessions/{id}", s.handleDeleteSession)
			r.Put("/routines/{id}", s.handleUpsertRoutine)
			r.Delete("/routines/{id}", s.handleDeleteRoutine)
			r.Get("/draft", s.handleLoadDraft)
			r.Put("/draft", s.handleSaveDraft)
			r.Delete("/draft", s.handleClearDraft)
		})
	})
}
