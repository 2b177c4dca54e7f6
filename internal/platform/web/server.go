// Package web serves the round leaderboard as a small read-only JSON API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vovakirdan/bat-adventure/internal/games/flappy"
	"github.com/vovakirdan/bat-adventure/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// RoundReader is the part of the round store the API reads from.
// *storage.Store implements it.
type RoundReader interface {
	TopRounds(playstyle string, limit int) ([]storage.RoundRecord, error)
	AllStats() (map[string]*storage.Stats, error)
}

// Server is the leaderboard HTTP server.
type Server struct {
	reader RoundReader
	logger *log.Logger
	srv    *http.Server
}

// NewServer creates a leaderboard server listening on addr.
func NewServer(addr string, reader RoundReader, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		reader: reader,
		logger: logger,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	return s
}

// Router builds the HTTP routes with their middlewares.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(sub chi.Router) {
		sub.Get("/rounds/{playstyle}", s.getRounds)
		sub.Get("/stats", s.getStats)
	})

	return r
}

// requestLogger logs each request through the server's logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// roundJSON is one leaderboard entry.
type roundJSON struct {
	Rank         int       `json:"rank"`
	RoundID      string    `json:"round_id"`
	Playstyle    string    `json:"playstyle"`
	Score        int       `json:"score"`
	SecondsAlive float64   `json:"seconds_alive"`
	Player       string    `json:"player,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// statsJSON is the summary of one playstyle.
type statsJSON struct {
	Rounds          int       `json:"rounds"`
	HighScore       int       `json:"high_score"`
	AvgScore        float64   `json:"avg_score"`
	TotalScore      int64     `json:"total_score"`
	LongestSurvival float64   `json:"longest_survival"`
	LastPlayed      time.Time `json:"last_played"`
}

// getRounds returns the best rounds of a playstyle.
func (s *Server) getRounds(w http.ResponseWriter, r *http.Request) {
	p, err := flappy.ParsePlaystyle(chi.URLParam(r, "playstyle"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rounds, err := s.reader.TopRounds(p.String(), limit)
	if err != nil {
		s.logger.Error("cannot load rounds", "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load rounds")
		return
	}

	out := make([]roundJSON, len(rounds))
	for i, rd := range rounds {
		out[i] = roundJSON{
			Rank:         i + 1,
			RoundID:      rd.RoundID,
			Playstyle:    rd.Playstyle,
			Score:        rd.Score,
			SecondsAlive: rd.SecondsAlive,
			Player:       rd.Player,
			CreatedAt:    rd.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// getStats returns the summary of every playstyle with rounds.
func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	all, err := s.reader.AllStats()
	if err != nil {
		s.logger.Error("cannot load stats", "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}

	out := make(map[string]statsJSON, len(all))
	for name, st := range all {
		out[name] = statsJSON{
			Rounds:          st.Rounds,
			HighScore:       st.HighScore,
			AvgScore:        st.AvgScore,
			TotalScore:      st.TotalScore,
			LongestSurvival: st.LongestSurvival,
			LastPlayed:      st.LastPlayed,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// parseLimit reads the limit query parameter; empty means the default.
func parseLimit(v string) (int, error) {
	if v == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > maxLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d", maxLimit)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client went away, nothing to do
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting HTTP server", "address", s.srv.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.srv.Addr
}
