package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"histcal/internal/calendar"
	"histcal/internal/config"
	appLog "histcal/internal/log"
	"histcal/internal/model"
	"histcal/internal/timeline"
)

// maxTimelineBody bounds the JSON body accepted by /api/timeline.
const maxTimelineBody = 4 << 20

// Server exposes the calendar engine over HTTP.
type Server struct {
	cfg *config.Config
	mux *http.ServeMux

	durations *durationCache
}

// NewServer constructs a new Server.
func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		cfg:       cfg,
		mux:       http.NewServeMux(),
		durations: newDurationCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
	}
	s.registerRoutes()
	return s
}

// Handler returns the http.Handler for this server, wrapped in basic auth
// when it is configured.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

// Run listens on cfg.Listen and serves until ctx is cancelled. A listen
// failure is returned immediately.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully and
// returns nil. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) basicAuthEnabled() bool {
	if s.cfg.BasicAuth == nil {
		return false
	}
	// An empty username or password disables auth.
	return s.cfg.BasicAuth.Username != "" && s.cfg.BasicAuth.Password != ""
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="histcal", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/format", s.handleFormat)
	s.mux.HandleFunc("/api/duration", s.handleDuration)
	s.mux.HandleFunc("/api/timeline", s.handleTimeline)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

type formatResponse struct {
	Date    string `json:"date"`
	Display string `json:"display"`
}

// handleFormat serves GET /api/format?date=1985-11-15.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	date := r.URL.Query().Get("date")
	writeJSON(w, http.StatusOK, formatResponse{
		Date:    date,
		Display: calendar.FormatForDisplay(date),
	})
}

type durationResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
}

// handleDuration serves GET /api/duration?start=...&end=...
func (s *Server) handleDuration(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	start, end := q.Get("start"), q.Get("end")

	d, err := s.durations.get(start, end)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidDateFormat) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		appLog.Error("api duration failed", err, "start", start, "end", end)
		writeError(w, http.StatusInternalServerError, "failed to compute duration")
		return
	}
	writeJSON(w, http.StatusOK, durationResponse{Start: start, End: end, Duration: d})
}

type timelineResponse struct {
	Rows []model.Row `json:"rows"`
}

// handleTimeline serves POST /api/timeline with a JSON array of entries.
// The query parameter sort=1 orders entries by start date first.
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var entries []model.Entry
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTimelineBody))
	if err := dec.Decode(&entries); err != nil {
		writeError(w, http.StatusBadRequest, "invalid timeline body: "+err.Error())
		return
	}
	if r.URL.Query().Get("sort") == "1" {
		timeline.Sort(entries)
	}
	appLog.Debug("api timeline request", "entries", len(entries))
	writeJSON(w, http.StatusOK, timelineResponse{Rows: timeline.Render(entries)})
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
