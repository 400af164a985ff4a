package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/maypok86/otter"

	"github.com/codeGROOVE-dev/localtime/pkg/calendar"
	"github.com/codeGROOVE-dev/localtime/pkg/fields"
	"github.com/codeGROOVE-dev/localtime/pkg/localtime"
)

// rateLimiter allows a fixed number of requests per client IP per minute.
// Idle clients expire from the cache a minute after their last request.
type rateLimiter struct {
	requests otter.Cache[string, []time.Time]
	limit    int
	mu       sync.Mutex
}

func newRateLimiter(limit int) (*rateLimiter, error) {
	cache, err := otter.MustBuilder[string, []time.Time](10_000).
		WithTTL(time.Minute).
		Build()
	if err != nil {
		return nil, fmt.Errorf("building rate limit cache: %w", err)
	}
	return &rateLimiter{requests: cache, limit: limit}, nil
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	previous, _ := rl.requests.Get(ip)
	var valid []time.Time
	for _, t := range previous {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests.Set(ip, valid)
		return false
	}

	rl.requests.Set(ip, append(valid, now))
	return true
}

func (rl *rateLimiter) close() {
	rl.requests.Close()
}

type server struct {
	presenter *localtime.Presenter
	limiter   *rateLimiter
	logger    *slog.Logger
}

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/localtime", s.handleLocalTime)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.wrap(mux)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *server) wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
		w.Header().Set("X-Request-ID", requestID)

		defer func() {
			if err := recover(); err != nil {
				const size = 64 << 10
				buf := make([]byte, size)
				buf = buf[:runtime.Stack(buf, false)]

				s.logger.Error("PANIC: Request handler crashed",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", requestID,
					"client_ip", clientIP(r),
					"stack", string(buf))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()

		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		if strings.HasPrefix(r.URL.Path, "/api/") {
			// Responses depend on the current time when "at" is omitted.
			w.Header().Set("Cache-Control", "no-store")
		}

		handler.ServeHTTP(w, r)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("ok\n")); err != nil {
		s.logger.Error("Failed to write health response", "error", err)
	}
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s parameter %q", name, v)
	}
	return b, nil
}

func (s *server) handleLocalTime(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ip := clientIP(r)
	requestID := w.Header().Get("X-Request-ID")

	if !s.limiter.allow(ip) {
		s.logger.Error("Rate limit exceeded",
			"request_id", requestID,
			"client_ip", ip)
		s.writeError(w, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
		return
	}

	instant := time.Now()
	if at := r.URL.Query().Get("at"); at != "" {
		var err error
		if instant, err = calendar.ParseInstant(at); err != nil {
			s.logger.Debug("Invalid instant", "request_id", requestID, "at", at, "error", err)
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	utc, err := queryBool(r, "utc", false)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	showYear, err := queryBool(r, "year", true)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	display, err := s.presenter.Present(instant, localtime.InUTC(utc), localtime.ShowYear(showYear))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, calendar.ErrInvalidInstant):
			status = http.StatusBadRequest
		case errors.Is(err, fields.ErrTimezoneNameUnavailable):
			status = http.StatusUnprocessableEntity
		default:
		}
		s.logger.Error("Rendering failed",
			"request_id", requestID,
			"error", err,
			"status", status)
		s.writeError(w, status, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(display); err != nil {
		s.logger.Error("Failed to write response",
			"request_id", requestID,
			"error", err)
		return
	}

	s.logger.Info("Local time request completed",
		"request_id", requestID,
		"client_ip", ip,
		"daytime", display.Daytime,
		"duration_ms", time.Since(start).Milliseconds())
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); encErr != nil {
		s.logger.Error("Failed to write error response", "error", encErr)
	}
}
