package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Scoreline_Go/internal/champion"
	"github.com/osse101/Scoreline_Go/internal/database"
	"github.com/osse101/Scoreline_Go/internal/eventlog"
	"github.com/osse101/Scoreline_Go/internal/handler"
	"github.com/osse101/Scoreline_Go/internal/leaderboard"
	"github.com/osse101/Scoreline_Go/internal/ledger"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/metrics"
	"github.com/osse101/Scoreline_Go/internal/prediction"
	"github.com/osse101/Scoreline_Go/internal/scoring"
)

// Services bundles what the HTTP layer calls into
type Services struct {
	Prediction  prediction.Service
	Ledger      ledger.Service
	Scoring     scoring.Service
	Leaderboard leaderboard.Service
	Champion    champion.Service
	EventLog    eventlog.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool: dbPool,
	}
}

// NewRouter builds the full route tree with its middleware stack
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(UserIDMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	predictionHandlers := handler.NewPredictionHandlers(svc.Prediction)
	pointsHandlers := handler.NewPointsHandlers(svc.Ledger)
	leaderboardHandlers := handler.NewLeaderboardHandlers(svc.Leaderboard)
	championHandlers := handler.NewChampionHandlers(svc.Champion)
	adminHandlers := handler.NewAdminHandlers(svc.Scoring, svc.Champion, svc.Ledger, svc.Leaderboard)
	eventLogHandlers := handler.NewEventLogHandlers(svc.EventLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/predictions", func(r chi.Router) {
			r.Post("/", predictionHandlers.HandleSubmit())
			r.Get("/{id}", predictionHandlers.HandleGet())
			r.Put("/{id}", predictionHandlers.HandleUpdate())
		})

		r.Post("/champion-predictions", championHandlers.HandlePredict())
		r.Get("/seasons/{id}/champion", championHandlers.HandleGetSeasonChampion())

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/points", pointsHandlers.HandleGetPoints())
			r.Get("/predictions", predictionHandlers.HandleListByUser())
			r.Get("/champion-predictions", championHandlers.HandleListByUser())
		})

		r.Route("/leaderboards/{scope}", func(r chi.Router) {
			r.Get("/", leaderboardHandlers.HandleGetLeaderboard())
			r.Get("/users/{userID}", leaderboardHandlers.HandleGetUserStanding())
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/matches/score-pending", adminHandlers.HandleScorePending())
			r.Post("/matches/{id}/score", adminHandlers.HandleScoreMatch())
			r.Post("/seasons/{id}/champion", adminHandlers.HandleResolveSeason())
			r.Post("/users/{userID}/rebuild", adminHandlers.HandleRebuildUser())
			r.Post("/users/{userID}/adjust", adminHandlers.HandleAdjustPoints())
			r.Post("/leaderboards/recompute", adminHandlers.HandleRecompute())
			r.Get("/events", eventLogHandlers.HandleListEvents())
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are too frequent to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
