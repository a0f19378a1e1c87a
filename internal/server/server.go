package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/handler"
	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/metrics"
	"github.com/osse101/IdleForge_Go/internal/middleware"
	"github.com/osse101/IdleForge_Go/internal/player"
	"github.com/osse101/IdleForge_Go/internal/site"
	"github.com/osse101/IdleForge_Go/internal/sse"
)

// Options holds the transport settings
type Options struct {
	Port              int
	APIKey            string
	MaxRequestBytes   int64
	RateLimit         float64
	RateBurst         int
	IdentityCacheSize int
	IdentityCacheTTL  time.Duration
}

// Services are the engine components served over HTTP
type Services struct {
	Players player.Service
	Sites   site.Service
	Bonuses bonus.Service
	DB      handler.Pinger
	Hub     *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	identity := middleware.NewIdentity(svc.Players, opts.IdentityCacheSize, opts.IdentityCacheTTL)
	limiter := middleware.NewRateLimiter(opts.RateLimit, opts.RateBurst, opts.IdentityCacheSize, opts.IdentityCacheTTL)

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Handle("/metrics", promhttp.Handler())

	playerHandler := handler.NewPlayerHandler(svc.Players, identity)
	siteHandler := handler.NewSiteHandler(svc.Sites)
	bonusHandler := handler.NewBonusHandler(svc.Bonuses)

	r.Route("/api/v1", func(r chi.Router) {
		// Routes that do not act as a player are limited per client address
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)

			r.Post("/players", playerHandler.Register)
			r.Get("/players", playerHandler.List)
			r.Get("/players/{playerID}", playerHandler.Get)
			r.Get("/bonuses", bonusHandler.ListAvailable)
			r.Get("/bonuses/{bonusID}", bonusHandler.Get)

			r.Post("/admin/bonuses/generate", handler.HandleGenerateBonus(svc.Bonuses))
		})

		// Player routes resolve X-Player-ID first so the limiter keys on the player
		r.Group(func(r chi.Router) {
			r.Use(identity.Middleware)
			r.Use(limiter.Middleware)

			r.Get("/me", playerHandler.Me)

			r.Get("/sites/{kind}", siteHandler.Quote)
			r.Post("/sites/{kind}/workers", siteHandler.BuyWorker)
			r.Post("/sites/{kind}/upgrade", siteHandler.UpgradeLevel)
			r.Post("/sites/{kind}/gather", siteHandler.Gather)
			r.Post("/sites/{kind}/sell", siteHandler.Sell)

			r.Get("/bonuses/available", bonusHandler.AvailableForMe)
			r.Get("/bonuses/active", bonusHandler.Active)
			r.Get("/bonuses/history", bonusHandler.History)
			r.Post("/bonuses/{bonusID}/purchase", bonusHandler.Purchase)

			r.Get("/events", sse.Handler(svc.Hub))
			r.Get("/ws", sse.WebsocketHandler(svc.Hub))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijacking not supported")
	}
	rw.written = true
	rw.statusCode = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
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
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
