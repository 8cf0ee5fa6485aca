package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/salonbook/salon-web/internal/config"
	"github.com/salonbook/salon-web/internal/domain/auth"
	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/dashboard"
	"github.com/salonbook/salon-web/internal/domain/session"
	"github.com/salonbook/salon-web/internal/domain/user"
	"github.com/salonbook/salon-web/internal/middleware"
	"github.com/salonbook/salon-web/internal/pkg/database"
	"github.com/salonbook/salon-web/internal/pkg/gateway"
	"github.com/salonbook/salon-web/internal/pkg/jwt"
	"github.com/salonbook/salon-web/internal/pkg/logger"
	"github.com/salonbook/salon-web/internal/pkg/response"
	"github.com/salonbook/salon-web/internal/pkg/salonapi"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
		LogFile:     cfg.LogFile,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to init logger")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("backend", cfg.BackendURL).
		Msg("Starting salon web")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---------- Backend ----------
	gw := gateway.New(gateway.Config{
		BaseURL:   cfg.BackendURL,
		Timeout:   cfg.BackendTimeout,
		UserAgent: "salon-web/" + version,
		Retry: gateway.RetryPolicy{
			MaxRetries: cfg.BackendMaxRetries,
			BaseDelay:  cfg.BackendRetryBaseDelay,
		},
	})
	api := salonapi.New(gw)

	// ---------- Sessions ----------
	redis, err := database.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	var store session.Store
	if redis != nil {
		store = session.NewRedisStore(redis, cfg.SessionTTL)
	} else {
		memory := session.NewMemoryStore(cfg.SessionTTL)
		go pruneSessions(ctx, memory, time.Minute)
		store = memory
	}
	sessions := session.NewService(store, jwt.NewService(cfg.SessionSecret, cfg.SessionTTL), session.Config{
		Secure: cfg.IsProduction(),
	})

	// ---------- Booking lifecycle ----------
	lifecycle := booking.NewLifecycle(booking.WithCancelRoles(cancelRoles(cfg.BookingCancelRoles)...))
	bookings := booking.NewService(lifecycle, api)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(auth.NewService(api, sessions), sessions)
	dashboardHandler := dashboard.NewHandler(
		dashboard.NewCustomer(api, bookings),
		dashboard.NewStylist(api, bookings, sessions),
		dashboard.NewAdmin(api),
	)

	r := newRouter(cfg, sessions, api, authHandler, dashboardHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.BackendTimeout*time.Duration(cfg.BackendMaxRetries+1) + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("Server exited properly")
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(cfg *config.Config, sessions *session.Service, backend pinger, authHandler *auth.Handler, dashboardHandler *dashboard.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := backend.Ping(r.Context()); err != nil {
			logger.FromContext(r.Context()).Warn().Err(err).Msg("Backend health check failed")
			response.Error(w, http.StatusServiceUnavailable, "BACKEND_UNAVAILABLE", "Salon backend is not reachable")
			return
		}
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(sessions))

		r.Mount("/auth", authHandler.Routes())
		r.Mount("/customer", dashboardHandler.CustomerRoutes())
		r.Mount("/stylist", dashboardHandler.StylistRoutes())
		r.Mount("/admin", dashboardHandler.AdminRoutes())
	})

	return r
}

// cancelRoles parses BOOKING_CANCEL_ROLES, skipping unknown names.
func cancelRoles(names []string) []user.Role {
	roles := make([]user.Role, 0, len(names))
	for _, name := range names {
		role, err := user.ParseRole(name)
		if err != nil {
			log.Warn().Str("role", name).Msg("Ignoring unknown booking cancel role")
			continue
		}
		roles = append(roles, role)
	}
	return roles
}

func pruneSessions(ctx context.Context, store *session.MemoryStore, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Prune(); n > 0 {
				log.Debug().Int("pruned", n).Msg("Expired sessions pruned")
			}
		}
	}
}
