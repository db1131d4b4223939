package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crewbase.app/org-server/common/id"
	"crewbase.app/org-server/core/config"
	"crewbase.app/org-server/core/db"
	"crewbase.app/org-server/core/telemetry"
	"crewbase.app/org-server/internal/http/handler"
	"crewbase.app/org-server/internal/http/router"
	"crewbase.app/org-server/internal/service"
	"crewbase.app/org-server/internal/store"
)

const (
	serviceName         = "org-server"
	sessionReapInterval = time.Hour
)

// reapSessions periodically deletes expired sessions until ctx is done.
func reapSessions(ctx context.Context, authService service.AuthService) {
	ticker := time.NewTicker(sessionReapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := authService.PurgeExpiredSessions(ctx); err != nil {
				slog.ErrorContext(ctx, "session reap failed", "error", err)
			}
		}
	}
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := id.SetNodeID(cfg.SnowflakeNodeID); err != nil {
		return err
	}

	providers, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, serviceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		return err
	}

	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	pg := store.NewPostgres(pool)

	authService := service.NewAuthService(pg.Users(), pg.Sessions(), cfg.WorkOS)
	orgService := service.NewOrganizationService(pg, pg)
	inviteService := service.NewInviteService(pg, pg)
	membershipService := service.NewMembershipService(pg)

	go reapSessions(ctx, authService)

	r := router.New(
		serviceName,
		authService,
		handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction()),
		handler.NewOrganizationHandler(orgService),
		handler.NewInviteHandler(inviteService),
		handler.NewMemberHandler(membershipService),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
