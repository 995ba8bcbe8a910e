package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hirebox/internal/config"
	"hirebox/internal/core"
	"hirebox/internal/db"
	"hirebox/internal/http/handler"
	"hirebox/internal/http/handler/middleware"
	"hirebox/internal/http/payload"
	"hirebox/internal/http/server"
	"hirebox/internal/repository"
	"hirebox/pkg/jwt"
	"hirebox/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "hirebox"

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		log.NewZapLogger(serviceName, zapcore.InfoLevel).
			Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewGormDB(cfg.DBDriver, cfg.DBConnectionURL, db.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", cfg.DBDriver)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Warnw("failed to close database", "error", err)
		}
	}()

	// repository
	repo := repository.NewStore(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// hirebox
	hirebox := core.NewHirebox(
		logger,
		repo,
		jwtService,
		cfg.TokenTTL)

	if cfg.SeedDemoAccounts {
		if _, err = hirebox.SeedAccounts(context.Background(), core.DemoAccounts(cfg.SeedPassword)); err != nil {
			logger.Errorw("failed to seed user table", "error", err)
			return err
		}
	}

	srv := server.NewHTTP(logger, NewRouter(logger, hirebox), cfg.Port, server.Timeouts{
		ReadHeader: cfg.ReadHeaderTimeout,
		Shutdown:   cfg.ShutdownTimeout,
	})
	return run(logger, srv)
}

// NewRouter wires handlers and middleware around a Hirebox instance.
func NewRouter(logger *zap.SugaredLogger, hirebox *core.Hirebox) http.Handler {
	hireboxHlr := handler.NewHireboxHandler(
		logger,
		payload.Decoder{},
		hirebox)
	auth := middleware.NewAuthMiddleware(logger, hirebox)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, hireboxHlr.HandleRegister)
	mux.HandleFunc(handler.Login, hireboxHlr.HandleLogin)
	mux.HandleFunc(handler.Submit, hireboxHlr.HandleSubmit)
	mux.HandleFunc(handler.ListSubmissions, auth.RequireRole(core.RoleAdmin, hireboxHlr.HandleListSubmissions))
	mux.HandleFunc(handler.ListUsers, auth.RequireRole(core.RoleAdmin, hireboxHlr.HandleListUsers))
	mux.HandleFunc(handler.Health, hireboxHlr.HandleHealth)

	return hdlr
}

func run(logger *zap.SugaredLogger, srv *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := srv.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("received signal", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := srv.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
