package app

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"volunteer-tracker-go/internal/config"
	"volunteer-tracker-go/internal/db"
	"volunteer-tracker-go/internal/transport/httpserver"
	authmw "volunteer-tracker-go/internal/transport/httpserver/middleware"
	"volunteer-tracker-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	applied, err := db.Migrate(ctx, dbConn)
	if err != nil {
		_ = db.Close(dbConn)
		return nil, err
	}
	log.Info("app: migrations applied", "versions", applied)

	sqlDB, err := dbConn.DB()
	if err != nil {
		_ = db.Close(dbConn)
		return nil, fmt.Errorf("db handle: %w", err)
	}

	var verifier authmw.Verifier
	if !cfg.Auth.SkipAuth {
		verifier, err = authmw.NewVerifier(cfg.Auth)
		if err != nil {
			_ = db.Close(dbConn)
			return nil, err
		}
	} else {
		log.Warn("app: authentication disabled, using mock identity", "user_id", cfg.Auth.MockUserID)
	}

	log.Info("app: initializing router")
	services := NewServices(cfg, dbConn)
	router := httpserver.NewRouter(cfg, services.Handlers(sqlDB, log), verifier, services.Users, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	return db.Close(a.db)
}
