// @title Event Registration API
// @version 1.0
// @description Events and participants with capacity-checked registration.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sharath018/event-registration-backend/config"
	"github.com/sharath018/event-registration-backend/database"
	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/participant"
	"github.com/sharath018/event-registration-backend/routes"
	"github.com/sharath018/event-registration-backend/utils"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	switch {
	case cfg.Debug:
		gin.SetMode(gin.DebugMode)
	case cfg.Testing:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config) error {
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// Auto-migrate models
	logrus.Info("running database migrations")
	if err := database.Migrate(db, &event.Event{}, &participant.Participant{}); err != nil {
		return err
	}

	// Init Redis (optional, rate limit store)
	rdb, err := utils.NewRedisClient(context.Background(), cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Init Kafka (optional, notifications)
	publisher := utils.NewPublisher(cfg)
	defer publisher.Close()

	router, err := routes.NewRouter(routes.Deps{
		Config:    cfg,
		DB:        db,
		Redis:     rdb,
		Publisher: publisher,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{"addr": srv.Addr, "env": cfg.Env}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("server exited")
	return nil
}
