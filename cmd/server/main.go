package main

// @title           Shelfshare Authors API
// @version         1.0
// @description     API for managing authors in Shelfshare.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/db"
	docs "github.com/snnyvrz/shelfshare/apps/authors-api/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/logger"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("could not load config")
	}

	log := logger.New(cfg.LogLevel, cfg.GinMode != gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		database   *gorm.DB
		authorRepo repository.AuthorRepository
	)

	if cfg.DBDriver == config.DriverMemory {
		authorRepo = repository.NewMemoryAuthorRepository(repository.WithLogger(log))
	} else {
		database, err = db.ConnectWithRetry(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("database unavailable")
		}

		if err := db.Migrate(database); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}

		authorRepo = repository.NewGormAuthorRepository(database, repository.WithLogger(log))
	}

	gin.SetMode(cfg.GinMode)

	e := newRouter(log, database, authorRepo, startTime)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("version", appVersion).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("bye")
}

func newRouter(log zerolog.Logger, database *gorm.DB, authorRepo repository.AuthorRepository, startTime time.Time) *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery(), handler.RequestLogger(log))

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/api"

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := e.Group("/api")
	{
		authorHandler := handler.NewAuthorHandler(authorRepo, log)
		authorHandler.RegisterRoutes(api)
	}

	return e
}
