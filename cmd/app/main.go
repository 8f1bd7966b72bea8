package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/DruxAMB/based-list/docs"
	rediscache "github.com/DruxAMB/based-list/internal/cache/redis"
	"github.com/DruxAMB/based-list/internal/common/config"
	"github.com/DruxAMB/based-list/internal/common/logger"
	"github.com/DruxAMB/based-list/internal/common/middleware"
	profilehttp "github.com/DruxAMB/based-list/internal/features/profile/delivery/http"
	profilerepo "github.com/DruxAMB/based-list/internal/features/profile/repository/docstore"
	profileservice "github.com/DruxAMB/based-list/internal/features/profile/service"
	"github.com/DruxAMB/based-list/internal/features/profile/session"
	projecthttp "github.com/DruxAMB/based-list/internal/features/project/delivery/http"
	projectrepo "github.com/DruxAMB/based-list/internal/features/project/repository/docstore"
	projectservice "github.com/DruxAMB/based-list/internal/features/project/service"
	"github.com/DruxAMB/based-list/internal/platform/docstore"
	redisplatform "github.com/DruxAMB/based-list/internal/platform/redis"
	"github.com/DruxAMB/based-list/internal/platform/uploads"
)

// @title           Based List API
// @version         1.0
// @description     Profile and project directory backend for Based List. Profiles are stored in a remote document store; identity comes from the hosted identity provider's session tokens.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
// @description Identity provider session token, sent as "Bearer <token>"

// @tag.name builders
// @tag.description Public read-only profile views

// @tag.name profile
// @tag.description Own profile and edit session lifecycle

// @tag.name projects
// @tag.description Read-only project feeds

func main() {
	cfg := config.Load()
	logger.Init("based-list", cfg.Debug)

	logger.Info().Bool("debug", cfg.Debug).Msg("Starting Based List backend")

	ctx := context.Background()

	// The Redis cache is an optimization: when it is unreachable every read
	// falls through to the document store, so startup continues without it.
	var cache profileservice.Cache
	redisClient, err := redisplatform.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without profile cache")
	} else {
		defer redisClient.Close()
		cache = rediscache.NewProfileCache(redisClient, cfg.Cache.ProfileTTL)
		logger.Info().Msg("Profile cache initialized")
	}

	storeClient := docstore.NewClient(cfg.DocStore.BaseURL, cfg.DocStore.Timeout)
	uploadClient := uploads.NewClient(cfg.Upload.URL, cfg.Upload.MaxBytes, cfg.DocStore.Timeout)

	profileSvc := profileservice.NewProfileService(profilerepo.NewProfileRepository(storeClient), cache)
	sessions := session.NewManager(profileSvc, uploadClient)
	projectSvc := projectservice.NewProjectService(projectrepo.NewProjectRepository(storeClient))

	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.SessionAuth(cfg.Auth.SessionSecret))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	profilehttp.NewProfileHandler(profileSvc, sessions, cfg.Server.Origin).RegisterRoutes(v1)
	projecthttp.NewProjectHandler(projectSvc).RegisterRoutes(v1)

	logger.Info().Msg("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
