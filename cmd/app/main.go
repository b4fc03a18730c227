package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "meowtool-backend/docs"
	"meowtool-backend/internal/common/cache"
	"meowtool-backend/internal/common/config"
	"meowtool-backend/internal/common/logger"
	"meowtool-backend/internal/common/middleware"
	cookieHTTP "meowtool-backend/internal/features/cookie/delivery/http"
	cookieService "meowtool-backend/internal/features/cookie/service"
	placeHTTP "meowtool-backend/internal/features/place/delivery/http"
	placeService "meowtool-backend/internal/features/place/service"
	proxyHTTP "meowtool-backend/internal/features/proxy/delivery/http"
	proxyService "meowtool-backend/internal/features/proxy/service"
	"meowtool-backend/internal/platform/redis"
	"meowtool-backend/internal/platform/roblox"
)

// @title           MeowTool API
// @version         2.3.3
// @description     Roblox cookie checker, sorter, refresher and proxy checker.

// @BasePath  /api

// @tag.name cookies
// @tag.description Cookie checking, refreshing and bulk extraction

// @tag.name proxies
// @tag.description Outbound proxy reachability checks

// @tag.name places
// @tag.description Experience metadata parsing

func main() {
	cfg := config.Load()

	logger.Init("meowtool-backend", cfg.Debug)

	logger.Info().
		Str("version", config.Version).
		Bool("debug", cfg.Debug).
		Msg("Starting MeowTool backend")

	endpoints := roblox.DefaultEndpoints()

	// The place-metadata cache is optional; without Redis the service
	// fetches from the catalog on every request.
	var cacheService *cache.Service
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Open(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		cacheService = cache.NewService(rdb)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Place-metadata cache enabled")
	}

	cookieSvc := cookieService.NewCookieService(endpoints)
	proxySvc := proxyService.NewProxyService(endpoints, "")
	placeSvc := placeService.NewPlaceService(endpoints, cacheService, time.Duration(cfg.Redis.PlaceTTL)*time.Second)

	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	if cfg.Server.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.Server.Origin}
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	setupRoutes(router, cfg, cookieSvc, proxySvc, placeSvc)

	logger.Info().Msg("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 150 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func setupRoutes(router *gin.Engine, cfg *config.Config, cookieSvc cookieService.CookieService, proxySvc proxyService.ProxyService, placeSvc placeService.PlaceService) {
	api := router.Group("/api")
	{
		cookieHTTP.NewCookieHandler(cookieSvc).RegisterRoutes(api)
		proxyHTTP.NewProxyHandler(proxySvc).RegisterRoutes(api)
		placeHTTP.NewPlaceHandler(placeSvc).RegisterRoutes(api)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"version": config.Version,
			})
		})
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Frontend assets live in an explicitly configured directory.
	indexPath := filepath.Join(cfg.StaticDir, "index.html")
	router.GET("/", func(c *gin.Context) {
		if _, err := os.Stat(indexPath); err != nil {
			c.JSON(http.StatusOK, gin.H{"message": "MeowTool API is running"})
			return
		}
		c.File(indexPath)
	})
	router.Static("/static", cfg.StaticDir)
}
