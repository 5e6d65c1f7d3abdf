package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/course-scheduler-api/api/swagger"
	"github.com/noah-isme/course-scheduler-api/internal/handler"
	internalmiddleware "github.com/noah-isme/course-scheduler-api/internal/middleware"
	"github.com/noah-isme/course-scheduler-api/internal/models"
	"github.com/noah-isme/course-scheduler-api/internal/repository"
	"github.com/noah-isme/course-scheduler-api/internal/service"
	"github.com/noah-isme/course-scheduler-api/pkg/cache"
	"github.com/noah-isme/course-scheduler-api/pkg/config"
	"github.com/noah-isme/course-scheduler-api/pkg/database"
	"github.com/noah-isme/course-scheduler-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-scheduler-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-scheduler-api/pkg/middleware/requestid"
)

// @title Course Scheduler API
// @version 1.0.0
// @description Deterministic course timetable generation with natural-language constraints
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	catalog, err := loadCatalog(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to load catalog", "error", err)
	}
	logr.Sugar().Infow("catalog loaded",
		"sections", catalog.Len(),
		"courses", len(catalog.Courses()),
		"source", cfg.Catalog.Source)

	var explainCache service.ExplainCache
	if cfg.Explain.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect redis", "error", err)
		}
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		defer cacheRepo.Close() //nolint:errcheck
		explainCache = cacheRepo
	}

	metricsSvc := service.NewMetricsService()
	extractorSvc := service.NewExtractorService(cfg.Extractor, metricsSvc, logr)
	constraintSvc := service.NewConstraintService(logr)
	scheduleSvc := service.NewScheduleService(catalog, extractorSvc, constraintSvc, nil, metricsSvc, logr)
	explainSvc := service.NewExplainService(cfg.LLM, cfg.Explain, explainCache, metricsSvc, logr)
	exportSvc := service.NewExportService()

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, exportSvc)
	explainHandler := handler.NewExplainHandler(explainSvc)
	catalogHandler := handler.NewCatalogHandler(catalog)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "sections": catalog.Len()})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.Auth.Enabled {
		api.Use(internalmiddleware.Auth(cfg.Auth.JWTSecret))
	}
	api.POST("/schedule/generate", scheduleHandler.Generate)
	api.POST("/schedule/export", scheduleHandler.Export)
	api.POST("/llm/explain", explainHandler.Explain)
	api.GET("/catalog/courses", catalogHandler.Courses)
	api.GET("/catalog/sections", catalogHandler.Sections)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// loadCatalog reads the full section catalog before the server accepts any
// request. The catalog is immutable afterwards, so handlers share it without
// synchronization.
func loadCatalog(cfg *config.Config) (*models.Catalog, error) {
	ctx := context.Background()

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		defer db.Close() //nolint:errcheck
		repo, err := repository.NewPostgresCatalogRepository(db, cfg.Catalog.Table)
		if err != nil {
			return nil, err
		}
		return repo.Load(ctx)
	case config.CatalogSourceCSV:
		return repository.NewCSVCatalogRepository(cfg.Catalog.CSVPath).Load(ctx)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
