package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unidash/uni-dashboard-api/api/swagger"
	"github.com/unidash/uni-dashboard-api/internal/handler"
	"github.com/unidash/uni-dashboard-api/internal/middleware"
	"github.com/unidash/uni-dashboard-api/internal/repository"
	"github.com/unidash/uni-dashboard-api/internal/service"
	"github.com/unidash/uni-dashboard-api/internal/store"
	"github.com/unidash/uni-dashboard-api/pkg/cache"
	"github.com/unidash/uni-dashboard-api/pkg/config"
	"github.com/unidash/uni-dashboard-api/pkg/logger"
	corsmiddleware "github.com/unidash/uni-dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/unidash/uni-dashboard-api/pkg/middleware/requestid"
)

// @title Uni Dashboard API
// @version 1.0.0
// @description Personal study dashboard: exams with risk assessment, todos, seminars, study plans, mood tracking and a session timer.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	documents, err := store.NewDocumentStore(cfg.Data.Dir, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open document store", "dir", cfg.Data.Dir, "error", err)
	}

	metricsSvc := service.NewMetricsService()
	documents.SetObserver(metricsSvc.ObserveDocumentOp)

	examRepo := repository.NewExamRepository(documents)
	todoRepo := repository.NewTodoRepository(documents)
	seminarRepo := repository.NewSeminarRepository(documents)
	planRepo := repository.NewStudyPlanRepository(documents)
	moodRepo := repository.NewMoodRepository(documents)
	scheduleRepo := repository.NewScheduleRepository(documents)

	authSvc := service.NewAuthService(cfg.Auth, cfg.JWT, nil, logr)
	examSvc := service.NewExamService(examRepo, nil, logr)
	todoSvc := service.NewTodoService(todoRepo, nil, logr)
	seminarSvc := service.NewSeminarService(seminarRepo, nil, logr)
	planSvc := service.NewStudyPlanService(planRepo, nil, logr)
	moodSvc := service.NewMoodService(moodRepo, nil, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, logr)
	timerSvc := service.NewTimerService(examSvc, cfg.Timer, logr)
	timerSvc.SetCreditHook(metricsSvc.RecordTimerCredit)
	backupSvc := service.NewBackupService(documents, nil, logr)
	notesSvc := service.NewNotesService(nil, logr, cfg.Uploads.MaxFileSizeBytes)
	dashboardSvc := service.NewDashboardService(examSvc, todoSvc, seminarSvc, moodSvc, logr)

	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			dashboardSvc.EnableCache(redisClient, cfg.Dashboard.CacheTTL)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	authHandler := handler.NewAuthHandler(authSvc)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	protected.Use(middleware.CacheInvalidation(dashboardSvc))

	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	protected.GET("/dashboard", dashboardHandler.Overview)

	examHandler := handler.NewExamHandler(examSvc)
	protected.GET("/exams", examHandler.List)
	protected.POST("/exams", examHandler.Create)
	protected.GET("/exams/export", examHandler.Export)
	protected.PUT("/exams/:index", examHandler.Update)
	protected.DELETE("/exams/:index", examHandler.Delete)
	protected.POST("/exams/:index/archive", examHandler.Archive)
	protected.PUT("/exams/:index/grade", examHandler.Grade)

	todoHandler := handler.NewTodoHandler(todoSvc)
	protected.GET("/todos", todoHandler.List)
	protected.POST("/todos", todoHandler.Create)
	protected.PUT("/todos/:index", todoHandler.Update)
	protected.DELETE("/todos/:index", todoHandler.Delete)

	seminarHandler := handler.NewSeminarHandler(seminarSvc)
	protected.GET("/seminars", seminarHandler.List)
	protected.POST("/seminars", seminarHandler.Create)
	protected.PUT("/seminars/:index", seminarHandler.Update)
	protected.DELETE("/seminars/:index", seminarHandler.Delete)

	planHandler := handler.NewStudyPlanHandler(planSvc)
	protected.GET("/studyplan", planHandler.List)
	protected.POST("/studyplan", planHandler.Create)
	protected.GET("/studyplan/week", planHandler.Week)
	protected.PUT("/studyplan/:index", planHandler.Update)
	protected.DELETE("/studyplan/:index", planHandler.Delete)

	moodHandler := handler.NewMoodHandler(moodSvc)
	protected.GET("/mood", moodHandler.List)
	protected.POST("/mood", moodHandler.Create)
	protected.GET("/mood/history", moodHandler.History)
	protected.GET("/mood/export", moodHandler.Export)
	protected.DELETE("/mood/:index", moodHandler.Delete)

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	protected.GET("/schedule", scheduleHandler.Get)
	protected.PUT("/schedule", scheduleHandler.Set)

	timerHandler := handler.NewTimerHandler(timerSvc)
	protected.GET("/timer", timerHandler.Status)
	protected.POST("/timer/start", timerHandler.Start)
	protected.POST("/timer/reset", timerHandler.Reset)

	backupHandler := handler.NewBackupHandler(backupSvc)
	protected.GET("/backup/export", backupHandler.Export)
	protected.POST("/backup/restore", backupHandler.Restore)

	notesHandler := handler.NewNotesHandler(notesSvc)
	protected.POST("/notes/extract", notesHandler.Extract)
	protected.POST("/notes/sheet", notesHandler.StudySheet)
	protected.POST("/notes/merge", notesHandler.Merge)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
