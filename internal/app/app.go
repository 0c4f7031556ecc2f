package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/controller"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/store"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"learnhub_backend/pkg/security"
	"learnhub_backend/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Store  *store.Store

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	course      *repository.CourseRepository
	progress    *repository.ProgressRepository
	certificate *repository.CertificateRepository
}

type services struct {
	catalog     *service.CatalogService
	progress    *service.ProgressService
	certificate *service.CertificateService
	quiz        *service.QuizService
}

type controllers struct {
	course      *controller.CourseController
	progress    *controller.ProgressController
	certificate *controller.CertificateController
	quiz        *controller.QuizController
	health      *controller.HealthController
}

func (a *App) initRepositories(st *store.Store) *repositories {
	return &repositories{
		course:      repository.NewCourseRepository(st),
		progress:    repository.NewProgressRepository(st),
		certificate: repository.NewCertificateRepository(st),
	}
}

func (a *App) initServices(repos *repositories, st *store.Store) *services {
	return &services{
		catalog:     service.NewCatalogService(repos.course, st),
		progress:    service.NewProgressService(repos.progress, st),
		certificate: service.NewCertificateService(repos.certificate, st),
		quiz:        service.NewQuizService(repos.course),
	}
}

func (a *App) initControllers(s *services, st *store.Store) *controllers {
	return &controllers{
		course:      controller.NewCourseController(s.catalog),
		progress:    controller.NewProgressController(s.progress),
		certificate: controller.NewCertificateController(s.certificate),
		quiz:        controller.NewQuizController(s.quiz),
		health:      controller.NewHealthController(st),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	// 前端与后端不同源部署，放开跨域；预检请求由 cors 中间件以 204 应答
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "x-role"}
	router.Use(cors.New(corsCfg))

	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	st := store.New(cfg.Store.Path)
	if err := st.Load(); err != nil {
		logger.Log.Fatal("Failed to load store", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		Store:  st,
	}

	repos := app.initRepositories(st)
	services := app.initServices(repos, st)
	controllers := app.initControllers(services, st)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learnhub-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
