package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnpath_backend/internal/catalog"
	"learnpath_backend/internal/config"
	"learnpath_backend/internal/controller"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/service"
	"learnpath_backend/pkg/logger"
	"learnpath_backend/pkg/monitoring"
	"learnpath_backend/pkg/security"
	"learnpath_backend/pkg/tracing"
	"learnpath_backend/pkg/watcher"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Store   repository.SessionStore
	Catalog *catalog.Catalog
}

type services struct {
	learner   *service.LearnerService
	path      *service.PathService
	progress  *service.ProgressService
	dashboard *service.DashboardService
}

type controllers struct {
	learner   *controller.LearnerController
	path      *controller.PathController
	progress  *controller.ProgressController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) initServices(store repository.SessionStore, cat *catalog.Catalog) *services {
	return &services{
		learner:   service.NewLearnerService(store),
		path:      service.NewPathService(store, cat),
		progress:  service.NewProgressService(store),
		dashboard: service.NewDashboardService(store),
	}
}

func (a *App) initControllers(s *services, cat *catalog.Catalog) *controllers {
	return &controllers{
		learner:   controller.NewLearnerController(s.learner),
		path:      controller.NewPathController(s.path),
		progress:  controller.NewProgressController(s.progress),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(cat),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startCatalogWatcher reloads the catalog when either CSV changes on disk.
func (a *App) startCatalogWatcher(cat *catalog.Catalog) {
	studentsPath, coursesPath := cat.Paths()
	go watcher.WatchFile(coursesPath, cat.Reload)
	go watcher.WatchFile(studentsPath, cat.Reload)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(ginMode(cfg.Server.Mode))

	cat := catalog.New(cfg.Catalog)
	store := repository.NewMemorySessionStore()

	app := &App{
		Config:  cfg,
		Store:   store,
		Catalog: cat,
	}

	svcs := app.initServices(store, cat)
	ctrls := app.initControllers(svcs, cat)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnpath-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls)

	if cfg.Catalog.Watch {
		app.startCatalogWatcher(cat)
	}

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

	log.Println("Server exiting")
}
