package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estudiapro_client/internal/config"
	"estudiapro_client/internal/controller"
	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/service"
	"estudiapro_client/pkg/logger"
	"estudiapro_client/pkg/monitoring"
	"estudiapro_client/pkg/security"
	"estudiapro_client/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App is the HTTP face of the demo backend: the same services the in-process
// bridge uses, exposed over gin so a real frontend (or the live-mode
// dispatcher) has something to talk to.
type App struct {
	Config   *config.Config
	Router   *gin.Engine
	Store    *repository.Store
	services *service.Services
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	subject  *controller.SubjectController
	resource *controller.ResourceController
	exam     *controller.ExamController
	tutor    *controller.TutorController
	forum    *controller.ForumController
	activity *controller.ActivityController
	health   *controller.HealthController
}

func (a *App) initControllers(s *service.Services) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.Auth, s.Users),
		user:     controller.NewUserController(s.Users),
		subject:  controller.NewSubjectController(s.Subjects),
		resource: controller.NewResourceController(s.Resources),
		exam:     controller.NewExamController(s.Exams),
		tutor:    controller.NewTutorController(s.Tutors),
		forum:    controller.NewForumController(s.Forums),
		activity: controller.NewActivityController(s.Achievements, s.Notifications),
		health:   controller.NewHealthController(a.Store),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("logger initialized")

	app := &App{
		Config: cfg,
		Store:  repository.NewStore(),
	}

	app.services = service.NewServices(cfg, app.Store)
	controllers := app.initControllers(app.services)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("estudia-pro", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// Reload applies a changed config to the parts that can pick it up at
// runtime. Port and mode changes still need a restart.
func (a *App) Reload(cfg *config.Config) {
	a.Config.Client = cfg.Client
	a.Config.Cache = cfg.Cache
	logger.Log.Info("config reloaded",
		zap.Bool("demo_mode", cfg.Client.DemoMode),
		zap.Duration("demo_latency", cfg.Client.DemoLatency))
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
