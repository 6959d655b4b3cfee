package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"study_tracker_backend/internal/config"
	"study_tracker_backend/internal/controller"
	"study_tracker_backend/internal/middleware"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/seed"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/stats"
	"study_tracker_backend/pkg/configwatcher"
	"study_tracker_backend/pkg/database"
	"study_tracker_backend/pkg/logger"
	"study_tracker_backend/pkg/monitoring"
	"study_tracker_backend/pkg/prefs"
	"study_tracker_backend/pkg/security"
	"study_tracker_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config      *config.Config
	Router      *gin.Engine
	DB          *gorm.DB
	Redis       *redis.Client
	Prefs       prefs.Store
	Collections repository.Collections

	tracer          *sdktrace.TracerProvider
	ctx             context.Context
	cancel          context.CancelFunc
	services        *services
	configCallbacks []func(*config.Config)
}

type services struct {
	collection *service.CollectionService
	pin        *service.PinService
	storage    *service.StorageService
	profile    *service.ProfileService
	home       *service.HomeService
	dashboard  *service.DashboardService
	calendar   *service.CalendarService
	logbook    *service.LogbookService
	subject    *service.SubjectService
	insights   *service.InsightsService
}

type controllers struct {
	collection *controller.CollectionController
	profile    *controller.ProfileController
	home       *controller.HomeController
	dashboard  *controller.DashboardController
	calendar   *controller.CalendarController
	logbook    *controller.LogbookController
	subject    *controller.SubjectController
	insights   *controller.InsightsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initServices(cfg *config.Config) *services {
	cal := stats.NewCalendar(cfg.Calendar.Location(), cfg.Calendar.FirstWeekday())
	now := service.Clock(time.Now)

	s := &services{}
	s.collection = service.NewCollectionService(a.Collections)
	s.pin = service.NewPinService(a.Prefs)
	s.storage = service.NewStorageService(cfg)
	s.profile = service.NewProfileService(cfg)
	s.home = service.NewHomeService(a.Collections)
	s.dashboard = service.NewDashboardService(a.Collections, cal, now)
	s.calendar = service.NewCalendarService(a.Collections, cal, now)
	s.logbook = service.NewLogbookService(a.Collections, cal, now)
	s.subject = service.NewSubjectService(a.Collections, s.pin, s.storage)
	s.insights = service.NewInsightsService(a.Collections, cal, now)
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		collection: controller.NewCollectionController(s.collection),
		profile:    controller.NewProfileController(s.profile),
		home:       controller.NewHomeController(s.home),
		dashboard:  controller.NewDashboardController(s.dashboard),
		calendar:   controller.NewCalendarController(s.calendar),
		logbook:    controller.NewLogbookController(s.logbook),
		subject:    controller.NewSubjectController(s.subject),
		insights:   controller.NewInsightsController(s.insights),
		health:     controller.NewHealthController(a.DB, a.Prefs),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.ProfileMiddleware(a.services.profile))
}

// openCollections 按 database.driver 选择存储，memory 不连接数据库
func openCollections(cfg *config.Config) (*gorm.DB, repository.Collections, error) {
	if cfg.Database.Driver == "memory" {
		return nil, repository.NewMemoryCollections(), nil
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		return nil, repository.Collections{}, err
	}
	return db, repository.NewGormCollections(db), nil
}

// openPrefs 只有 prefs.type=redis 时才连接 Redis
func openPrefs(cfg *config.Config) (prefs.Store, *redis.Client, error) {
	var rdb *redis.Client
	if cfg.Prefs.Type == "redis" {
		client, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("init redis: %w", err)
		}
		rdb = client
	}

	store, err := prefs.New(&cfg.Prefs, rdb)
	if err != nil {
		return nil, nil, fmt.Errorf("open prefs store: %w", err)
	}
	return store, rdb, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, collections, err := openCollections(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	store, rdb, err := openPrefs(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize preference store", zap.Error(err))
	}

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp, err = tracing.InitTracer("study-tracker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app := newApp(cfg, db, collections, store)
	app.Redis = rdb
	app.tracer = tp

	if cfg.SeedFile != "" {
		app.seed(cfg.SeedFile)
	}

	app.RegisterConfigCallback(logger.ApplyConfig)
	return app
}

// newApp 组装服务、控制器和路由，不做任何外部连接
func newApp(cfg *config.Config, db *gorm.DB, collections repository.Collections, store prefs.Store) *App {
	model.SetLocation(cfg.Calendar.Location())
	gin.SetMode(cfg.Server.Mode)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config:      cfg,
		DB:          db,
		Prefs:       store,
		Collections: repository.Instrument(collections),
		ctx:         ctx,
		cancel:      cancel,
	}

	app.services = app.initServices(cfg)
	controllers := app.initControllers(app.services)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) seed(path string) {
	fixtures, err := seed.LoadFile(path)
	if err != nil {
		logger.Log.Error("Failed to load seed file", zap.String("file", path), zap.Error(err))
		return
	}
	inserted, err := seed.Apply(a.ctx, a.services.collection, fixtures)
	if err != nil {
		logger.Log.Error("Seeding finished with errors", zap.Error(err))
	}
	logger.Log.Info("Seeding completed", zap.Any("inserted", inserted))
}

func (a *App) watchConfig() {
	if a.Config.Dir == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(a.ctx, a.Config.Dir, func(cfg *config.Config) {
			for _, callback := range a.configCallbacks {
				callback(cfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	a.watchConfig()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(ctx)
	logger.Log.Info("Server exiting")
}

// Close 停止后台任务并释放连接
func (a *App) Close(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Prefs != nil {
		if err := a.Prefs.Close(); err != nil {
			logger.Log.Error("Failed to close preference store", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
