package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"glowfolio-backend/internal/background"
	"glowfolio-backend/internal/config"
	"glowfolio-backend/internal/handlers"
	"glowfolio-backend/internal/middleware"
	"glowfolio-backend/internal/repository"
	"glowfolio-backend/internal/seed"
	"glowfolio-backend/internal/service"
	"glowfolio-backend/internal/templates"
	"glowfolio-backend/internal/theme"
	"glowfolio-backend/pkg/cache"
	"glowfolio-backend/pkg/logger"
	"glowfolio-backend/pkg/utils"
	"glowfolio-backend/pkg/validator"
)

const demoUsername = "demo"

type Options struct {
	Templates fs.FS
	Static    fs.FS
}

type Application struct {
	cfg     *config.Config
	options Options

	db      *gorm.DB
	cache   *cache.Cache
	presets *theme.Catalog

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	scheduler  *background.Scheduler
	rateLimits *middleware.RateLimitManager
	router     *gin.Engine
	server     *http.Server
}

type repositoryContainer struct {
	Profile repository.ProfileRepository
}

type serviceContainer struct {
	Template *service.TemplateService
	Kit      *service.KitService
}

type handlerContainer struct {
	Page *handlers.PageHandler
	API  *handlers.APIHandler
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if opts.Templates == nil {
		return nil, fmt.Errorf("page templates are required")
	}

	app := &Application{
		cfg:     cfg,
		options: opts,
	}

	if cfg.EnableDatabase {
		if err := app.initDatabase(); err != nil {
			return nil, err
		}
		if err := app.runMigrations(); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("Database disabled, kit pages will not be served", nil)
	}

	app.initCache()

	if err := app.initPresets(); err != nil {
		return nil, err
	}

	app.initRepositories()
	app.initServices()

	if cfg.SeedDemo {
		seed.EnsureDemoProfile(app.repositories.Profile, demoUsername)
	}

	if err := app.initHandlers(); err != nil {
		return nil, err
	}

	app.scheduler = background.NewScheduler(background.SchedulerConfig{WorkerCount: cfg.SchedulerWorkers})
	app.rateLimits = middleware.NewRateLimitManager(context.Background())

	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   15 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	a.startBackgroundJobs()

	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) startBackgroundJobs() {
	a.scheduler.Start(context.Background())

	if a.cfg.CacheWarmupEnabled {
		if err := a.scheduler.Enqueue(background.WarmTemplateLibraryJob(a.services.Template)); err != nil {
			logger.Error(err, "Failed to schedule template library warm-up", nil)
		}
	}

	if a.cfg.PresetReloadInterval > 0 {
		interval := time.Duration(a.cfg.PresetReloadInterval) * time.Second
		if err := a.scheduler.Every(background.ReloadPresetsJob(a.services.Template), interval); err != nil {
			logger.Error(err, "Failed to schedule preset reload", nil)
		}
	}

	if a.repositories.Profile != nil && a.cfg.KitRefreshInterval > 0 {
		interval := time.Duration(a.cfg.KitRefreshInterval) * time.Second
		if err := a.scheduler.Every(background.RefreshKitsJob(a.services.Kit), interval); err != nil {
			logger.Error(err, "Failed to schedule kit refresh", nil)
		}
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	var errs []error

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(ctx); err != nil {
			logger.Error(err, "Background jobs did not stop in time", nil)
		}
	}

	if a.rateLimits != nil {
		_ = a.rateLimits.Shutdown()
	}

	if err := a.cache.Close(); err != nil {
		logger.Error(err, "Failed to close cache connection", nil)
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return errors.Join(errs...)
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", map[string]interface{}{"driver": a.cfg.DBDriver})

	var dialector gorm.Dialector
	switch a.cfg.DBDriver {
	case "sqlite":
		if dir := filepath.Dir(a.cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
		dialector = sqlite.Open(a.cfg.SQLitePath)
	case "postgres", "":
		dialector = postgres.Open(a.cfg.DatabaseURL)
	default:
		return fmt.Errorf("unsupported database driver %q", a.cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if a.cfg.DBDriver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := repository.Migrate(a.db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) initCache() {
	c, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableCache)
	if err != nil {
		logger.Error(err, "Redis unavailable, rendering without cache", map[string]interface{}{"addr": a.cfg.RedisURL})
		c, _ = cache.NewCache("", false)
	}
	a.cache = c
}

func (a *Application) initPresets() error {
	presets, err := theme.NewCatalog(a.cfg.PresetsFile)
	if err != nil {
		return fmt.Errorf("failed to load colour presets: %w", err)
	}
	a.presets = presets
	logger.Info("Colour presets loaded", map[string]interface{}{"presets": len(presets.List()), "file": a.cfg.PresetsFile})
	return nil
}

func (a *Application) initRepositories() {
	if a.db != nil {
		a.repositories.Profile = repository.NewProfileRepository(a.db)
	}
}

func (a *Application) initServices() {
	templateService := service.NewTemplateService(templates.DefaultRegistry(), a.presets, a.cache, service.TemplateConfig{
		DefaultTemplate: a.cfg.DefaultTemplate,
		ThumbnailScale:  a.cfg.ThumbnailScale,
	})

	a.services = serviceContainer{
		Template: templateService,
		Kit:      service.NewKitService(a.repositories.Profile, templateService, a.cache, time.Duration(a.cfg.KitCacheTTLSecond)*time.Second),
	}
}

func (a *Application) initHandlers() error {
	validator.Init()

	pages, err := utils.LoadTemplates(a.options.Templates, ".", nil)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	logger.Info("Templates loaded successfully", nil)

	pageHandler, err := handlers.NewPageHandler(a.services.Kit, a.services.Template, a.cfg, pages)
	if err != nil {
		return fmt.Errorf("failed to initialize page handler: %w", err)
	}

	a.handlers = handlerContainer{
		Page: pageHandler,
		API:  handlers.NewAPIHandler(a.services.Kit, a.services.Template),
	}
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.WithRateLimitManager(a.rateLimits))
	router.Use(middleware.RateLimitMiddleware(a.cfg))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": a.db != nil,
			"cache":    a.cache.Enabled(),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if a.options.Static != nil {
		router.StaticFS("/static", http.FS(a.options.Static))
	}

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/templates")
	})
	router.GET("/templates", a.handlers.Page.Library)
	router.GET("/templates/:id/preview", a.handlers.Page.Preview)

	renderLimit := middleware.RenderRateLimitMiddleware(a.cfg.RenderRateLimit, a.cfg.RateLimitWindow)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/templates", a.handlers.API.ListTemplates)
		v1.GET("/templates/:id/theme", a.handlers.API.TemplateTheme)
		v1.GET("/presets", a.handlers.API.ListPresets)
		v1.POST("/render", renderLimit, a.handlers.API.Render)
	}

	if a.repositories.Profile != nil {
		router.GET("/kit/:username", a.handlers.Page.Kit)
		v1.GET("/kits/:username/preview-data", a.handlers.API.PreviewData)
		v1.POST("/kits/:username/render", renderLimit, a.handlers.API.RenderProfile)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}
