package container

import (
	"context"
	"fmt"
	"time"

	"minutes-backend/internal/config"
	"minutes-backend/internal/infrastructure/ai"
	"minutes-backend/internal/infrastructure/sheets"
	"minutes-backend/pkg/jwt"
	"minutes-backend/pkg/logger"

	"minutes-backend/internal/domains/export"
	exportHandler "minutes-backend/internal/domains/export/handler"
	exportService "minutes-backend/internal/domains/export/service"
	"minutes-backend/internal/domains/faculty"
	facultyHandler "minutes-backend/internal/domains/faculty/handler"
	facultyRepo "minutes-backend/internal/domains/faculty/repository"
	facultyService "minutes-backend/internal/domains/faculty/service"
	"minutes-backend/internal/domains/minutes"
	minutesHandler "minutes-backend/internal/domains/minutes/handler"
	minutesRepo "minutes-backend/internal/domains/minutes/repository"
	minutesService "minutes-backend/internal/domains/minutes/service"
	"minutes-backend/internal/domains/settings"
	settingsHandler "minutes-backend/internal/domains/settings/handler"
	settingsRepo "minutes-backend/internal/domains/settings/repository"
	settingsService "minutes-backend/internal/domains/settings/service"
)

// Container holds every dependency of the application and is the root
// of the dependency graph. Everything in it is a singleton.
type Container struct {
	// Infrastructure layer
	Config     *config.Config
	Sheets     sheets.Gateway
	Composer   *ai.Composer
	JWTManager *jwt.Manager

	// Repository layer
	MinutesRepo  minutes.Repository
	FacultyRepo  faculty.Repository
	SettingsRepo settings.Repository

	// Service layer
	MinutesService  minutes.Service
	FacultyService  faculty.Service
	SettingsService settings.Service
	ExportService   export.Service

	// Handler layer
	MinutesHandler  *minutesHandler.MinutesHandler
	FacultyHandler  *facultyHandler.FacultyHandler
	SettingsHandler *settingsHandler.SettingsHandler
	ExportHandler   *exportHandler.ExportHandler
}

// NewContainer builds the dependency graph in order: config, then
// infrastructure, then repositories, services, and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gateway, err := sheets.NewClient(ctx, cfg.Spreadsheet)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to spreadsheet: %w", err)
	}
	c.Sheets = gateway
	logger.Info("spreadsheet gateway ready", nil)

	composer, err := ai.NewComposer(ctx, cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize draft composer: %w", err)
	}
	c.Composer = composer

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	c.MinutesRepo = minutesRepo.NewSheetRepository(c.Sheets)
	c.FacultyRepo = facultyRepo.NewSheetRepository(c.Sheets)
	c.SettingsRepo = settingsRepo.NewSheetRepository(c.Sheets)
}

func (c *Container) initServices() {
	c.MinutesService = minutesService.NewMinutesService(c.MinutesRepo, c.Composer)
	c.FacultyService = facultyService.NewFacultyService(c.FacultyRepo)
	c.SettingsService = settingsService.NewSettingsService(c.SettingsRepo, c.JWTManager)
	c.ExportService = exportService.NewExportService(c.MinutesRepo, c.Config.Export.FontPath)
}

func (c *Container) initHandlers() {
	c.MinutesHandler = minutesHandler.NewMinutesHandler(c.MinutesService)
	c.FacultyHandler = facultyHandler.NewFacultyHandler(c.FacultyService)
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsService)
	c.ExportHandler = exportHandler.NewExportHandler(c.ExportService)
}
