package bootstrap

import (
	"strings"

	"github.com/rs/zerolog"

	appControllers "github.com/courseplanner/planner/internal/app/controllers"
	appRepos "github.com/courseplanner/planner/internal/app/repositories"
	appServices "github.com/courseplanner/planner/internal/app/services"
	"github.com/courseplanner/planner/internal/config"
	"github.com/courseplanner/planner/internal/pkg/filestorage"
	"github.com/courseplanner/planner/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseRepo       *appRepos.CourseRepository
	FileStorage      filestorage.FileStorage
	LoaderService    appServices.LoaderService
	CourseService    appServices.CourseService
	CourseController *appControllers.CourseController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.ResolvePath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := logger.Get()
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies wires the course table, services and controller.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.CourseRepo = appRepos.NewCourseRepository()
	deps.FileStorage = filestorage.NewLocalStorage(cfg.Catalog.BaseDir)

	deps.LoaderService = appServices.NewLoaderService(deps.CourseRepo, deps.FileStorage, lgr)
	deps.CourseService = appServices.NewCourseService(deps.CourseRepo)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps
}
