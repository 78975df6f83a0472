package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	domainRepo "doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/directory"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/service"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config        *config.Config
	Log           *logrus.Logger
	DirectoryRepo domainRepo.DirectoryRepository
	Loader        service.DirectoryLoader
	Server        *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logrus.StandardLogger()
	setupLogger(log, cfg.Log)
	log.Info("Configuration loaded successfully")

	if cfg.FileUsed != "" {
		watchConfig(log)
	}

	return NewWithConfig(cfg, log), nil
}

// NewWithConfig wires the application from an already loaded config.
func NewWithConfig(cfg *config.Config, log *logrus.Logger) *App {
	directoryRepo := repository.NewDirectoryRepository()
	client := directory.NewClient(cfg.Directory, log)

	return &App{
		Config:        cfg,
		Log:           log,
		DirectoryRepo: directoryRepo,
		Loader:        service.NewDirectoryLoader(log, client, directoryRepo),
		Server:        initializeServer(cfg, log, directoryRepo),
	}
}

// setupLogger configures the logrus logger
func setupLogger(log *logrus.Logger, cfg config.LogConfig) {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(parseLevel(cfg.Level))
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// watchConfig reloads the log level when the config file changes. The
// directory is never fetched again.
func watchConfig(log *logrus.Logger) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		level := parseLevel(viper.GetString("LOG_LEVEL"))
		log.SetLevel(level)
		log.WithField("file", e.Name).Infof("Config changed, log level %s", level)
	})
	viper.WatchConfig()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, directoryRepo domainRepo.DirectoryRepository) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, directoryRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase)
	filterHandler := handler.NewFilterHandler(directoryUsecase, customValidator)

	// Initialize middleware
	queryStateMiddleware := middleware.NewQueryStateMiddleware()
	loggerMiddleware := middleware.NewLoggerMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, filterHandler, queryStateMiddleware, loggerMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run serves HTTP while the directory loads in the background, until an
// interrupt signal is received.
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx)
}

// Serve runs the server and the one-shot directory load until ctx is done
// or the server fails.
func (app *App) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Shutdown cancels a fetch still in flight.
		if err := app.Loader.Load(gctx); err != nil && !errors.Is(err, service.ErrAlreadyLoaded) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
			return err
		}

		app.Log.Info("Server shutdown complete")
		return nil
	})

	return g.Wait()
}
