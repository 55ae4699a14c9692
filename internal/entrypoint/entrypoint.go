package entrypoint

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
	"github.com/mrlokans/bookcatalog/internal/database/books"
	http_controllers "github.com/mrlokans/bookcatalog/internal/http"
	"github.com/mrlokans/bookcatalog/internal/logging"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Application is the wired set of components behind the HTTP server.
type Application struct {
	Router *gin.Engine
	db     *database.Database
}

// NewApplication connects to the database and builds the router. A failed
// connection is logged and the server still starts: book operations then fail
// with a store error and /health answers 503 so the process can be restarted.
func NewApplication(ctx context.Context, cfg *config.Config, version string) *Application {
	db, err := database.Connect(ctx, cfg.Database.URL, database.Options{
		ConnectAttempts: cfg.Database.ConnectAttempts,
		ConnectBackoff:  cfg.Database.ConnectBackoff,
		LogLevel:        cfg.Database.LogLevel,
	})

	routerCfg := http_controllers.RouterConfig{Version: version}
	if err != nil {
		logging.Error().Err(err).Msg("Failed to connect to database")
		routerCfg.Store = books.NewRepository(nil)
	} else {
		logging.Info().Msg("Connected to database")
		routerCfg.Store = books.NewRepository(db.DB)
		routerCfg.Database = db
	}

	return &Application{
		Router: http_controllers.NewRouter(routerCfg),
		db:     db,
	}
}

// Close releases the database connection, if one was opened.
func (a *Application) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := cfg.Global.ShutdownTimeout()

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: router,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("Starting server")
		// service connections
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("listen")
		}
	}()

	// Graceful shutdown
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info().Dur("timeout", timeout).Msg("Shutdown server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Server shutdown")
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	logging.Info().Msg("Server exiting")
}

func Run(cfg *config.Config, version string) {
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("Invalid configuration")
	}

	logging.Info().Str("version", version).Msg("Starting book catalog")
	gin.SetMode(cfg.HTTP.GinMode)

	app := NewApplication(context.Background(), cfg, version)

	Serve(app.Router, cfg, func(ctx context.Context) {
		app.Close()
	})
}
