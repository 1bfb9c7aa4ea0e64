package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/bkcalfee/colony-planner/internal/api"
	"github.com/bkcalfee/colony-planner/internal/catalog"
	"github.com/bkcalfee/colony-planner/internal/config"
	"github.com/bkcalfee/colony-planner/internal/planner"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	catalogs catalog.Set
	planner  planner.Planner
	handler  *api.Handler
	router   http.Handler
	logger   *zap.Logger
	server   *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	catalogs, err := LoadCatalogs(cfg)
	if err != nil {
		return nil, err
	}

	p := planner.New()
	handler := api.NewHandler(p, catalogs)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	server := NewServer(cfg, router)

	return &App{
		catalogs: catalogs,
		planner:  p,
		handler:  handler,
		router:   router,
		logger:   logger,
		server:   server,
	}, nil
}

// LoadCatalogs resolves the reference catalogs from the configuration:
// the built-in defaults, or a full replacement set from a YAML file. The
// configured default food must exist in whichever set is used.
func LoadCatalogs(cfg config.Config) (catalog.Set, error) {
	catalogs := catalog.Default()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return catalog.Set{}, fmt.Errorf("failed to load catalog file: %w", err)
		}
		catalogs = loaded
	}

	if _, ok := catalogs.Foods[cfg.DefaultFood]; !ok {
		return catalog.Set{}, fmt.Errorf("default food %q is not in the food catalog", cfg.DefaultFood)
	}
	return catalogs, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
