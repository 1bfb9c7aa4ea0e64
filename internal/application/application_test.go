package application

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/bkcalfee/colony-planner/internal/config"
)

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, ok := app.catalogs.Foods["basic_meal"]; !ok {
		t.Fatalf("expected default catalogs to be loaded")
	}
	if app.server == nil || app.router == nil || app.handler == nil || app.planner == nil {
		t.Fatalf("expected server, router, handler, and planner to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestLoadCatalogsFromFile(t *testing.T) {
	const doc = `
foods:
  ration:
    name: Field Ration
    calories: 600
    unit: box
buildings:
  crate:
    name: Storage Crate
    materials:
      iron: 25
materials:
  iron:
    name: Iron
    unit: kg
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}

	cfg := baseTestConfig(":0")
	cfg.CatalogFile = path
	cfg.DefaultFood = "ration"

	catalogs, err := LoadCatalogs(cfg)
	if err != nil {
		t.Fatalf("LoadCatalogs returned error: %v", err)
	}
	if catalogs.Foods["ration"].Calories != 600 {
		t.Fatalf("expected replacement catalog to be used, got %+v", catalogs.Foods)
	}
}

func TestLoadCatalogsRejectsUnknownDefaultFood(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.DefaultFood = "stone_soup"

	if _, err := LoadCatalogs(cfg); err == nil {
		t.Fatalf("expected error for default food missing from catalog")
	}
}

func TestNewReturnsErrorForBadCatalogFile(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for unreadable catalog file")
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		DefaultFood:          "basic_meal",
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
