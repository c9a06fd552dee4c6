package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultMaxWeight = 1500.0
	cfg.DefaultBundleProfileID = "BDL-STANDARD"
	cfg.AutoSaveInterval = 5
	cfg.RecentOrders = []string{"/tmp/order1.json", "/tmp/order2.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultMaxWeight != 1500.0 {
		t.Errorf("expected DefaultMaxWeight=1500.0, got %f", loaded.DefaultMaxWeight)
	}
	if loaded.DefaultBundleProfileID != "BDL-STANDARD" {
		t.Errorf("expected DefaultBundleProfileID=BDL-STANDARD, got %s", loaded.DefaultBundleProfileID)
	}
	if loaded.AutoSaveInterval != 5 {
		t.Errorf("expected AutoSaveInterval=5, got %d", loaded.AutoSaveInterval)
	}
	if len(loaded.RecentOrders) != 2 {
		t.Errorf("expected 2 recent orders, got %d", len(loaded.RecentOrders))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultMaxWeight != defaults.DefaultMaxWeight {
		t.Errorf("expected default max weight %f, got %f", defaults.DefaultMaxWeight, cfg.DefaultMaxWeight)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigNilRecentOrders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"default_max_weight":2000,"recent_orders":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentOrders == nil {
		t.Error("RecentOrders should not be nil after loading")
	}
}
