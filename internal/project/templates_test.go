package project

import (
	"path/filepath"
	"testing"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	store := model.NewTemplateStore()
	skus := []model.SKU{model.NewSKU("Shelf.Red", 500, 300, 3680, 4, 2, true, "")}
	cfg := model.DefaultPackConfig()

	tmpl := model.NewOrderTemplate("Cabinet", "Standard cabinet", skus, cfg)
	store.Add(tmpl)

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Cabinet" {
		t.Errorf("expected 'Cabinet', got %q", loaded.Templates[0].Name)
	}
	if len(loaded.Templates[0].SKUs) != 1 {
		t.Errorf("expected 1 SKU, got %d", len(loaded.Templates[0].SKUs))
	}
}

func TestLoadTemplatesNotFound(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.json")

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestSaveAndLoadTemplatesMultiple(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")
	cfg := model.DefaultPackConfig()

	store := model.NewTemplateStore()
	store.Add(model.NewOrderTemplate("T1", "First", nil, cfg))
	store.Add(model.NewOrderTemplate("T2", "Second", nil, cfg))
	store.Add(model.NewOrderTemplate("T3", "Third", nil, cfg))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(loaded.Templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(loaded.Templates))
	}
}
