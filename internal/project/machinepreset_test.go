package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

func TestExportAndImportMachinePreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mach1.json")

	preset := model.NewMachinePreset("MACH1", 600, 600, []float64{1219, 2438, 3680})
	if err := ExportMachinePreset(path, preset); err != nil {
		t.Fatalf("ExportMachinePreset failed: %v", err)
	}

	loaded, err := ImportMachinePreset(path)
	if err != nil {
		t.Fatalf("ImportMachinePreset failed: %v", err)
	}
	if loaded.Name != "MACH1" {
		t.Errorf("expected name MACH1, got %q", loaded.Name)
	}
	if loaded.MaxWidth != 600 || loaded.MaxHeight != 600 {
		t.Errorf("expected 600x600, got %fx%f", loaded.MaxWidth, loaded.MaxHeight)
	}
	if len(loaded.LengthsRun) != 3 {
		t.Errorf("expected 3 run lengths, got %d", len(loaded.LengthsRun))
	}
}

func TestImportMachinePresetMissingFile(t *testing.T) {
	_, err := ImportMachinePreset(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportMachinePresetMissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.json")
	data := []byte(`{"id":"abc","max_width":600,"max_height":600}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportMachinePreset(path)
	if err == nil {
		t.Fatal("expected error for a preset with no name")
	}
}
