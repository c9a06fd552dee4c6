package project

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

// ExportMachinePreset exports a single machine preset to a JSON file, for
// sharing one machine's settings between installations without shipping
// the whole catalog.
func ExportMachinePreset(path string, preset model.MachinePreset) error {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportMachinePreset imports a single machine preset from a JSON file.
func ImportMachinePreset(path string) (model.MachinePreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.MachinePreset{}, err
	}
	var preset model.MachinePreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.MachinePreset{}, err
	}
	if preset.Name == "" {
		return model.MachinePreset{}, errors.New("imported machine preset has no name")
	}
	return preset, nil
}
