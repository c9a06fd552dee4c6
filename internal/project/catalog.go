package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

// DefaultCatalogPath returns the default file path for the machine/bundle
// catalog, at ~/.bundle-optimization/catalog.json.
func DefaultCatalogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bundle-optimization", "catalog.json"), nil
}

// SaveCatalog writes the machine catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, catalog model.MachineCatalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCatalog reads the machine catalog from the specified JSON file.
// If the file does not exist, it returns the built-in default catalog and
// saves it so subsequent edits have somewhere to persist to.
func LoadCatalog(path string) (model.MachineCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			catalog := model.DefaultMachineCatalog()
			if saveErr := SaveCatalog(path, catalog); saveErr != nil {
				return catalog, saveErr
			}
			return catalog, nil
		}
		return model.MachineCatalog{}, err
	}
	var catalog model.MachineCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.MachineCatalog{}, err
	}
	return catalog, nil
}

// LoadOrCreateCatalog loads the machine catalog from the default path,
// creating it with the built-in defaults if it does not yet exist.
func LoadOrCreateCatalog() (model.MachineCatalog, string, error) {
	path, err := DefaultCatalogPath()
	if err != nil {
		return model.DefaultMachineCatalog(), "", err
	}
	catalog, err := LoadCatalog(path)
	return catalog, path, err
}

// ExportCatalog exports the catalog to a user-specified JSON file, for
// sharing machine/bundle-profile setups between installations.
func ExportCatalog(path string, catalog model.MachineCatalog) error {
	return SaveCatalog(path, catalog)
}

// ImportCatalog imports a catalog from a user-specified JSON file, merging
// it into the existing catalog. Entries with duplicate IDs are skipped.
func ImportCatalog(path string, existing model.MachineCatalog) (model.MachineCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.MachineCatalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	machineIDs := make(map[string]bool, len(existing.Machines))
	for _, m := range existing.Machines {
		machineIDs[m.ID] = true
	}
	bundleIDs := make(map[string]bool, len(existing.Bundles))
	for _, b := range existing.Bundles {
		bundleIDs[b.ID] = true
	}

	for _, m := range imported.Machines {
		if !machineIDs[m.ID] {
			existing.Machines = append(existing.Machines, m)
			machineIDs[m.ID] = true
		}
	}
	for _, b := range imported.Bundles {
		if !bundleIDs[b.ID] {
			existing.Bundles = append(existing.Bundles, b)
			bundleIDs[b.ID] = true
		}
	}

	return existing, nil
}
