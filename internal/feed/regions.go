package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RegionInfo describes one known pricing region.
type RegionInfo struct {
	Name     string `json:"name"`     // e.g., "SE3"
	Country  string `json:"country"`  // ISO 3166-1 alpha-2, e.g., "SE"
	Currency string `json:"currency"` // e.g., "SEK"
}

// RegionList is a saved directory of known regions.
type RegionList struct {
	UpdatedAt string       `json:"updated_at"` // ISO 8601 timestamp
	Regions   []RegionInfo `json:"regions"`
}

// LoadRegions loads a region directory from a JSON file.
func LoadRegions(filePath string) (*RegionList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read regions file: %w", err)
	}

	var list RegionList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse regions file: %w", err)
	}

	return &list, nil
}

// SaveRegions saves a region directory to a JSON file.
func SaveRegions(list *RegionList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal regions: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write regions file: %w", err)
	}

	return nil
}

// DefaultRegionsPath returns the default path for the regions file.
func DefaultRegionsPath() string {
	if path := os.Getenv("REGIONS_FILE"); path != "" {
		return path
	}
	return "./data/regions.json"
}
