package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"brandcarousel/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	catalogFileName  = "brands.yaml"
)

type yamlSettings struct {
	VelocityPxPerMs    float64 `yaml:"velocity_px_per_ms"`
	BlurDebounceMillis int     `yaml:"blur_debounce_ms"`
	ManualGraceMillis  int     `yaml:"manual_grace_ms"`
	ScrollFraction     float64 `yaml:"scroll_fraction"`
	EagerCount         *int    `yaml:"eager_count,omitempty"`
	ReduceMotion       bool    `yaml:"reduce_motion"`
	CatalogPath        string  `yaml:"catalog_path,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from an explicit path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to an explicit path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	eagerCount := settings.EagerCount
	fileData := yamlSettings{
		VelocityPxPerMs:    settings.Velocity,
		BlurDebounceMillis: int(settings.BlurDebounce / time.Millisecond),
		ManualGraceMillis:  int(settings.ManualGrace / time.Millisecond),
		ScrollFraction:     settings.ScrollFraction,
		EagerCount:         &eagerCount,
		ReduceMotion:       settings.ReduceMotion,
		CatalogPath:        settings.CatalogPath,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// DefaultCatalogPath returns the catalog location inside the config directory.
func DefaultCatalogPath(appName string) (string, error) {
	return resolveConfigPath(appName, catalogFileName)
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if preferences.ValidVelocity(fileData.VelocityPxPerMs) {
		settings.Velocity = fileData.VelocityPxPerMs
	}
	if fileData.BlurDebounceMillis > 0 {
		settings.BlurDebounce = time.Duration(fileData.BlurDebounceMillis) * time.Millisecond
	}
	if fileData.ManualGraceMillis > 0 {
		settings.ManualGrace = time.Duration(fileData.ManualGraceMillis) * time.Millisecond
	}
	if fileData.ScrollFraction > 0 && fileData.ScrollFraction <= 1 {
		settings.ScrollFraction = fileData.ScrollFraction
	}
	if fileData.EagerCount != nil && *fileData.EagerCount >= 0 {
		settings.EagerCount = *fileData.EagerCount
	}

	settings.ReduceMotion = fileData.ReduceMotion
	settings.CatalogPath = fileData.CatalogPath
}
