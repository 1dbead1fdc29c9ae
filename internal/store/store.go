// Package store provides persistence for application data: the YAML-backed
// category and template configuration, and the CSV receipts ledger.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/config"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ConfigStore manages loading of category and template configuration files.
type ConfigStore struct {
	CategoriesFile string
	TemplatesFile  string
}

// NewConfigStore creates a store for category and template data.
func NewConfigStore(categoriesFile, templatesFile string) *ConfigStore {
	return &ConfigStore{
		CategoriesFile: categoriesFile,
		TemplatesFile:  templatesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *ConfigStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                            // Current directory
		filepath.Join("config", filename),   // ./config/ directory
		filepath.Join("database", filename), // ./database/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Last resort: user's home directory under .config/receipt-digitizer/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "receipt-digitizer", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the ordered category keyword table from YAML.
func (s *ConfigStore) LoadCategories() ([]models.CategoryConfig, error) {
	path, err := s.FindConfigFile(s.CategoriesFile)
	if err != nil {
		log.Warnf("Categories file not found: %s", s.CategoriesFile)
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read categories file %s: %w", path, err)
	}

	var cfg models.CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse categories file %s: %w", path, err)
	}

	log.WithField("count", len(cfg.Categories)).Debug("Loaded categories from YAML")
	return cfg.Categories, nil
}

// LoadTemplates loads additional vendor template configurations from YAML.
// A missing file is normal and returns an empty slice: the built-in
// templates always apply.
func (s *ConfigStore) LoadTemplates() ([]models.TemplateConfig, error) {
	path, err := s.FindConfigFile(s.TemplatesFile)
	if err != nil {
		log.Debugf("Templates file not found: %s, using built-ins only", s.TemplatesFile)
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read templates file %s: %w", path, err)
	}

	var cfg models.TemplatesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse templates file %s: %w", path, err)
	}

	log.WithField("count", len(cfg.Templates)).Debug("Loaded templates from YAML")
	return cfg.Templates, nil
}
