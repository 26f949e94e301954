package config

import (
	"fmt"

	"taskboard/internal/repository/sqlite"
)

// CreateRepository creates a local state repository using the configuration
// system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := config.EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	repo, err := sqlite.New(config.GetStoragePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local state: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test state: %w", err)
	}

	return repo, nil
}
