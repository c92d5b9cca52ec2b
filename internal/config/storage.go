package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the persistence collaborator for the configuration blob.
// LoadData returns (nil, nil) when nothing has been saved yet.
type Storage interface {
	LoadData() ([]byte, error)
	SaveData(data []byte) error
}

// FileStorage persists the blob as a JSON file on disk.
type FileStorage struct {
	Path string
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/ipapad/config.json,
// falling back to ~/.config/ipapad/config.json.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ipapad", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "ipapad.json")
	}
	return filepath.Join(home, ".config", "ipapad", "config.json")
}

func (f FileStorage) LoadData() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, nil // first run
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", f.Path, err)
	}
	return data, nil
}

func (f FileStorage) SaveData(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", f.Path, err)
	}
	return nil
}
