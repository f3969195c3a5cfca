package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Marshal encodes cfg as TOML. Unset fields are omitted; a present table
// with no set field is written as a bare header so it stays present on reload.
func Marshal(cfg Config) ([]byte, error) {
	bytes, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return bytes, nil
}

// Save writes cfg to path, creating directories as needed.
func Save(path string, cfg Config) error {
	bytes, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return WriteFile(path, bytes)
}

// WriteFile writes raw config content to path, creating directories as needed.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
