// Package config loads the vault configuration from a YAML file, applying
// defaults for anything the file does not set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config описывает настройки хранилища и движка синхронизации.
type Config struct {
	VaultDB          string `yaml:"vault_db"`           // VaultDB путь к SQLite базе журнала изменений
	StateDB          string `yaml:"state_db"`           // StateDB путь к BoltDB базе состояний синхронизации
	PageSize         int    `yaml:"page_size"`          // PageSize размер батча для одного раунда синхронизации
	StrictHashes     bool   `yaml:"strict_hashes"`      // StrictHashes отсутствующий хеш считается конфликтом
	AckCompletesSync bool   `yaml:"ack_completes_sync"` // AckCompletesSync переключать глобальный флаг synced после подтверждения всеми пирами
}

// Default returns the configuration used when no file overrides it.
// Databases live under ~/.mekvault.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	dir := filepath.Join(home, ".mekvault")

	return Config{
		VaultDB:      filepath.Join(dir, "vault.db"),
		StateDB:      filepath.Join(dir, "state.db"),
		PageSize:     100,
		StrictHashes: true,
	}
}

// Load reads the configuration file at path, overlaying it onto defaults.
// A missing file is not an error: defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.PageSize <= 0 {
		return cfg, fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}

	return cfg, nil
}
