package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, defaults.VaultDB, cfg.VaultDB)
	assert.Equal(t, defaults.StateDB, cfg.StateDB)
	assert.Equal(t, 100, cfg.PageSize)
	assert.True(t, cfg.StrictHashes)
	assert.False(t, cfg.AckCompletesSync)
}

func TestLoad_OverlaysFileOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
vault_db: /tmp/custom-vault.db
page_size: 25
strict_hashes: false
ack_completes_sync: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom-vault.db", cfg.VaultDB)
	assert.Equal(t, 25, cfg.PageSize)
	assert.False(t, cfg.StrictHashes)
	assert.True(t, cfg.AckCompletesSync)

	// Незаданные поля остаются по умолчанию
	assert.Equal(t, Default().StateDB, cfg.StateDB)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vault_db: [broken"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositivePageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: -1"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
