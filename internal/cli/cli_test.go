package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newVaultConfig writes a config file pointing at databases under dir and
// returns its path.
func newVaultConfig(t *testing.T, dir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0700))

	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := fmt.Sprintf("vault_db: %s\nstate_db: %s\npage_size: 100\nstrict_hashes: true\n",
		filepath.Join(dir, "vault.db"),
		filepath.Join(dir, "state.db"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0600))

	return cfgPath
}

// runCLI executes one command against the vault behind cfgPath and returns
// what it printed.
func runCLI(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	app := &App{
		Out:    &buf,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := NewRootCommand(app)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	require.NoError(t, root.Execute())

	return buf.String()
}

// nodeID reads the node id from the status output.
func nodeID(t *testing.T, cfgPath string) string {
	t.Helper()

	out := runCLI(t, cfgPath, "status")
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "node:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "node:"))
		}
	}
	t.Fatalf("no node id in status output: %q", out)
	return ""
}

func writePayload(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(`{"name":%q,"tonnage":75}`, name)), 0600))

	return path
}

func TestCLI_RecordAndInspect(t *testing.T) {
	dir := t.TempDir()
	cfgPath := newVaultConfig(t, dir)
	itemID := uuid.New().String()
	payload := writePayload(t, dir, "Marauder MAD-3R")

	out := runCLI(t, cfgPath, "record", "--item", itemID, "--type", "create", "--content", "unit", "--data", payload)
	assert.Contains(t, out, "recorded "+itemID+" v1")

	out = runCLI(t, cfgPath, "version")
	assert.Equal(t, "1\n", out)

	out = runCLI(t, cfgPath, "pending")
	assert.Contains(t, out, itemID)
	assert.Contains(t, out, "synced=false")

	out = runCLI(t, cfgPath, "changes")
	assert.Contains(t, out, itemID)
}

func TestCLI_BatchRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfgA := newVaultConfig(t, filepath.Join(dir, "a"))
	cfgB := newVaultConfig(t, filepath.Join(dir, "b"))

	idB := nodeID(t, cfgB)
	itemID := uuid.New().String()
	payload := writePayload(t, dir, "Atlas AS7-D")

	runCLI(t, cfgA, "record", "--item", itemID, "--type", "create", "--content", "unit", "--data", payload)

	batchFile := filepath.Join(dir, "batch.json")
	out := runCLI(t, cfgA, "batch", "export", "--peer", idB, "--out", batchFile)
	assert.Contains(t, out, "exported 1 entries")

	out = runCLI(t, cfgB, "batch", "apply", "--in", batchFile)
	assert.Contains(t, out, "applied 1, skipped 0, conflicts 0")

	out = runCLI(t, cfgB, "version")
	assert.Equal(t, "1\n", out)

	out = runCLI(t, cfgB, "changes")
	assert.Contains(t, out, itemID)
	assert.Contains(t, out, "synced=true")

	// Повторная доставка того же батча идемпотентна
	out = runCLI(t, cfgB, "batch", "apply", "--in", batchFile)
	assert.Contains(t, out, "applied 0, skipped 1, conflicts 0")
}

func TestCLI_ConflictResolveFork(t *testing.T) {
	dir := t.TempDir()
	cfgA := newVaultConfig(t, filepath.Join(dir, "a"))
	cfgB := newVaultConfig(t, filepath.Join(dir, "b"))

	idB := nodeID(t, cfgB)
	itemID := uuid.New().String()

	// Обе стороны правят один элемент; у A версия уходит вперёд
	payloadA := writePayload(t, filepath.Join(dir, "a"), "Warhammer WHM-6R")
	runCLI(t, cfgA, "record", "--item", itemID, "--type", "create", "--content", "unit", "--data", payloadA)
	runCLI(t, cfgA, "record", "--item", itemID, "--type", "update", "--content", "unit", "--data", payloadA)

	payloadB := writePayload(t, filepath.Join(dir, "b"), "Warhammer WHM-6D")
	runCLI(t, cfgB, "record", "--item", itemID, "--type", "create", "--content", "unit", "--data", payloadB)

	batchFile := filepath.Join(dir, "batch.json")
	runCLI(t, cfgA, "batch", "export", "--peer", idB, "--out", batchFile)

	out := runCLI(t, cfgB, "batch", "apply", "--in", batchFile)
	assert.Contains(t, out, "conflicts 1")

	out = runCLI(t, cfgB, "conflicts", "list")
	require.Contains(t, out, itemID)
	conflictID := strings.Fields(out)[0]

	out = runCLI(t, cfgB, "conflicts", "resolve", conflictID, "fork")
	assert.Contains(t, out, "forked remote version into new item")

	out = runCLI(t, cfgB, "conflicts", "list")
	assert.Contains(t, out, "no pending conflicts")
}

func TestCLI_PeersReset(t *testing.T) {
	dir := t.TempDir()
	cfgPath := newVaultConfig(t, dir)

	out := runCLI(t, cfgPath, "peers", "list")
	assert.Contains(t, out, "no peers")

	peer := uuid.New().String()
	itemID := uuid.New().String()
	runCLI(t, cfgPath, "record", "--item", itemID, "--type", "create", "--content", "pilot", "--data", "")

	batchFile := filepath.Join(dir, "batch.json")
	runCLI(t, cfgPath, "batch", "export", "--peer", peer, "--out", batchFile)

	out = runCLI(t, cfgPath, "peers", "reset", peer)
	assert.Contains(t, out, "reset "+peer)
}
