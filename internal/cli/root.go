// Package cli implements the mekvault command tree. Commands share one App
// that opens the stores and builds the sync engine before a command runs and
// closes everything after.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apetrenko/mekvault/internal/config"
	"github.com/apetrenko/mekvault/internal/vault/hash"
	"github.com/apetrenko/mekvault/internal/vault/storage/boltdb"
	"github.com/apetrenko/mekvault/internal/vault/storage/sqlite"
	vaultsync "github.com/apetrenko/mekvault/internal/vault/sync"
)

// App holds the shared state behind every command.
type App struct {
	Out        io.Writer
	Logger     *slog.Logger
	ConfigPath string

	cfg        config.Config
	logStore   *sqlite.Storage
	stateStore *boltdb.Storage
	engine     *vaultsync.Engine
	nodeID     string
}

// NewRootCommand creates the root command for the mekvault CLI.
func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mekvault",
		Short:         "Personal content vault with peer-to-peer sync",
		Long:          "mekvault keeps unit designs, pilots and forces in a local vault and reconciles change logs with peers without a central server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", defaultConfigPath(), "path to config file")

	cmd.AddCommand(newRecordCommand(app))
	cmd.AddCommand(newChangesCommand(app))
	cmd.AddCommand(newPendingCommand(app))
	cmd.AddCommand(newVersionCommand(app))
	cmd.AddCommand(newStatusCommand(app))
	cmd.AddCommand(newPeersCommand(app))
	cmd.AddCommand(newConflictsCommand(app))
	cmd.AddCommand(newBatchCommand(app))

	return cmd
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".mekvault", "config.yaml")
}

// setup loads the config, opens both stores and builds the engine.
func (a *App) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	for _, dir := range []string{filepath.Dir(cfg.VaultDB), filepath.Dir(cfg.StateDB)} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	logStore, err := sqlite.New(ctx, cfg.VaultDB)
	if err != nil {
		return fmt.Errorf("failed to open change log store: %w", err)
	}
	a.logStore = logStore

	stateStore, err := boltdb.New(ctx, cfg.StateDB)
	if err != nil {
		logStore.Close()
		return fmt.Errorf("failed to open sync state store: %w", err)
	}
	a.stateStore = stateStore

	nodeID, err := stateStore.NodeID(ctx)
	if err != nil {
		a.close()
		return fmt.Errorf("failed to get node id: %w", err)
	}
	a.nodeID = nodeID

	engine := vaultsync.New(logStore, stateStore, vaultsync.Options{
		PageSize:         cfg.PageSize,
		StrictHashes:     cfg.StrictHashes,
		AckCompletesSync: cfg.AckCompletesSync,
	}, a.Logger)
	engine.SetContentHashFn(hash.Content)

	if err := engine.Restore(ctx); err != nil {
		a.close()
		return fmt.Errorf("failed to restore sync states: %w", err)
	}
	a.engine = engine

	return nil
}

// close releases both stores.
func (a *App) close() error {
	if a.stateStore != nil {
		if err := a.stateStore.Close(); err != nil {
			a.Logger.Error("failed to close state store", "error", err)
		}
		a.stateStore = nil
	}

	if a.logStore != nil {
		if err := a.logStore.Close(); err != nil {
			return fmt.Errorf("failed to close change log store: %w", err)
		}
		a.logStore = nil
	}

	return nil
}
