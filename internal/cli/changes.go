package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apetrenko/mekvault/internal/models"
)

func newChangesCommand(app *App) *cobra.Command {
	var since int64

	cmd := &cobra.Command{
		Use:   "changes",
		Short: "List change log entries newer than a version",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.logStore.GetChangesSince(cmd.Context(), since, app.cfg.PageSize)
			if err != nil {
				return err
			}
			printEntries(app, entries)
			return nil
		},
	}

	cmd.Flags().Int64Var(&since, "since", 0, "list entries with version greater than this")

	return cmd
}

func newPendingCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List local changes not yet synced to peers",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.engine.GetUnsyncedChanges(cmd.Context())
			if err != nil {
				return err
			}
			printEntries(app, entries)
			return nil
		},
	}
}

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current change log version",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.engine.GetCurrentVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%d\n", v)
			return nil
		},
	}
}

func printEntries(app *App, entries []*models.ChangeLogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(app.Out, "no entries")
		return
	}
	for _, e := range entries {
		source := "local"
		if e.SourceID != nil {
			source = *e.SourceID
		}
		fmt.Fprintf(app.Out, "v%-6d %-6s %-5s %s  synced=%t source=%s\n",
			e.Version, e.ChangeType, e.ContentType, e.ItemID, e.Synced, source)
	}
}
