package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConflictsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Inspect and resolve sync conflicts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pending conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts, err := app.engine.GetPendingConflicts(cmd.Context())
			if err != nil {
				return err
			}
			if len(conflicts) == 0 {
				fmt.Fprintln(app.Out, "no pending conflicts")
				return nil
			}
			for _, c := range conflicts {
				fmt.Fprintf(app.Out, "%s  item=%s (%q) local v%d vs %s v%d\n",
					c.ID, c.ItemID, c.ItemName, c.LocalVersion, c.RemotePeerID, c.RemoteVersion)
			}
			return nil
		},
	})

	resolve := &cobra.Command{
		Use:   "resolve <conflict-id> <local|remote|fork>",
		Short: "Resolve a pending conflict",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			switch args[1] {
			case "local":
				if err := app.engine.ResolveKeepLocal(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "kept local version for %s\n", id)
			case "remote":
				if err := app.engine.ResolveAcceptRemote(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "accepted remote version for %s\n", id)
			case "fork":
				forkedID, err := app.engine.ResolveFork(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "forked remote version into new item %s\n", forkedID)
			default:
				return fmt.Errorf("unknown resolution %q: want local, remote or fork", args[1])
			}
			return nil
		},
	}
	cmd.AddCommand(resolve)

	return cmd
}
