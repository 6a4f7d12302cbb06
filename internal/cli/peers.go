package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPeersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peers",
		Short: "Manage known sync peers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known peers and their cursors",
		RunE: func(cmd *cobra.Command, args []string) error {
			states := app.engine.GetAllSyncStates()
			if len(states) == 0 {
				fmt.Fprintln(app.Out, "no peers")
				return nil
			}
			for _, st := range states {
				fmt.Fprintf(app.Out, "%s  status=%s cursor=%d\n", st.PeerID, st.Status, st.LastVersion)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset <peer-id>",
		Short: "Forget a peer so the next exchange starts from version 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.engine.ResetSyncState(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "reset %s\n", args[0])
			return nil
		},
	})

	return cmd
}
