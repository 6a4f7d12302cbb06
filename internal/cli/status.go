package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show node id, log version and per-peer sync state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			version, err := app.engine.GetCurrentVersion(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "node:    %s\n", app.nodeID)
			fmt.Fprintf(app.Out, "version: %d\n", version)

			states := app.engine.GetAllSyncStates()
			if len(states) == 0 {
				fmt.Fprintln(app.Out, "peers:   none")
				return nil
			}

			fmt.Fprintln(app.Out, "peers:")
			for _, st := range states {
				fmt.Fprintf(app.Out, "  %s  status=%s cursor=%d last=%s\n",
					st.PeerID, st.Status, st.LastVersion, st.LastSyncAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
