package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apetrenko/mekvault/pkg/api"
)

func newBatchCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Exchange change batches with a peer via files",
		Long:  "Batches are JSON files carried between nodes out of band: by USB stick, shared folder or any other channel. Export writes what the peer has not seen, apply reconciles an incoming file.",
	}

	cmd.AddCommand(newBatchExportCommand(app))
	cmd.AddCommand(newBatchApplyCommand(app))

	return cmd
}

func newBatchExportCommand(app *App) *cobra.Command {
	var (
		peerID string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write changes the peer has not acknowledged to a batch file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			entries, err := app.engine.GetChangesForPeer(ctx, peerID)
			if err != nil {
				return err
			}

			var since int64
			if st := app.engine.GetSyncState(peerID); st != nil {
				since = st.LastVersion
			}

			batch := api.NewBatch(app.nodeID, since, entries)

			data, err := json.MarshalIndent(batch, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal batch: %w", err)
			}

			if err := os.WriteFile(out, data, 0600); err != nil {
				return fmt.Errorf("failed to write batch file: %w", err)
			}

			fmt.Fprintf(app.Out, "exported %d entries for %s to %s\n", len(batch.Entries), peerID, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&peerID, "peer", "", "peer node id")
	cmd.Flags().StringVar(&out, "out", "batch.json", "output file")
	cmd.MarkFlagRequired("peer")

	return cmd
}

func newBatchApplyCommand(app *App) *cobra.Command {
	var (
		in  string
		ack bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile a batch file received from a peer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("failed to read batch file: %w", err)
			}

			var batch api.ChangeBatch
			if err := json.Unmarshal(data, &batch); err != nil {
				return fmt.Errorf("failed to parse batch file: %w", err)
			}
			if batch.PeerID == "" {
				return fmt.Errorf("batch file has no peer id")
			}

			result, err := app.engine.ApplyRemoteChanges(ctx, batch.PeerID, batch.Models())
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "applied %d, skipped %d, conflicts %d (from %s)\n",
				len(result.Applied), len(result.Skipped), len(result.Conflicts), batch.PeerID)
			for _, c := range result.Conflicts {
				fmt.Fprintf(app.Out, "  conflict %s on item %s (%q)\n", c.ID, c.ItemID, c.ItemName)
			}

			// Подтверждаем отправителю применённые записи.
			if ack && len(result.Applied) > 0 {
				applied := make(map[string]bool, len(result.Applied))
				for _, itemID := range result.Applied {
					applied[itemID] = true
				}

				var entryIDs []string
				for _, entry := range batch.Entries {
					if applied[entry.ItemID] {
						entryIDs = append(entryIDs, entry.ID)
					}
				}

				if err := app.engine.MarkSyncedToPeer(ctx, batch.PeerID, entryIDs); err != nil {
					return fmt.Errorf("failed to ack applied entries: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "batch.json", "input file")
	cmd.Flags().BoolVar(&ack, "ack", false, "mark applied entries as acked from this peer")

	return cmd
}
