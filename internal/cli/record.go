package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apetrenko/mekvault/internal/models"
)

func newRecordCommand(app *App) *cobra.Command {
	var (
		itemID      string
		changeType  string
		contentType string
		dataFile    string
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a local change in the vault log",
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			if dataFile != "" {
				var err error
				data, err = os.ReadFile(dataFile)
				if err != nil {
					return fmt.Errorf("failed to read data file: %w", err)
				}
			}

			entry, err := app.engine.RecordChange(cmd.Context(),
				models.ChangeType(changeType),
				models.ContentType(contentType),
				itemID,
				data,
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "recorded %s v%d (%s %s)\n", entry.ItemID, entry.Version, entry.ChangeType, entry.ContentType)
			return nil
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "item id (uuid)")
	cmd.Flags().StringVar(&changeType, "type", string(models.ChangeUpdate), "change type: create, update or delete")
	cmd.Flags().StringVar(&contentType, "content", string(models.ContentUnit), "content type: unit, pilot or force")
	cmd.Flags().StringVar(&dataFile, "data", "", "path to a JSON payload file")
	cmd.MarkFlagRequired("item")

	return cmd
}
