package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// AnalyzeCmd returns the analyze command
func AnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <idea>",
		Short: "Print the metadata derived from an idea without writing anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(nil)
			if err != nil {
				return err
			}
			defer app.Close()

			meta, err := app.Generation.Analyze(ideaArg(args))
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(meta, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode metadata: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
