package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kerbaras/mangamobi/pkg/app"
	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/kerbaras/mangamobi/pkg/services"
	"github.com/kerbaras/mangamobi/pkg/utils"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <series-dir>",
	Short: "Convert every chapter folder of a series directory",
	Long: `Convert the immediate subdirectories of a series directory one after
another, in sorted order. The first failure stops the run.

Examples:
  mangamobi batch "Hunter x Hunter" --writer "Yoshihiro Togashi" --publisher "Jump Comics"
  mangamobi batch "Sakamoto Days" --series "Sakamoto Days" --only 114`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		base := args[0]
		meta, err := metadataFromFlags(cmd, current.cfg, base)
		cobra.CheckErr(err)

		only, _ := cmd.Flags().GetString("only")
		useTUI, _ := cmd.Flags().GetBool("tui")

		results, err := runBatch(cmd.Context(), base, meta, only, useTUI)
		printResults(meta.Series, results)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("batch failed: %w", err))
		}
	},
}

func init() {
	addMetadataFlags(batchCmd)
	batchCmd.Flags().StringP("only", "o", "", "Convert only the first folder whose path ends with this suffix")
	batchCmd.Flags().Bool("tui", false, "Show progress in a terminal UI")
	rootCmd.AddCommand(batchCmd)
}

// runBatch converts the folders of base selected by only (all when empty),
// in the terminal UI when asked and stdout is a terminal.
func runBatch(ctx context.Context, base string, meta data.Metadata, only string, useTUI bool) ([]*services.Result, error) {
	useTUI = useTUI && utils.IsTerminal(os.Stdout)
	controller := newController(useTUI)

	folders, err := controller.Batch.Plan(base, only)
	if err != nil {
		return nil, err
	}
	current.logger.Info("starting batch", "series", meta.Series, "base", base, "only", only, "folders", len(folders))

	if useTUI {
		return app.NewApp(controller.Batch, nil).RunBatch(ctx, meta.Series, folders, meta)
	}
	return controller.Batch.ConvertFolders(ctx, folders, meta)
}
