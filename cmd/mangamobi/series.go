package cmd

import (
	"fmt"

	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/spf13/cobra"
)

var seriesCmd = &cobra.Command{
	Use:   "series [name...]",
	Short: "Convert configured series by name",
	Long: `Convert series described in the configuration file. Each series is
looked up by name (case insensitive) and its directory is resolved against
library_dir. A series with "only" set converts just the matching folder unless
--every is given; --only overrides it for all named series.

Examples:
  mangamobi series "One Piece"
  mangamobi series "Sakamoto Days" --only 115
  mangamobi series --all`,
	Run: func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")
		every, _ := cmd.Flags().GetBool("every")
		only, _ := cmd.Flags().GetString("only")
		useTUI, _ := cmd.Flags().GetBool("tui")

		selected, err := selectSeries(args, all)
		cobra.CheckErr(err)

		for _, s := range selected {
			suffix := s.Only
			if every {
				suffix = ""
			}
			if cmd.Flags().Changed("only") {
				suffix = only
			}

			results, err := runBatch(cmd.Context(), current.cfg.SeriesPath(s), s.Metadata(), suffix, useTUI)
			printResults(s.Name, results)
			if err != nil {
				cobra.CheckErr(fmt.Errorf("series %q failed: %w", s.Name, err))
			}
		}
	},
}

func init() {
	seriesCmd.Flags().Bool("all", false, "Convert every configured series")
	seriesCmd.Flags().Bool("every", false, "Ignore the configured only suffix and convert every folder")
	seriesCmd.Flags().StringP("only", "o", "", "Convert only the first folder whose path ends with this suffix")
	seriesCmd.Flags().Bool("tui", false, "Show progress in a terminal UI")
	rootCmd.AddCommand(seriesCmd)
}

func selectSeries(names []string, all bool) ([]data.Series, error) {
	if all {
		if len(current.cfg.Series) == 0 {
			return nil, fmt.Errorf("no series configured (see 'mangamobi config init')")
		}
		return current.cfg.Series, nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("name at least one series or pass --all")
	}

	selected := make([]data.Series, 0, len(names))
	for _, name := range names {
		s, ok := current.cfg.FindSeries(name)
		if !ok {
			return nil, fmt.Errorf("series %q is not configured (see 'mangamobi list')", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
