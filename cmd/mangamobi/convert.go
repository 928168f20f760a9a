package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kerbaras/mangamobi/pkg/services"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <folder>",
	Short: "Convert a single chapter folder",
	Long: `Write ComicInfo.xml into the folder, pack it into <volume>.cbz next to it,
run kcc-c2e on the archive and remove the archive again.

The volume label is the folder name, zero padded to 4 characters
(6 for sub-chapters such as "12.5").

Examples:
  mangamobi convert "One Piece/1045" --writer "Eiichirō Oda" --publisher "Jump Comics"
  mangamobi convert "One Punch-Man/229" --series "One Punch Man"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		folder := filepath.Clean(args[0])
		meta, err := metadataFromFlags(cmd, current.cfg, filepath.Dir(folder))
		cobra.CheckErr(err)

		controller := newController(false)
		result, err := controller.Builder.ConvertFolder(cmd.Context(), folder, meta)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("conversion failed: %w", err))
		}
		printResults(meta.Series, []*services.Result{result})
	},
}

func init() {
	addMetadataFlags(convertCmd)
	rootCmd.AddCommand(convertCmd)
}
