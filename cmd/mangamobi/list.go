package cmd

import (
	"fmt"

	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/kerbaras/mangamobi/pkg/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured series",
	Long:  "Display the series of the configuration file with their metadata and chapter folders",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := current.cfg
		if len(cfg.Series) == 0 {
			fmt.Println("📚 No series configured. Use 'mangamobi config init' to write a sample configuration.")
			return
		}

		fs := afero.NewOsFs()
		t := newTable("Name", "Directory", "Writer", "Penciller", "Publisher", "Only", "Folders")
		for _, s := range cfg.Series {
			folders := styles.StatusError.Render("missing")
			if dirs, err := utils.SubDirectories(fs, cfg.SeriesPath(s)); err == nil {
				folders = fmt.Sprintf("%d", len(dirs))
			}
			t.Row(s.Name, cfg.SeriesPath(s), s.Writer, s.Penciller, s.Publisher, s.Only, folders)
		}

		fmt.Printf("\n📚 Library %s (%d series)\n\n", cfg.LibraryDir, len(cfg.Series))
		fmt.Println(t)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
