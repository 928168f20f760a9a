package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <series-dir>",
	Short: "Show what a batch run would convert",
	Long: `List the chapter folders of a series directory with their volume label,
page count and the size of the first page. Images that are not counted as
pages are reported so they can be renamed before converting.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller := newController(false)
		reports, err := controller.Inspector.Inspect(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("inspect failed: %w", err))
		}

		if len(reports) == 0 {
			fmt.Println("No chapter folders found.")
			return
		}

		t := newTable("Folder", "Volume", "Pages", "Ignored", "First page")
		warnings := 0
		for _, r := range reports {
			ignored := fmt.Sprintf("%d", r.Ignored)
			if r.Ignored > 0 {
				ignored = styles.StatusWarning.Render(ignored)
				warnings++
			}

			page := "-"
			switch {
			case r.Err != nil:
				page = styles.StatusError.Render("unreadable")
				warnings++
			case r.FirstPage != "":
				page = fmt.Sprintf("%s %dx%d", r.FirstPage, r.Width, r.Height)
			}
			t.Row(filepath.Base(r.Folder), r.Volume, fmt.Sprintf("%d", r.Pages), ignored, page)
		}
		fmt.Println(t)

		if warnings > 0 {
			fmt.Println(styles.StatusWarning.Render(fmt.Sprintf("%d folder(s) need attention", warnings)))
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
