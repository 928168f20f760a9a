package cmd

import (
	"fmt"

	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/spf13/cobra"
)

var relocateCmd = &cobra.Command{
	Use:   "relocate <dir>",
	Short: "Flatten an unpacked e-book back into a page folder",
	Long: `Copy the images of <dir>/OEBPS/img into <dir>, then delete every
subdirectory of <dir> and its mimetype file.

This deletes data without asking. With --all every subdirectory of <dir>
is relocated.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")
		controller := newController(false)

		var (
			copied int
			err    error
		)
		if all {
			copied, err = controller.Relocator.RelocateAll(args[0])
		} else {
			copied, err = controller.Relocator.Relocate(args[0])
		}
		if err != nil {
			cobra.CheckErr(fmt.Errorf("relocate failed after %d file(s): %w", copied, err))
		}
		fmt.Println(styles.StatusCompleted.Render(fmt.Sprintf("✓ Relocated %d file(s)", copied)))
	},
}

func init() {
	relocateCmd.Flags().BoolP("all", "a", false, "Relocate every subdirectory of <dir>")
	rootCmd.AddCommand(relocateCmd)
}
