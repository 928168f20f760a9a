package cmd

import (
	"fmt"

	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/kerbaras/mangamobi/pkg/integrations"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the kcc-c2e device profiles",
	Long: `List the device profiles accepted by converter.profile in the
configuration. The active profile is marked with *.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printDeviceList(current.cfg.Converter.Profile)
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func printDeviceList(active string) {
	fmt.Println("📱 Supported devices:")

	t := newTable("", "Profile", "Device", "Resolution", "Color")
	for _, p := range integrations.ListDeviceProfiles() {
		mark := ""
		if p.ID == active {
			mark = styles.StatusCompleted.Render("*")
		}
		color := "no"
		if !p.Grayscale {
			color = "yes"
		}
		t.Row(mark, p.ID, p.Name, fmt.Sprintf("%dx%d", p.Width, p.Height), color)
	}
	fmt.Println(t)
	fmt.Println(styles.HelpStyle.Render("Set converter.profile in the configuration to pick one."))
}
