package cmd

import (
	"fmt"

	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/kerbaras/mangamobi/pkg/services"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external tools can be found",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configState := "defaults"
		if current.cfgFound {
			configState = current.cfgPath
		}
		fmt.Println(styles.MutedStyle.Render("Configuration: " + configState))

		statuses := services.CheckTools(current.cfg.Requirements())
		t := newTable("Tool", "Command", "Status", "Details")
		missing := 0
		for _, s := range statuses {
			status := styles.StatusCompleted.Render("ok")
			detail := s.Path
			if !s.Available {
				missing++
				status = styles.StatusError.Render("missing")
				detail = s.Detail
			}
			t.Row(s.Name, s.Command, status, detail)
		}
		fmt.Println(t)

		if missing > 0 {
			cobra.CheckErr(fmt.Errorf("%d required tool(s) not found", missing))
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
