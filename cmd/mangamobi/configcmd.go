package cmd

import (
	"fmt"

	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/kerbaras/mangamobi/pkg/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:         "init [path]",
	Short:       "Write a sample configuration file",
	Long:        "Write the annotated sample configuration to path (default: the user config dir). Existing files are never overwritten.",
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipConfig: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			var err error
			path, err = config.DefaultConfigPath()
			cobra.CheckErr(err)
		}

		cobra.CheckErr(config.CreateSample(path))
		fmt.Println(styles.StatusCompleted.Render("✓ Wrote " + path))
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		source := current.cfgPath + " (not found, using defaults)"
		if current.cfgFound {
			source = current.cfgPath
		}
		fmt.Println(styles.MutedStyle.Render("# " + source))

		out, err := current.cfg.Marshal()
		cobra.CheckErr(err)
		fmt.Print(string(out))
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
