package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kerbaras/mangamobi/pkg/config"
	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/spf13/cobra"
)

func addMetadataFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("series", "s", "", "Take metadata from this configured series")
	cmd.Flags().StringP("title", "t", "", "Series title (default: the series directory name)")
	cmd.Flags().StringP("writer", "w", "", "Writer")
	cmd.Flags().StringP("penciller", "p", "", "Penciller, omitted when empty")
	cmd.Flags().StringP("genre", "g", "Manga", "Genre")
	cmd.Flags().String("publisher", "", "Publisher")
}

// metadataFromFlags builds the metadata template for a run. A configured
// series provides the base; explicitly set flags override it. seriesDir names
// the directory holding the chapter folders and is the title fallback.
func metadataFromFlags(cmd *cobra.Command, cfg *config.Config, seriesDir string) (data.Metadata, error) {
	var meta data.Metadata
	flags := cmd.Flags()

	if name, _ := flags.GetString("series"); name != "" {
		s, ok := cfg.FindSeries(name)
		if !ok {
			return meta, fmt.Errorf("series %q is not configured (see 'mangamobi list')", name)
		}
		meta = s.Metadata()
	}

	override := func(flag string, dst *string) {
		value, _ := flags.GetString(flag)
		if flags.Changed(flag) || *dst == "" {
			*dst = strings.TrimSpace(value)
		}
	}
	override("title", &meta.Series)
	override("writer", &meta.Writer)
	override("penciller", &meta.Penciller)
	override("genre", &meta.Genre)
	override("publisher", &meta.Publisher)

	if meta.Series == "" {
		meta.Series = filepath.Base(filepath.Clean(seriesDir))
	}

	var missing []string
	for _, field := range []struct {
		flag  string
		value string
	}{
		{"writer", meta.Writer},
		{"genre", meta.Genre},
		{"publisher", meta.Publisher},
	} {
		if field.value == "" {
			missing = append(missing, "--"+field.flag)
		}
	}
	if len(missing) > 0 {
		return meta, fmt.Errorf("missing metadata: %s (or use --series)", strings.Join(missing, ", "))
	}
	return meta, nil
}
