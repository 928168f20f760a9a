package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/kerbaras/mangamobi/pkg/services"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle
			}
			return styles.CellStyle
		}).
		Headers(headers...)
}

func resultStatus(r *services.Result) string {
	switch {
	case r.ConverterExit != 0:
		return "failed"
	case !r.OutputExists:
		return "missing"
	default:
		return "ok"
	}
}

// renderResults formats the per-folder outcome of a run.
func renderResults(title string, results []*services.Result) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	if len(results) == 0 {
		b.WriteString(styles.MutedStyle.Render("Nothing converted."))
		return b.String()
	}

	t := newTable("Volume", "Pages", "Output", "Size", "Status")
	var total int64
	failed := 0
	for _, r := range results {
		status := resultStatus(r)
		size := "-"
		if r.OutputExists {
			size = humanize.Bytes(uint64(r.OutputSize))
			total += r.OutputSize
		}
		if status != "ok" {
			failed++
		}
		label := status
		if r.ConverterExit != 0 {
			label = fmt.Sprintf("exit %d", r.ConverterExit)
			if r.ArchiveKept {
				label += ", kept " + filepath.Base(r.ArchivePath)
			}
		}
		t.Row(r.Volume, fmt.Sprintf("%d", r.PageCount), r.OutputPath, size, styles.StatusStyle(status).Render(label))
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	line := fmt.Sprintf("%d converted, %s written", len(results)-failed, humanize.Bytes(uint64(total)))
	if failed > 0 {
		line += styles.StatusWarning.Render(fmt.Sprintf(", %d without output", failed))
	}
	b.WriteString(styles.CardStyle.Render(line))
	return b.String()
}

func printResults(title string, results []*services.Result) {
	fmt.Println(renderResults(title, results))
}
