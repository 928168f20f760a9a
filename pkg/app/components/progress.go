package components

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/kerbaras/mangamobi/pkg/services"
)

// stages a folder passes through before it is complete
var pipelineStages = []services.Stage{
	services.StageMetadata,
	services.StageArchiving,
	services.StageConverting,
	services.StageCleanup,
}

type ProgressTracker struct {
	active   []services.Progress // insertion order
	finished []services.Progress
	width    int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{
		width: width,
	}
}

func (p *ProgressTracker) SetWidth(width int) {
	p.width = width
}

func (p *ProgressTracker) Update(progress services.Progress) {
	i := p.indexOf(progress.Folder)
	switch progress.Stage {
	case services.StageComplete, services.StageError:
		if i >= 0 {
			p.active = append(p.active[:i], p.active[i+1:]...)
		}
		p.finished = append(p.finished, progress)
	default:
		if i >= 0 {
			p.active[i] = progress
		} else {
			p.active = append(p.active, progress)
		}
	}
}

func (p *ProgressTracker) indexOf(folder string) int {
	for i, progress := range p.active {
		if progress.Folder == folder {
			return i
		}
	}
	return -1
}

func (p *ProgressTracker) Clear() {
	p.active = nil
	p.finished = nil
}

func (p *ProgressTracker) HasActive() bool {
	return len(p.active) > 0
}

// Finished returns the folders that completed or failed, in arrival order.
func (p *ProgressTracker) Finished() []services.Progress {
	return p.finished
}

func (p *ProgressTracker) View() string {
	var b strings.Builder

	for _, progress := range p.finished {
		b.WriteString(finishedLine(progress))
		b.WriteString("\n")
	}

	if len(p.active) == 0 {
		return b.String()
	}
	if len(p.finished) > 0 {
		b.WriteString("\n")
	}

	for _, progress := range p.active {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("Volume %s", progress.Volume)))
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  %s", progress.Folder)))
		b.WriteString("\n")

		step := stageIndex(progress.Stage)
		bar := renderProgressBar(step, len(pipelineStages), p.width-4)
		b.WriteString(bar)
		b.WriteString("\n")

		statusText := fmt.Sprintf("%s (%d/%d)", progress.Stage, step, len(pipelineStages))
		b.WriteString(styles.StatusStyle(string(progress.Stage)).Render(statusText))
		b.WriteString("\n")
	}

	return b.String()
}

func finishedLine(progress services.Progress) string {
	if progress.Stage == services.StageError {
		return styles.StatusError.Render(fmt.Sprintf("✗ %s", progress.Volume)) + " " +
			styles.MutedStyle.Render(fmt.Sprintf("Error: %s", progress.Err))
	}

	result := progress.Result
	if result == nil {
		return styles.StatusCompleted.Render(fmt.Sprintf("✓ %s", progress.Volume))
	}
	if result.ConverterExit != 0 {
		return styles.StatusWarning.Render(fmt.Sprintf("! %s", progress.Volume)) + " " +
			styles.MutedStyle.Render(fmt.Sprintf("converter exited with %d", result.ConverterExit))
	}

	detail := fmt.Sprintf("%d pages", result.PageCount)
	if result.OutputExists {
		detail += fmt.Sprintf(", %s", humanize.Bytes(uint64(result.OutputSize)))
	}
	return styles.StatusCompleted.Render(fmt.Sprintf("✓ %s", progress.Volume)) + " " +
		styles.MutedStyle.Render(detail)
}

// stageIndex counts the stages a folder has entered, 1 based.
func stageIndex(stage services.Stage) int {
	for i, s := range pipelineStages {
		if s == stage {
			return i + 1
		}
	}
	return 0
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
	return bar
}
