package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangamobi/pkg/app/components"
	"github.com/kerbaras/mangamobi/pkg/app/styles"
	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/kerbaras/mangamobi/pkg/services"
)

const defaultWidth = 60

// ProgressMsg carries a stage update from the batch observer.
type ProgressMsg services.Progress

type folderDoneMsg struct {
	index  int
	result *services.Result
	err    error
}

// BatchScreen converts a list of folders one after another while showing
// the stage of the running folder and the outcome of the finished ones.
type BatchScreen struct {
	ctx     context.Context
	cancel  context.CancelFunc
	batch   *services.Batch
	title   string
	folders []string
	meta    data.Metadata

	next       int
	results    []*services.Result
	err        error
	done       bool
	cancelling bool

	tracker *components.ProgressTracker
	spinner spinner.Model
	bar     progress.Model
	width   int
}

func NewBatchScreen(ctx context.Context, cancel context.CancelFunc, batch *services.Batch, title string, folders []string, meta data.Metadata) *BatchScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.StatusRunning

	bar := progress.New(progress.WithGradient(string(styles.Secondary), string(styles.Primary)))
	bar.Width = defaultWidth

	return &BatchScreen{
		ctx:     ctx,
		cancel:  cancel,
		batch:   batch,
		title:   title,
		folders: folders,
		meta:    meta,
		tracker: components.NewProgressTracker(defaultWidth),
		spinner: s,
		bar:     bar,
		width:   defaultWidth,
	}
}

func (s *BatchScreen) Init() tea.Cmd {
	if len(s.folders) == 0 {
		s.done = true
		return tea.Quit
	}
	return tea.Batch(s.spinner.Tick, s.convertNext())
}

func (s *BatchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.bar.Width = min(msg.Width-4, 80)
		s.tracker.SetWidth(s.bar.Width + 4)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if s.done {
				return s, tea.Quit
			}
			// the running folder returns once its process is killed
			s.cancelling = true
			s.cancel()
		}

	case ProgressMsg:
		s.tracker.Update(services.Progress(msg))

	case folderDoneMsg:
		if msg.err != nil {
			s.err = msg.err
			s.done = true
			return s, tea.Quit
		}
		s.results = append(s.results, msg.result)
		s.next = msg.index + 1
		if s.next >= len(s.folders) || s.cancelling {
			if s.cancelling {
				s.err = context.Canceled
			}
			s.done = true
			return s, tea.Quit
		}
		return s, s.convertNext()

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *BatchScreen) convertNext() tea.Cmd {
	index := s.next
	folder := s.folders[index]
	total := len(s.folders)
	return func() tea.Msg {
		result, err := s.batch.Convert(s.ctx, folder, s.meta, index, total)
		return folderDoneMsg{index: index, result: result, err: err}
	}
}

func (s *BatchScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(s.title))
	b.WriteString("\n")

	finished := len(s.results)
	if s.err != nil {
		finished++
	}
	percent := 0.0
	if len(s.folders) > 0 {
		percent = float64(finished) / float64(len(s.folders))
	}
	b.WriteString(s.bar.ViewAs(percent))
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  %d/%d", finished, len(s.folders))))
	b.WriteString("\n\n")

	b.WriteString(s.tracker.View())

	switch {
	case s.done:
	case s.cancelling:
		b.WriteString(s.spinner.View())
		b.WriteString(styles.StatusWarning.Render(" cancelling..."))
		b.WriteString("\n")
	case !s.tracker.HasActive():
		b.WriteString(s.spinner.View())
		b.WriteString(styles.MutedStyle.Render(" starting..."))
		b.WriteString("\n")
	}

	if !s.done {
		b.WriteString(styles.HelpStyle.Render("q/esc: cancel after the running process stops"))
		b.WriteString("\n")
	}
	return b.String()
}

// Results returns the folders converted so far.
func (s *BatchScreen) Results() []*services.Result {
	return s.results
}

// Err returns the error that stopped the batch, if any.
func (s *BatchScreen) Err() error {
	return s.err
}
