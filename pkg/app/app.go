package app

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangamobi/pkg/app/screens"
	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/kerbaras/mangamobi/pkg/services"
	"github.com/m-mizutani/goerr/v2"
)

type App struct {
	batch  *services.Batch
	output io.Writer
}

// NewApp renders to output; nil means the terminal.
func NewApp(batch *services.Batch, output io.Writer) *App {
	return &App{batch: batch, output: output}
}

// RunBatch converts folders in order inside the terminal UI and returns the
// converted folders together with the error that stopped the run.
func (a *App) RunBatch(ctx context.Context, title string, folders []string, meta data.Metadata) ([]*services.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := screens.NewBatchScreen(ctx, cancel, a.batch, title, folders, meta)
	options := []tea.ProgramOption{}
	if a.output != nil {
		options = append(options, tea.WithOutput(a.output), tea.WithInput(nil))
	}
	p := tea.NewProgram(model, options...)

	a.batch.SetObserver(func(progress services.Progress) {
		p.Send(screens.ProgressMsg(progress))
	})
	defer a.batch.SetObserver(nil)

	final, err := p.Run()
	if err != nil {
		return model.Results(), goerr.Wrap(err, "terminal UI failed")
	}
	screen := final.(*screens.BatchScreen)
	return screen.Results(), screen.Err()
}
