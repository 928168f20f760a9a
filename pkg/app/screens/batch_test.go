package screens

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/kerbaras/mangamobi/pkg/services"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memArchiver struct{ fs afero.Fs }

func (a memArchiver) Archive(ctx context.Context, archivePath, source string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	return 0, afero.WriteFile(a.fs, archivePath, []byte("PK"), 0o644)
}

type memConverter struct{ fs afero.Fs }

func (c memConverter) Convert(ctx context.Context, input string) (int, error) {
	return 0, afero.WriteFile(c.fs, c.OutputPath(input), []byte("BOOKMOBI"), 0o644)
}

func (c memConverter) OutputPath(input string) string {
	return strings.TrimSuffix(input, ".cbz") + ".mobi"
}

func newTestScreen(t *testing.T, chapters ...string) (*BatchScreen, context.CancelFunc) {
	t.Helper()
	fs := afero.NewMemMapFs()
	base := filepath.Join("mangas", "One Piece")
	folders := make([]string, 0, len(chapters))
	for _, chapter := range chapters {
		dir := filepath.Join(base, chapter)
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "01.jpg"), []byte("page"), 0o644))
		folders = append(folders, dir)
	}

	builder := services.NewBuilder(fs, memArchiver{fs}, memConverter{fs}, services.BuilderOptions{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	meta := data.Metadata{Series: "One Piece", Writer: "Eiichirō Oda", Genre: "Manga", Publisher: "Jump Comics"}
	return NewBatchScreen(ctx, cancel, services.NewBatch(builder), "One Piece", folders, meta), cancel
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestBatchScreenEmpty(t *testing.T) {
	screen, _ := newTestScreen(t)

	assert.True(t, isQuit(screen.Init()))
	assert.Empty(t, screen.Results())
	assert.NoError(t, screen.Err())
}

func TestBatchScreenRunsFoldersInOrder(t *testing.T) {
	screen, _ := newTestScreen(t, "1", "2")

	msg := screen.convertNext()()
	done, ok := msg.(folderDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, "0001", done.result.Volume)

	_, cmd := screen.Update(done)
	require.NotNil(t, cmd)
	done = cmd().(folderDoneMsg)
	assert.Equal(t, 1, done.index)
	assert.Equal(t, "0002", done.result.Volume)

	_, cmd = screen.Update(done)
	assert.True(t, isQuit(cmd))
	require.Len(t, screen.Results(), 2)
	assert.NoError(t, screen.Err())
	assert.Contains(t, screen.View(), "2/2")
}

func TestBatchScreenStopsOnError(t *testing.T) {
	screen, _ := newTestScreen(t, "1", "2")

	_, cmd := screen.Update(folderDoneMsg{index: 0, err: errors.New("archiver failed")})
	assert.True(t, isQuit(cmd))
	assert.Empty(t, screen.Results())
	assert.EqualError(t, screen.Err(), "archiver failed")
}

func TestBatchScreenCancel(t *testing.T) {
	screen, _ := newTestScreen(t, "1", "2")

	_, cmd := screen.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
	assert.Contains(t, screen.View(), "cancelling")

	// the folder that was running when cancel was requested still reports
	_, cmd = screen.Update(folderDoneMsg{index: 0, result: &services.Result{Volume: "0001"}})
	assert.True(t, isQuit(cmd))
	assert.Len(t, screen.Results(), 1)
	assert.ErrorIs(t, screen.Err(), context.Canceled)

	msg := screen.convertNext()()
	assert.Error(t, msg.(folderDoneMsg).err, "context is cancelled")
}

func TestBatchScreenTracksProgress(t *testing.T) {
	screen, _ := newTestScreen(t, "7")

	screen.Update(ProgressMsg{Folder: "7", Volume: "0007", Stage: services.StageConverting})
	assert.Contains(t, screen.View(), "Volume 0007")

	screen.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 80, screen.bar.Width)
}
