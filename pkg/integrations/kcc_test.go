package integrations

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKCCConverterDefaultCommand(t *testing.T) {
	runner := &fakeRunner{}
	converter := NewKCCConverter(runner, DefaultConverterOptions(), discardLogger())

	code, err := converter.Convert(context.Background(), "/mangas/One Piece/1084.cbz")
	require.NoError(t, err)
	assert.Zero(t, code)

	require.Len(t, runner.calls, 1)
	assert.Equal(t,
		"flatpak run --command=kcc-c2e io.github.ciromattia.kcc --profile=KPW --manga-style --format=MOBI /mangas/One Piece/1084.cbz",
		runner.calls[0].String())
}

func TestKCCConverterArgs(t *testing.T) {
	converter := NewKCCConverter(&fakeRunner{}, ConverterOptions{
		Command: []string{"kcc-c2e"},
		Profile: "KS",
		Format:  FormatEPUB,
	}, discardLogger())

	assert.Equal(t, []string{"--profile=KS", "--format=EPUB", "in.cbz"}, converter.Args("in.cbz"))
}

func TestKCCConverterNonZeroExit(t *testing.T) {
	runner := &fakeRunner{code: 2}
	converter := NewKCCConverter(runner, DefaultConverterOptions(), discardLogger())

	code, err := converter.Convert(context.Background(), "in.cbz")
	require.NoError(t, err, "exit codes are reported, not raised")
	assert.Equal(t, 2, code)
}

func TestKCCConverterStartFailure(t *testing.T) {
	runner := &fakeRunner{code: -1, err: errors.New("exec: \"flatpak\": executable file not found in $PATH")}
	converter := NewKCCConverter(runner, DefaultConverterOptions(), discardLogger())

	_, err := converter.Convert(context.Background(), "in.cbz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converter failed")
}

func TestKCCConverterOutputPath(t *testing.T) {
	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatMOBI, "/mangas/One Piece/1084.mobi"},
		{FormatEPUB, "/mangas/One Piece/1084.epub"},
		{FormatKFX, "/mangas/One Piece/1084.kfx"},
	}

	for _, tt := range tests {
		converter := NewKCCConverter(&fakeRunner{}, ConverterOptions{Format: tt.format}, discardLogger())
		assert.Equal(t, tt.want, converter.OutputPath("/mangas/One Piece/1084.cbz"))
	}
}

func TestArchiverCommand(t *testing.T) {
	runner := &fakeRunner{}
	archiver := NewArchiver(runner, nil, discardLogger())

	_, err := archiver.Archive(context.Background(), "/mangas/One Piece/1084.zip", "/mangas/One Piece/1084")
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "7z", runner.calls[0].name)
	assert.Equal(t, []string{"a", "/mangas/One Piece/1084.zip", "/mangas/One Piece/1084"}, runner.calls[0].args)
}
