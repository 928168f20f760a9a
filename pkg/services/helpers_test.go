package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/kerbaras/mangamobi/pkg/integrations"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeArchiver struct {
	fs         afero.Fs
	calls      [][2]string
	sawInfo    []bool
	code       int
	err        error
	failOn     string // source folder whose archiving fails
	skipCreate bool
}

func (f *fakeArchiver) Archive(ctx context.Context, archivePath, source string) (int, error) {
	f.calls = append(f.calls, [2]string{archivePath, source})
	_, statErr := f.fs.Stat(filepath.Join(source, integrations.ComicInfoFile))
	f.sawInfo = append(f.sawInfo, statErr == nil)
	if f.err != nil {
		return -1, f.err
	}
	if f.failOn != "" && source == f.failOn {
		return -1, errors.New("archiver crashed")
	}
	if !f.skipCreate {
		if err := afero.WriteFile(f.fs, archivePath, []byte("PK"), 0o644); err != nil {
			return -1, err
		}
	}
	return f.code, nil
}

type fakeConverter struct {
	fs          afero.Fs
	inputs      []string
	sawArchive  []bool
	code        int
	err         error
	skipProduce bool
}

func (f *fakeConverter) Convert(ctx context.Context, input string) (int, error) {
	f.inputs = append(f.inputs, input)
	_, statErr := f.fs.Stat(input)
	f.sawArchive = append(f.sawArchive, statErr == nil)
	if f.err != nil {
		return -1, f.err
	}
	if !f.skipProduce && f.code == 0 {
		if err := afero.WriteFile(f.fs, f.OutputPath(input), []byte("BOOKMOBI"), 0o644); err != nil {
			return -1, err
		}
	}
	return f.code, nil
}

func (f *fakeConverter) OutputPath(input string) string {
	return strings.TrimSuffix(input, ".cbz") + ".mobi"
}

type pipeline struct {
	fs        afero.Fs
	archiver  *fakeArchiver
	converter *fakeConverter
	builder   *Builder
}

func newPipeline(t *testing.T, options BuilderOptions) *pipeline {
	t.Helper()
	fs := afero.NewMemMapFs()
	archiver := &fakeArchiver{fs: fs}
	converter := &fakeConverter{fs: fs}
	return &pipeline{
		fs:        fs,
		archiver:  archiver,
		converter: converter,
		builder:   NewBuilder(fs, archiver, converter, options, discardLogger()),
	}
}

// makeChapter creates dir with the given files; names ending in "/" become
// subdirectories.
func makeChapter(t *testing.T, fs afero.Fs, dir string, names ...string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	for _, name := range names {
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fs.MkdirAll(filepath.Join(dir, strings.TrimSuffix(name, "/")), 0o755))
			continue
		}
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(name), 0o644))
	}
}

func onePiece() data.Metadata {
	return data.Metadata{
		Series:    "One Piece",
		Writer:    "Eiichirō Oda",
		Genre:     "Manga",
		Publisher: "Jump Comics",
	}
}
