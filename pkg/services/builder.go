package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/kerbaras/mangamobi/pkg/integrations"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"
)

// DefaultPageExtension is the only page file type counted into PageCount.
const DefaultPageExtension = ".jpg"

// Archiver packs a folder into an archive file.
type Archiver interface {
	Archive(ctx context.Context, archivePath, source string) (int, error)
}

// Converter turns a comic archive into an e-reader file next to it.
type Converter interface {
	Convert(ctx context.Context, input string) (int, error)
	OutputPath(input string) string
}

// BuilderOptions tune the folder conversion.
type BuilderOptions struct {
	PageExtension string
	// KeepArchiveOnFailure keeps the .cbz when the converter exits non-zero.
	// Off by default: the archive is always removed after the converter ran.
	KeepArchiveOnFailure bool
}

// Result describes one converted folder.
type Result struct {
	Folder        string
	Volume        string
	PageCount     int
	MetadataPath  string
	ArchivePath   string
	ArchiveKept   bool
	OutputPath    string
	OutputExists  bool
	OutputSize    int64
	ConverterExit int
}

// Builder converts one folder of page images into an e-reader file.
type Builder struct {
	fs        afero.Fs
	archiver  Archiver
	converter Converter
	options   BuilderOptions
	logger    *slog.Logger
	observer  Observer
}

func NewBuilder(fs afero.Fs, archiver Archiver, converter Converter, options BuilderOptions, logger *slog.Logger) *Builder {
	if options.PageExtension == "" {
		options.PageExtension = DefaultPageExtension
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{
		fs:        fs,
		archiver:  archiver,
		converter: converter,
		options:   options,
		logger:    logger,
	}
}

// SetObserver registers a callback for stage updates.
func (b *Builder) SetObserver(observer Observer) {
	b.observer = observer
}

// ConvertFolder writes ComicInfo.xml into folder, archives it as
// <parent>/<volume>.cbz, runs the converter on the archive and removes the
// archive again. meta is copied; PageCount and Volume are derived from the
// folder.
func (b *Builder) ConvertFolder(ctx context.Context, folder string, meta data.Metadata) (*Result, error) {
	return b.convert(ctx, folder, meta, func(p Progress) {
		p.Total = 1
		b.observer.notify(p)
	})
}

func (b *Builder) convert(ctx context.Context, folder string, meta data.Metadata, notify Observer) (*Result, error) {
	folder = filepath.Clean(folder)
	logger := b.logger.With("folder", folder)

	result, err := b.run(ctx, folder, meta, notify, logger)
	if err != nil {
		notify.notify(Progress{Folder: folder, Volume: data.VolumeLabel(folder), Stage: StageError, Err: err})
		return nil, err
	}
	notify.notify(Progress{Folder: folder, Volume: result.Volume, Stage: StageComplete, Result: result})
	return result, nil
}

func (b *Builder) run(ctx context.Context, folder string, meta data.Metadata, notify Observer, logger *slog.Logger) (*Result, error) {
	pages, err := b.CountPages(folder)
	if err != nil {
		return nil, err
	}
	meta.PageCount = pages
	meta.Volume = data.VolumeLabel(folder)

	result := &Result{Folder: folder, Volume: meta.Volume, PageCount: pages}
	stage := func(s Stage) {
		notify.notify(Progress{Folder: folder, Volume: meta.Volume, Stage: s})
	}

	stage(StageMetadata)
	result.MetadataPath, err = integrations.WriteComicInfo(b.fs, folder, meta)
	if err != nil {
		return nil, err
	}
	logger.Info("wrote metadata", "path", result.MetadataPath, "series", meta.Series, "volume", meta.Volume, "pages", pages)

	stage(StageArchiving)
	zipPath := filepath.Join(filepath.Dir(folder), meta.Volume+".zip")
	if _, err := b.archiver.Archive(ctx, zipPath, folder); err != nil {
		return nil, err
	}
	result.ArchivePath = strings.TrimSuffix(zipPath, ".zip") + ".cbz"
	if err := b.fs.Rename(zipPath, result.ArchivePath); err != nil {
		return nil, goerr.Wrap(err, "failed to rename archive", goerr.V("from", zipPath), goerr.V("to", result.ArchivePath))
	}

	stage(StageConverting)
	logger.Info("converting archive", "series", meta.Series, "volume", meta.Volume, "archive", result.ArchivePath)
	result.ConverterExit, err = b.converter.Convert(ctx, result.ArchivePath)
	if err != nil {
		return nil, err
	}

	stage(StageCleanup)
	if result.ConverterExit != 0 && b.options.KeepArchiveOnFailure {
		result.ArchiveKept = true
		logger.Warn("keeping archive after converter failure", "archive", result.ArchivePath, "code", result.ConverterExit)
	} else if err := b.fs.Remove(result.ArchivePath); err != nil {
		return nil, goerr.Wrap(err, "failed to remove archive", goerr.V("archive", result.ArchivePath))
	}

	result.OutputPath = b.converter.OutputPath(result.ArchivePath)
	if info, err := b.fs.Stat(result.OutputPath); err == nil {
		result.OutputExists = true
		result.OutputSize = info.Size()
	}
	return result, nil
}

// CountPages counts the files in folder carrying the page extension.
func (b *Builder) CountPages(folder string) (int, error) {
	entries, err := afero.ReadDir(b.fs, folder)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read folder", goerr.V("folder", folder))
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), b.options.PageExtension) {
			count++
		}
	}
	return count, nil
}
