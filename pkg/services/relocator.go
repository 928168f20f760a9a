package services

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/kerbaras/mangamobi/pkg/utils"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"
)

const (
	// ImagesSubpath is where unpacked e-books keep their page images.
	ImagesSubpath = "OEBPS/img"
	// MarkerFile is the EPUB mimetype marker left at the top of an unpacked book.
	MarkerFile = "mimetype"
)

// Relocator flattens unpacked e-book directories back into plain page folders.
// It deletes data without confirmation.
type Relocator struct {
	fs     afero.Fs
	logger *slog.Logger
}

func NewRelocator(fs afero.Fs, logger *slog.Logger) *Relocator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Relocator{fs: fs, logger: logger}
}

// Relocate copies the images of dir/OEBPS/img into dir, then removes every
// subdirectory of dir and the mimetype marker. It returns the number of
// copied files.
func (r *Relocator) Relocate(dir string) (int, error) {
	copied, err := r.MoveImages(dir)
	if err != nil {
		return copied, err
	}
	if err := r.RemoveUnused(dir); err != nil {
		return copied, err
	}
	r.logger.Info("relocated images", "dir", dir, "files", copied)
	return copied, nil
}

// MoveImages copies every file of dir/OEBPS/img into dir. Files that already
// are the destination are skipped.
func (r *Relocator) MoveImages(dir string) (int, error) {
	imagesDir := filepath.Join(dir, filepath.FromSlash(ImagesSubpath))
	entries, err := afero.ReadDir(r.fs, imagesDir)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read images directory", goerr.V("dir", imagesDir))
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(imagesDir, entry.Name())
		dst := filepath.Join(dir, entry.Name())
		if utils.SameFile(r.fs, src, dst) {
			r.logger.Debug("skipping same file", "path", src)
			continue
		}
		if err := utils.CopyFile(r.fs, src, dst); err != nil {
			return copied, goerr.Wrap(err, "failed to copy image", goerr.V("src", src), goerr.V("dst", dst))
		}
		copied++
	}
	return copied, nil
}

// RemoveUnused deletes all subdirectories of dir and the mimetype marker.
func (r *Relocator) RemoveUnused(dir string) error {
	subdirs, err := utils.SubDirectories(r.fs, dir)
	if err != nil {
		return goerr.Wrap(err, "failed to list directory", goerr.V("dir", dir))
	}
	for _, sub := range subdirs {
		if err := r.fs.RemoveAll(sub); err != nil {
			return goerr.Wrap(err, "failed to remove directory", goerr.V("dir", sub))
		}
	}

	marker := filepath.Join(dir, MarkerFile)
	if err := r.fs.Remove(marker); err != nil {
		return goerr.Wrap(err, "failed to remove marker file", goerr.V("path", marker))
	}
	return nil
}

// RelocateAll relocates every subdirectory of base, stopping at the first
// failure. It returns the total number of copied files.
func (r *Relocator) RelocateAll(base string) (int, error) {
	dirs, err := utils.SubDirectories(r.fs, base)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list directory", goerr.V("dir", base))
	}

	total := 0
	for _, dir := range dirs {
		n, err := r.Relocate(dir)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
