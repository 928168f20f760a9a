package services

import (
	"context"
	"errors"
	"strings"

	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/kerbaras/mangamobi/pkg/utils"
	"github.com/m-mizutani/goerr/v2"
)

// ErrNoMatch is returned when no subdirectory ends with the requested name.
var ErrNoMatch = errors.New("no subdirectory matches")

// Batch runs the builder over the chapter folders of a series directory,
// one folder at a time in sorted order.
type Batch struct {
	builder  *Builder
	observer Observer
}

func NewBatch(builder *Builder) *Batch {
	return &Batch{builder: builder}
}

// SetObserver registers a callback receiving every stage of every folder.
func (b *Batch) SetObserver(observer Observer) {
	b.observer = observer
}

// Folders lists the immediate subdirectories of base in lexicographic order.
func (b *Batch) Folders(base string) ([]string, error) {
	dirs, err := utils.SubDirectories(b.builder.fs, base)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list series directory", goerr.V("base", base))
	}
	return dirs, nil
}

// SelectBySuffix returns the first sorted subdirectory of base whose path
// ends with suffix.
func (b *Batch) SelectBySuffix(base, suffix string) (string, error) {
	dirs, err := b.Folders(base)
	if err != nil {
		return "", err
	}
	for _, dir := range dirs {
		if strings.HasSuffix(dir, suffix) {
			return dir, nil
		}
	}
	return "", goerr.Wrap(ErrNoMatch, "no folder to convert", goerr.V("base", base), goerr.V("suffix", suffix))
}

// Convert converts a single folder as entry index of a batch of total.
func (b *Batch) Convert(ctx context.Context, folder string, meta data.Metadata, index, total int) (*Result, error) {
	return b.builder.convert(ctx, folder, meta, func(p Progress) {
		p.Index = index
		p.Total = total
		b.observer.notify(p)
	})
}

// ConvertFolders converts the given folders in order. The first failure stops
// the run; the results gathered so far are returned with the error.
func (b *Batch) ConvertFolders(ctx context.Context, folders []string, meta data.Metadata) ([]*Result, error) {
	results := make([]*Result, 0, len(folders))
	for i, folder := range folders {
		result, err := b.Convert(ctx, folder, meta, i, len(folders))
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// ConvertAll converts every subdirectory of base.
func (b *Batch) ConvertAll(ctx context.Context, base string, meta data.Metadata) ([]*Result, error) {
	folders, err := b.Folders(base)
	if err != nil {
		return nil, err
	}
	return b.ConvertFolders(ctx, folders, meta)
}

// ConvertOne converts only the subdirectory of base selected by suffix.
func (b *Batch) ConvertOne(ctx context.Context, base string, meta data.Metadata, suffix string) (*Result, error) {
	folder, err := b.SelectBySuffix(base, suffix)
	if err != nil {
		return nil, err
	}
	return b.Convert(ctx, folder, meta, 0, 1)
}

// Plan returns the folders a run would convert: the one matching suffix, or
// all of them when suffix is empty.
func (b *Batch) Plan(base, suffix string) ([]string, error) {
	if suffix == "" {
		return b.Folders(base)
	}
	folder, err := b.SelectBySuffix(base, suffix)
	if err != nil {
		return nil, err
	}
	return []string{folder}, nil
}
