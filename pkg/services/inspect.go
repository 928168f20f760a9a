package services

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/kerbaras/mangamobi/pkg/utils"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// FolderReport summarizes a chapter folder before conversion.
type FolderReport struct {
	Folder string
	Volume string
	Pages  int
	// Ignored counts image files that do not carry the page extension and
	// therefore do not show up in PageCount.
	Ignored   int
	FirstPage string
	Width     int
	Height    int
	Err       error // decoding error for the first page, if any
}

// Inspector reads chapter folders without modifying them.
type Inspector struct {
	fs            afero.Fs
	pageExtension string
}

func NewInspector(fs afero.Fs, pageExtension string) *Inspector {
	if pageExtension == "" {
		pageExtension = DefaultPageExtension
	}
	return &Inspector{fs: fs, pageExtension: pageExtension}
}

// Inspect reports on every subdirectory of base, in sorted order.
func (i *Inspector) Inspect(base string) ([]FolderReport, error) {
	dirs, err := utils.SubDirectories(i.fs, base)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list series directory", goerr.V("base", base))
	}

	reports := make([]FolderReport, 0, len(dirs))
	for _, dir := range dirs {
		report, err := i.InspectFolder(dir)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// InspectFolder reports on a single chapter folder.
func (i *Inspector) InspectFolder(folder string) (FolderReport, error) {
	report := FolderReport{Folder: folder, Volume: data.VolumeLabel(folder)}

	entries, err := afero.ReadDir(i.fs, folder)
	if err != nil {
		return report, goerr.Wrap(err, "failed to read folder", goerr.V("folder", folder))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, i.pageExtension):
			report.Pages++
			if report.FirstPage == "" {
				report.FirstPage = name
			}
		case imageExtensions[strings.ToLower(filepath.Ext(name))]:
			report.Ignored++
		}
	}

	if report.FirstPage != "" {
		report.Width, report.Height, report.Err = i.pageSize(filepath.Join(folder, report.FirstPage))
	}
	return report, nil
}

func (i *Inspector) pageSize(path string) (int, int, error) {
	f, err := i.fs.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to decode page", goerr.V("path", path))
	}
	return cfg.Width, cfg.Height, nil
}
