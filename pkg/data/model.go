package data

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Metadata is the ComicInfo record written next to every converted folder.
type Metadata struct {
	Series    string
	Volume    string
	Writer    string
	Genre     string
	Publisher string
	Penciller string // optional
	PageCount int    // optional, 0 means unknown
}

// Series describes one manga series in the library configuration.
type Series struct {
	Name      string `toml:"name"`
	Directory string `toml:"directory"`
	Writer    string `toml:"writer"`
	Genre     string `toml:"genre"`
	Publisher string `toml:"publisher"`
	Penciller string `toml:"penciller,omitempty"`
	Only      string `toml:"only,omitempty"` // default subdirectory suffix
}

// Metadata returns the metadata template for the series, without a volume.
func (s Series) Metadata() Metadata {
	return Metadata{
		Series:    s.Name,
		Writer:    s.Writer,
		Genre:     s.Genre,
		Publisher: s.Publisher,
		Penciller: s.Penciller,
	}
}

// Path resolves the series directory against the library root.
func (s Series) Path(libraryDir string) string {
	if filepath.IsAbs(s.Directory) {
		return s.Directory
	}
	return filepath.Join(libraryDir, s.Directory)
}

const (
	chapterWidth    = 4
	subChapterWidth = 6
)

// VolumeLabel derives the zero-padded volume label from a folder path.
// Names containing a dot are sub-chapters and get the wider padding.
// The name is padded as a string, it is never parsed as a number.
func VolumeLabel(folder string) string {
	name := filepath.Base(folder)
	if strings.Contains(name, ".") {
		return ZeroFill(name, subChapterWidth)
	}
	return ZeroFill(name, chapterWidth)
}

// ZeroFill left-pads s with '0' up to width runes, keeping a leading sign
// in front of the padding.
func ZeroFill(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := strings.Repeat("0", width-n)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[:1] + pad + s[1:]
	}
	return pad + s
}
