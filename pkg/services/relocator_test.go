package services

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unpackedBook(t *testing.T, fs afero.Fs, dir string, pages ...string) {
	t.Helper()
	images := filepath.Join(dir, "OEBPS", "img")
	makeChapter(t, fs, images, pages...)
	makeChapter(t, fs, filepath.Join(dir, "OEBPS"), "content.opf", "toc.ncx")
	makeChapter(t, fs, filepath.Join(dir, "META-INF"), "container.xml")
	makeChapter(t, fs, dir, MarkerFile)
}

func listNames(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestRelocate(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("mangas", "One Piece", "1")
	unpackedBook(t, fs, dir, "kindle-001.jpg", "kindle-002.jpg")

	copied, err := NewRelocator(fs, discardLogger()).Relocate(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, copied)
	assert.Equal(t, []string{"kindle-001.jpg", "kindle-002.jpg"}, listNames(t, fs, dir))

	content, err := afero.ReadFile(fs, filepath.Join(dir, "kindle-001.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "kindle-001.jpg", string(content))
}

func TestRelocateMissingMarker(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("mangas", "One Piece", "1")
	unpackedBook(t, fs, dir, "001.jpg")
	require.NoError(t, fs.Remove(filepath.Join(dir, MarkerFile)))

	copied, err := NewRelocator(fs, discardLogger()).Relocate(dir)
	require.Error(t, err)
	assert.Equal(t, 1, copied)

	// images are already in place and subdirectories removed
	assert.Equal(t, []string{"001.jpg"}, listNames(t, fs, dir))
}

func TestRelocateWithoutImages(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("mangas", "One Piece", "1")
	makeChapter(t, fs, dir, "001.jpg", MarkerFile)

	_, err := NewRelocator(fs, discardLogger()).Relocate(dir)
	require.Error(t, err)

	// nothing is removed when there is nothing to move
	assert.Equal(t, []string{"001.jpg", MarkerFile}, listNames(t, fs, dir))
}

func TestRelocateAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	base := filepath.Join("mangas", "One Piece")
	unpackedBook(t, fs, filepath.Join(base, "1"), "001.jpg", "002.jpg")
	unpackedBook(t, fs, filepath.Join(base, "2"), "001.jpg")

	total, err := NewRelocator(fs, discardLogger()).RelocateAll(base)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"001.jpg", "002.jpg"}, listNames(t, fs, filepath.Join(base, "1")))
	assert.Equal(t, []string{"001.jpg"}, listNames(t, fs, filepath.Join(base, "2")))
}

func TestRelocateAllStopsOnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	base := filepath.Join("mangas", "One Piece")
	makeChapter(t, fs, filepath.Join(base, "1"), "001.jpg")
	unpackedBook(t, fs, filepath.Join(base, "2"), "001.jpg")

	total, err := NewRelocator(fs, discardLogger()).RelocateAll(base)
	require.Error(t, err)
	assert.Zero(t, total)

	exists, err := afero.DirExists(fs, filepath.Join(base, "2", "OEBPS"))
	require.NoError(t, err)
	assert.True(t, exists, "later folders are left untouched")
}

func TestRelocateSkipsSameFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hard links")
	}
	dir := t.TempDir()
	fs := afero.NewOsFs()
	unpackedBook(t, fs, dir, "001.jpg", "002.jpg")

	// 001.jpg is already in place as a hard link of the unpacked image
	require.NoError(t, os.Link(filepath.Join(dir, "OEBPS", "img", "001.jpg"), filepath.Join(dir, "001.jpg")))

	copied, err := NewRelocator(fs, discardLogger()).Relocate(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, copied, "the linked page is not copied again")
	assert.Equal(t, []string{"001.jpg", "002.jpg"}, listNames(t, fs, dir))

	content, err := os.ReadFile(filepath.Join(dir, "001.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "001.jpg", string(content))
}
