package integrations

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kerbaras/mangamobi/pkg/data"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"
)

// ComicInfoFile is the metadata sidecar name comic readers and KCC look for.
const ComicInfoFile = "ComicInfo.xml"

const (
	xsdNamespace = "http://www.w3.org/2001/XMLSchema"
	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// Only markup characters are escaped in element text; quotes, apostrophes
// and whitespace are written as is.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type comicInfoField struct {
	name  string
	value string
}

func comicInfoFields(meta data.Metadata) []comicInfoField {
	fields := []comicInfoField{
		{"Series", meta.Series},
		{"Volume", meta.Volume},
		{"Writer", meta.Writer},
		{"Genre", meta.Genre},
		{"Publisher", meta.Publisher},
	}
	if meta.Penciller != "" {
		fields = append(fields, comicInfoField{"Penciller", meta.Penciller})
	}
	if meta.PageCount != 0 {
		fields = append(fields, comicInfoField{"PageCount", strconv.Itoa(meta.PageCount)})
	}
	return fields
}

// EncodeComicInfo renders the ComicRack metadata document for meta.
// Penciller and PageCount are only present when set. The document is
// tab-indented and has neither an XML declaration nor a trailing newline;
// empty fields are written as self-closing elements.
func EncodeComicInfo(meta data.Metadata) []byte {
	var b bytes.Buffer
	b.WriteString(`<ComicInfo xmlns:xsd="` + xsdNamespace + `" xmlns:xsi="` + xsiNamespace + `">`)
	for _, f := range comicInfoFields(meta) {
		b.WriteString("\n\t<" + f.name)
		if f.value == "" {
			b.WriteString(" />")
			continue
		}
		b.WriteString(">" + textEscaper.Replace(f.value) + "</" + f.name + ">")
	}
	b.WriteString("\n</ComicInfo>")
	return b.Bytes()
}

// WriteComicInfo writes ComicInfo.xml into dir, replacing any existing file.
func WriteComicInfo(fs afero.Fs, dir string, meta data.Metadata) (string, error) {
	path := filepath.Join(dir, ComicInfoFile)
	if err := afero.WriteFile(fs, path, EncodeComicInfo(meta), 0o644); err != nil {
		return "", goerr.Wrap(err, "failed to write ComicInfo", goerr.V("path", path))
	}
	return path, nil
}
