package integrations

import (
	"sort"
	"strings"
)

// DeviceProfile is a target device known to Kindle Comic Converter
type DeviceProfile struct {
	ID        string // value passed to --profile
	Name      string
	Width     int // Screen width in pixels
	Height    int // Screen height in pixels
	Grayscale bool
	Kobo      bool
}

// Device profiles accepted by kcc-c2e
var DeviceProfiles = map[string]DeviceProfile{
	"K1":    {ID: "K1", Name: "Kindle 1", Width: 600, Height: 670, Grayscale: true},
	"K2":    {ID: "K2", Name: "Kindle 2", Width: 600, Height: 670, Grayscale: true},
	"K34":   {ID: "K34", Name: "Kindle Keyboard/Touch", Width: 600, Height: 800, Grayscale: true},
	"K578":  {ID: "K578", Name: "Kindle 5/7/8", Width: 600, Height: 800, Grayscale: true},
	"KDX":   {ID: "KDX", Name: "Kindle DX/DXG", Width: 824, Height: 1000, Grayscale: true},
	"KPW":   {ID: "KPW", Name: "Kindle Paperwhite 1/2", Width: 758, Height: 1024, Grayscale: true},
	"KV":    {ID: "KV", Name: "Kindle Paperwhite 3/4/Voyage/Oasis", Width: 1072, Height: 1448, Grayscale: true},
	"KPW5":  {ID: "KPW5", Name: "Kindle Paperwhite 5/Signature Edition", Width: 1236, Height: 1648, Grayscale: true},
	"KO":    {ID: "KO", Name: "Kindle Oasis 2/3/Paperwhite 12", Width: 1264, Height: 1680, Grayscale: true},
	"K11":   {ID: "K11", Name: "Kindle 11", Width: 1072, Height: 1448, Grayscale: true},
	"KS":    {ID: "KS", Name: "Kindle Scribe", Width: 1860, Height: 2480, Grayscale: true},
	"KCS":   {ID: "KCS", Name: "Kindle Colorsoft", Width: 1264, Height: 1680, Grayscale: false},
	"KoMT":  {ID: "KoMT", Name: "Kobo Mini/Touch", Width: 600, Height: 800, Grayscale: true, Kobo: true},
	"KoG":   {ID: "KoG", Name: "Kobo Glo", Width: 768, Height: 1024, Grayscale: true, Kobo: true},
	"KoGHD": {ID: "KoGHD", Name: "Kobo Glo HD", Width: 1072, Height: 1448, Grayscale: true, Kobo: true},
	"KoA":   {ID: "KoA", Name: "Kobo Aura", Width: 758, Height: 1024, Grayscale: true, Kobo: true},
	"KoAHD": {ID: "KoAHD", Name: "Kobo Aura HD", Width: 1080, Height: 1440, Grayscale: true, Kobo: true},
	"KoC":   {ID: "KoC", Name: "Kobo Clara HD/2E", Width: 1072, Height: 1448, Grayscale: true, Kobo: true},
	"KoL":   {ID: "KoL", Name: "Kobo Libra H2O/2", Width: 1264, Height: 1680, Grayscale: true, Kobo: true},
	"KoF":   {ID: "KoF", Name: "Kobo Forma", Width: 1440, Height: 1920, Grayscale: true, Kobo: true},
	"KoE":   {ID: "KoE", Name: "Kobo Elipsa", Width: 1404, Height: 1872, Grayscale: true, Kobo: true},
}

// GetDeviceProfile returns the profile for a kcc-c2e profile id
func GetDeviceProfile(id string) (DeviceProfile, bool) {
	profile, ok := DeviceProfiles[id]
	return profile, ok
}

// ListDeviceProfiles returns all profiles, Kindle devices first, sorted by id.
func ListDeviceProfiles() []DeviceProfile {
	profiles := make([]DeviceProfile, 0, len(DeviceProfiles))
	for _, p := range DeviceProfiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Kobo != profiles[j].Kobo {
			return !profiles[i].Kobo
		}
		return profiles[i].ID < profiles[j].ID
	})
	return profiles
}

// OutputFormat is the --format value understood by kcc-c2e
type OutputFormat string

const (
	FormatMOBI     OutputFormat = "MOBI"
	FormatEPUB     OutputFormat = "EPUB"
	FormatKFX      OutputFormat = "KFX"
	FormatPDF      OutputFormat = "PDF"
	FormatMOBIEPUB OutputFormat = "MOBI+EPUB"
)

var formatExtensions = map[OutputFormat]string{
	FormatMOBI:     ".mobi",
	FormatEPUB:     ".epub",
	FormatKFX:      ".kfx",
	FormatPDF:      ".pdf",
	FormatMOBIEPUB: ".mobi",
}

// ParseFormat normalizes a format name, reporting whether it is supported.
func ParseFormat(s string) (OutputFormat, bool) {
	f := OutputFormat(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := formatExtensions[f]
	return f, ok
}

// Extension is the file extension kcc-c2e gives files of this format.
func (f OutputFormat) Extension() string {
	return formatExtensions[f]
}
