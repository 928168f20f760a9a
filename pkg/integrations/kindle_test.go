package integrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDeviceProfile(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantOK bool
	}{
		{"paperwhite", "KPW", true},
		{"scribe", "KS", true},
		{"kobo", "KoF", true},
		{"ids are case sensitive", "kpw", false},
		{"unknown", "invalid-device", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, ok := GetDeviceProfile(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.id, profile.ID)
				assert.NotEmpty(t, profile.Name)
			}
		})
	}
}

func TestListDeviceProfiles(t *testing.T) {
	profiles := ListDeviceProfiles()
	assert.Len(t, profiles, len(DeviceProfiles))

	seenKobo := false
	for _, p := range profiles {
		if p.Kobo {
			seenKobo = true
			continue
		}
		assert.False(t, seenKobo, "kindle profile %s listed after kobo profiles", p.ID)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   OutputFormat
		ext    string
		wantOK bool
	}{
		{"MOBI", FormatMOBI, ".mobi", true},
		{"mobi", FormatMOBI, ".mobi", true},
		{" epub ", FormatEPUB, ".epub", true},
		{"MOBI+EPUB", FormatMOBIEPUB, ".mobi", true},
		{"docx", "DOCX", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ext, got.Extension(), tt.in)
	}
}
