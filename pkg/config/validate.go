package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/mangamobi/pkg/integrations"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateSeries(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	if len(c.Archiver.Command) == 0 || strings.TrimSpace(c.Archiver.Command[0]) == "" {
		return errors.New("archiver.command must name a program")
	}
	if len(c.Converter.Command) == 0 || strings.TrimSpace(c.Converter.Command[0]) == "" {
		return errors.New("converter.command must name a program")
	}
	if _, ok := integrations.ParseFormat(c.Converter.Format); !ok {
		return fmt.Errorf("converter.format %q is not supported", c.Converter.Format)
	}
	if c.Converter.Profile != "" {
		if _, ok := integrations.GetDeviceProfile(c.Converter.Profile); !ok {
			return fmt.Errorf("converter.profile %q is not a known kcc profile (see 'mangamobi profiles')", c.Converter.Profile)
		}
	}
	if !strings.HasPrefix(c.PageExtension, ".") {
		return fmt.Errorf("page_extension %q must start with a dot", c.PageExtension)
	}
	return nil
}

func (c *Config) validateSeries() error {
	seen := make(map[string]bool, len(c.Series))
	for i, s := range c.Series {
		if s.Name == "" {
			return fmt.Errorf("series[%d].name must be set", i)
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return fmt.Errorf("series %q is defined twice", s.Name)
		}
		seen[key] = true
		if s.Directory == "" {
			return fmt.Errorf("series %q: directory must be set", s.Name)
		}
		required := []struct{ field, value string }{
			{"writer", s.Writer},
			{"genre", s.Genre},
			{"publisher", s.Publisher},
		}
		for _, r := range required {
			if strings.TrimSpace(r.value) == "" {
				return fmt.Errorf("series %q: %s must be set", s.Name, r.field)
			}
		}
	}
	return nil
}
