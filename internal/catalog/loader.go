package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog fails validation
var ErrInvalidCatalog = errors.New("invalid catalog")

var validate = validator.New()

// Load reads a catalog file. The format is picked from the extension:
// .yaml/.yml or .toml. Fields missing from the file keep their built-in
// defaults, so a file may override only the units or only the timings.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	c := Default()
	// A file that lists units or achievements replaces the defaults entirely.
	c.Units = nil
	c.Achievements = nil

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtYAML, ExtYML:
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, path, err)
		}
	case ExtTOML:
		if err := toml.NewDecoder(bytes.NewReader(raw)).Decode(c); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, path, err)
		}
	default:
		return nil, fmt.Errorf(ErrMsgUnsupportedFormat, ext)
	}

	if len(c.Units) == 0 {
		c.Units = Default().Units
	}
	if len(c.Achievements) == 0 {
		c.Achievements = Default().Achievements
	}

	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field constraints and id uniqueness.
func Validate(c *Catalog) error {
	if c == nil {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgCatalogNil)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	units := make(map[int]struct{}, len(c.Units))
	for _, u := range c.Units {
		if _, dup := units[u.ID]; dup {
			return fmt.Errorf("%w: "+ErrMsgDuplicateUnitID, ErrInvalidCatalog, u.ID)
		}
		units[u.ID] = struct{}{}
	}

	achievements := make(map[string]struct{}, len(c.Achievements))
	for _, a := range c.Achievements {
		if _, dup := achievements[a.ID]; dup {
			return fmt.Errorf("%w: "+ErrMsgDuplicateAchievement, ErrInvalidCatalog, a.ID)
		}
		achievements[a.ID] = struct{}{}
	}
	return nil
}
