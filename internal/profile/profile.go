// Package profile loads named limit profiles: embedded built-ins and
// schema-validated custom files.
package profile

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/tyrefit/internal/fitment"
	"github.com/dotcommander/tyrefit/internal/schema"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Default is the profile used when the caller names none.
const Default = "standard"

// Profile pairs a safety envelope with its display metadata.
type Profile struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Limits      fitment.Limits `yaml:"limits"`
}

// Load returns a built-in profile by name.
func Load(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		names, _ := List()
		return nil, fmt.Errorf("profile.Load: unknown profile %q (built-ins: %s)", name, strings.Join(names, ", "))
	}
	return decode(data, name)
}

// LoadFile returns a custom profile from a YAML file, validated against the
// embedded CUE schema before decoding.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadFile: %w", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("profile.LoadFile: %w", err)
	}
	if err := validator.ValidateProfile(data); err != nil {
		return nil, fmt.Errorf("profile.LoadFile: %s: %w", path, err)
	}

	return decode(data, path)
}

// List returns the names of all built-in profiles, sorted.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

func decode(data []byte, source string) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: parse %q: %w", source, err)
	}
	if err := p.Limits.Validate(); err != nil {
		return nil, fmt.Errorf("profile: %q: %w", source, err)
	}
	return &p, nil
}
