// Package fleet loads batch-evaluation input: YAML files listing vehicles
// with their OEM tyre sizes, plus glob discovery of those files under a root.
package fleet

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/tyrefit/internal/size"
)

// DefaultPattern is the discovery glob used when the caller supplies none.
const DefaultPattern = "**/*.{yaml,yml}"

// Entry is one vehicle in a fleet file. OEM accepts either canonical
// ("205/55 R16") or slug ("205-55-16") notation.
type Entry struct {
	Vehicle string `yaml:"vehicle"`
	OEM     string `yaml:"oem"`
}

// Fleet is a parsed fleet file.
type Fleet struct {
	Path     string
	Vehicles []Entry `yaml:"vehicles"`
}

// Size parses the entry's OEM field, trying canonical notation first and
// slug notation second.
func (e Entry) Size() (size.TyreSize, error) {
	t, err := size.Parse(e.OEM)
	if err == nil {
		return t, nil
	}
	if t, slugErr := size.ParseSlug(e.OEM); slugErr == nil {
		return t, nil
	}
	return size.TyreSize{}, err
}

// LoadFile parses a fleet YAML file and validates every entry: vehicle must
// be non-empty and oem must parse. Errors name the file and the offending
// entry index.
func LoadFile(path string) (*Fleet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fleet.LoadFile: %w", err)
	}

	var f Fleet
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("fleet.LoadFile: parse %s: %w", path, err)
	}
	f.Path = path

	if len(f.Vehicles) == 0 {
		return nil, fmt.Errorf("fleet.LoadFile: %s: no vehicles listed", path)
	}
	for i, entry := range f.Vehicles {
		if entry.Vehicle == "" {
			return nil, fmt.Errorf("fleet.LoadFile: %s: entry %d: vehicle name is empty", path, i)
		}
		if _, err := entry.Size(); err != nil {
			return nil, fmt.Errorf("fleet.LoadFile: %s: entry %d (%s): %w", path, i, entry.Vehicle, err)
		}
	}
	return &f, nil
}

// Discover returns the fleet-file paths under root matching pattern, sorted.
// An empty pattern selects DefaultPattern. Discovery is directory traversal
// only; file contents are not inspected.
func Discover(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("fleet.Discover: pattern %q: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, m))
	}
	sort.Strings(paths)
	return paths, nil
}
