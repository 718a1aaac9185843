package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// ErrNotFound is returned when no level in the directory has the requested ID.
var ErrNotFound = errors.New("level not found")

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(FormatExtensions(), ext) {
			return nil
		}

		lvl, err := LoadFile(path)
		if err != nil {
			return nil
		}

		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Lookup loads ref as a level file when it names one, otherwise as a level ID
// in the loader's directory. An unknown ID lists the IDs that do exist.
func (l *Loader) Lookup(ref string) (Level, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadFile(ref)
	}

	lvl, err := l.LoadByID(ref)
	if !errors.Is(err, ErrNotFound) {
		return lvl, err
	}
	ids, _ := l.ListIDs()
	if len(ids) == 0 {
		return Level{}, fmt.Errorf("%w (no levels in %s)", err, l.Root)
	}
	return Level{}, fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadFile loads and validates a single level file.
// A missing ID defaults to the file name without extension.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := Validate(lvl); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	return lvl, nil
}

// SaveFile writes a level to path in YAML format.
func SaveFile(path string, l Level) error {
	data, err := MarshalYAML(l)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
