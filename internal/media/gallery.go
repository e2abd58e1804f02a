package media

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ShapePrefix marks a gallery entry that names a generated shape.
const ShapePrefix = "shape:"

// Entry is one drawing listed in a gallery manifest. Exactly one of Path and
// Shape is set.
type Entry struct {
	Name  string
	Path  string
	Shape string
}

// Label returns the entry's display name.
func (e Entry) Label() string {
	switch {
	case e.Name != "":
		return e.Name
	case e.Shape != "":
		return e.Shape
	default:
		return baseName(e.Path)
	}
}

// ParseGallery reads a gallery manifest. Each non-comment line is a path
// (relative entries resolve against the manifest directory) or
// "shape:<name>", optionally prefixed with "Name=".
func ParseGallery(path string) ([]Entry, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsGalleryExt(ext) {
		return nil, fmt.Errorf("%w: gallery %s", ErrUnsupportedFormat, ext)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("reading gallery: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("gallery is not valid UTF-8")
	}

	baseDir := filepath.Dir(absPath)
	entries := make([]Entry, 0)
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, parseEntry(line, baseDir))
	}
	return entries, nil
}

func parseEntry(line, baseDir string) Entry {
	var e Entry
	if name, rest, ok := strings.Cut(line, "="); ok && isEntryName(name) {
		e.Name = strings.TrimSpace(name)
		line = strings.TrimSpace(rest)
	}

	if shape, ok := strings.CutPrefix(line, ShapePrefix); ok {
		e.Shape = strings.ToLower(strings.TrimSpace(shape))
		return e
	}
	e.Path = resolveEntryPath(line, baseDir)
	return e
}

// isEntryName rejects prefixes that look like part of a path.
func isEntryName(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.ContainsAny(s, `/\`)
}

func resolveEntryPath(raw, baseDir string) string {
	p := filepath.Clean(raw)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}

// FilterLoadablePaths keeps only existing, non-directory files in a readable
// path format.
func FilterLoadablePaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		if !IsSupportedExt(filepath.Ext(p)) {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		out = append(out, p)
	}
	return out
}
