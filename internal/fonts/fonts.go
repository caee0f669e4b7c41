// Package fonts locates TrueType/OpenType font files for the overlay by a
// loose name such as "Inter" or "Google Sans".
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/image/font/sfnt"
)

// ErrNotFound is returned when no font matches.
var ErrNotFound = errors.New("fonts: no matching font")

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// DefaultDirs are searched when Find is given no directories. They are
// relative to the working directory.
var DefaultDirs = []string{"assets/fonts", "../../assets/fonts"}

// Scan returns the font files under dir, relative to dir with forward
// slashes. A missing dir yields no fonts.
func Scan(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

// Find resolves name to a font file path. An existing file path is returned
// as is. Otherwise every font under dirs whose path contains name (ignoring
// case, spaces, dashes and underscores) matches, and a "Regular" face is
// preferred among several.
func Find(name string, dirs ...string) (string, error) {
	if isFont(name) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	want := normalize(strings.TrimSuffix(name, filepath.Ext(name)))
	if want == "" {
		return "", ErrNotFound
	}
	if len(dirs) == 0 {
		dirs = DefaultDirs
	}
	var matches []string
	for _, dir := range dirs {
		list, err := Scan(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", ErrNotFound
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}

// Family parses the font at path and returns its family name. It fails for
// files raylib would not be able to rasterize either.
func Family(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", fmt.Errorf("fonts: %s: %w", filepath.Base(path), err)
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return "", fmt.Errorf("fonts: %s: %w", filepath.Base(path), err)
	}
	return name, nil
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Codepoints returns the glyphs an atlas needs to draw texts: printable
// ASCII plus every other rune the texts use, sorted and without duplicates.
func Codepoints(texts ...string) []rune {
	seen := make(map[rune]bool)
	out := make([]rune, 0, 95)
	for r := rune(' '); r <= '~'; r++ {
		seen[r] = true
		out = append(out, r)
	}
	for _, text := range texts {
		for _, r := range text {
			if seen[r] || !unicode.IsPrint(r) {
				continue
			}
			seen[r] = true
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}
