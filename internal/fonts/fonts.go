package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dirs are searched in order, relative to the working directory.
var Dirs = []string{"assets/fonts", "../../assets/fonts"}

// ErrNotFound is returned when no font file matches a family.
var ErrNotFound = errors.New("fonts: not found")

var exts = map[string]bool{".ttf": true, ".otf": true}

// Scan lists font files under dir as slash-separated paths relative to dir.
// A missing dir yields no files.
func Scan(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !exts[strings.ToLower(filepath.Ext(path))] {
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

// fold lowercases and drops spaces, dashes and underscores so "Noto Sans" matches "NotoSans-Regular.ttf".
func fold(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find returns the path of the first font under dirs whose relative path contains family.
// A "Regular" face wins over other weights.
func Find(family string, dirs ...string) (string, error) {
	want := fold(family)
	if want == "" {
		return "", ErrNotFound
	}
	var first string
	for _, dir := range dirs {
		files, err := Scan(dir)
		if err != nil {
			return "", fmt.Errorf("fonts: scan %s: %w", dir, err)
		}
		for _, rel := range files {
			if !strings.Contains(fold(rel), want) {
				continue
			}
			full := filepath.Join(dir, filepath.FromSlash(rel))
			if strings.Contains(strings.ToLower(rel), "regular") {
				return full, nil
			}
			if first == "" {
				first = full
			}
		}
	}
	if first == "" {
		return "", fmt.Errorf("%w: %q", ErrNotFound, family)
	}
	return first, nil
}

// Load finds family in Dirs and loads it at size pixels. Needs an open window.
func Load(family string, size int32) (rl.Font, error) {
	path, err := Find(family, Dirs...)
	if err != nil {
		return rl.Font{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return rl.Font{}, fmt.Errorf("fonts: %w", err)
	}
	f := rl.LoadFontEx(path, size, nil)
	if f.Texture.ID == 0 {
		return rl.Font{}, fmt.Errorf("fonts: %s did not load", path)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f, nil
}
