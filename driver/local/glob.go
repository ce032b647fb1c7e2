package local

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/gobeaver/filelike"
	"github.com/gobwas/glob"
)

// Glob returns the regular files under root whose slash-separated path
// relative to root matches pattern. "*" stays within one path segment and
// "**" crosses segments. Results are sorted and relative to root.
func Glob(root, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, &filelike.OpError{Op: "glob", Path: pattern, Err: err}
	}

	var matches []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if g.Match(rel) {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return nil, &filelike.OpError{Op: "glob", Path: root, Err: err}
	}

	sort.Strings(matches)
	return matches, nil
}

// HasMeta reports whether pattern contains glob syntax
func HasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
