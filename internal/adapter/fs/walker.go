// Package fs walks verse corpus directories with doublestar include and
// exclude globs.
package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"scriptureref/internal/port"
)

// DefaultIncludes covers the plain-text dump formats verse corpora ship in.
var DefaultIncludes = []string{"**/*.txt", "**/*.tsv"}

type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Walk returns the matching files under root in path order. Hidden
// directories are skipped. A root that is itself a file is returned as-is,
// so the ingest command can take a single corpus file.
func (w *Walker) Walk(root string) ([]port.FileInfo, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return []port.FileInfo{{Path: root, Size: info.Size()}}, nil
	}

	var files []port.FileInfo
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && (strings.HasPrefix(info.Name(), ".") || w.matches(w.excludes, rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if w.matches(w.includes, rel) && !w.matches(w.excludes, rel) {
			files = append(files, port.FileInfo{Path: path, Size: info.Size()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (w *Walker) matches(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
