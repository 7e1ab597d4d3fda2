package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Local reads report files from a directory, filtered by a glob
// pattern ("*.csv", a prefix glob, or an exact file name).
type Local struct {
	dir     string
	pattern string
}

// NewLocal creates a local directory source.
func NewLocal(dir, pattern string) (*Local, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", dir)
	}
	return &Local{dir: dir, pattern: pattern}, nil
}

// List returns the matching file names in directory-listing order.
// Names are relative to the source directory; that is also the name
// carried into the output document.
func (l *Local) List(ctx context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(l.dir, l.pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", l.pattern, err)
	}
	sort.Strings(matches)

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	return names, nil
}

// Read returns the file content as lines. A file that disappeared
// between List and Read surfaces as a read error; the converter skips
// it and moves on.
func (l *Local) Read(ctx context.Context, name string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return splitLines(data), nil
}
