// Package subset builds the set of test identifiers that exercise SVG 2
// features.
package subset

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FilterSet is a set of canonical test identifiers.
type FilterSet map[string]struct{}

// Contains reports whether id (after canonicalization) is in the set.
func (s FilterSet) Contains(id string) bool {
	_, ok := s[Canonical(id)]
	return ok
}

// Len returns the number of identifiers in the set.
func (s FilterSet) Len() int { return len(s) }

// Options controls Scan.
type Options struct {
	// Marker is the substring a document must contain, e.g. "(SVG 2)".
	Marker string
	// Extension selects documents by suffix, e.g. ".svg".
	Extension string
	// Deny holds file names (or full identifiers) that are never included.
	Deny map[string]struct{}
}

// Canonical normalizes an identifier: backslashes become '/', redundant
// elements are cleaned, and the text is NFC-normalized so names read from
// the filesystem match names written to the CSV.
func Canonical(id string) string {
	id = strings.ReplaceAll(id, `\`, "/")
	id = path.Clean(id)
	id = strings.TrimPrefix(id, "./")
	return norm.NFC.String(id)
}

// Scan walks root and returns the identifiers, relative to root, of every
// document that contains opts.Marker and is not denied. A missing root is
// an error.
func Scan(root string, opts Options) (FilterSet, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", root)
	}

	marker := []byte(opts.Marker)
	set := make(FilterSet)
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), opts.Extension) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		id := Canonical(filepath.ToSlash(rel))
		if denied(opts.Deny, d.Name(), id) {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		if bytes.Contains(data, marker) {
			set[id] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return set, nil
}

func denied(deny map[string]struct{}, name, id string) bool {
	if _, ok := deny[name]; ok {
		return true
	}
	if _, ok := deny[norm.NFC.String(name)]; ok {
		return true
	}
	_, ok := deny[id]
	return ok
}
