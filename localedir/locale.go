// Package localedir runs edits over a directory of locale catalogs laid
// out as <root>/<lang>/translation.json.
package localedir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const FileName = "translation.json"

var (
	ErrMissingFile = errors.New("missing " + FileName)
	ErrRead        = errors.New("read error")
	ErrWrite       = errors.New("write error")
)

// Locale is one language directory under the root.
type Locale struct {
	Lang string
	Dir  string
	// Path is the catalog file, which may not exist.
	Path    string
	Missing bool
}

// Discover lists the subdirectories of root in name order.  Directories
// without a catalog file are included with Missing set; plain files are
// ignored.
func Discover(root string) ([]Locale, error) {
	ents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", ErrRead, root, err)
	}
	var res []Locale
	for _, ent := range ents {
		dir := filepath.Join(root, ent.Name())
		if !ent.IsDir() {
			fi, err := os.Stat(dir)
			if err != nil || !fi.IsDir() {
				continue
			}
		}
		loc := Locale{
			Lang: ent.Name(),
			Dir:  dir,
			Path: filepath.Join(dir, FileName),
		}
		fi, err := os.Stat(loc.Path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			loc.Missing = true
		case err != nil:
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		case fi.IsDir():
			loc.Missing = true
		}
		res = append(res, loc)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Lang < res[j].Lang })
	return res, nil
}

// Find returns the locale named lang in locs.
func Find(locs []Locale, lang string) (Locale, bool) {
	for _, loc := range locs {
		if loc.Lang == lang {
			return loc, true
		}
	}
	return Locale{}, false
}
