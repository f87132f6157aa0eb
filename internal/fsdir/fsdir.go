// Package fsdir reads a single directory into an ordered listing.
package fsdir

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one item of a directory listing. IsDir is also true for
// symlinks that resolve to a directory; SymlinkTarget is display-only.
type Entry struct {
	Name          string
	IsDir         bool
	SymlinkTarget string
}

// Listing is the ordered set of entries for one directory. It is rebuilt
// as a whole on every read; callers reference items by index only.
type Listing []Entry

// List reads path and returns its entries sorted by name, case-insensitive
// with a raw-name tiebreak. When foldersOnly is set, non-directories are
// dropped before sorting so visible indices never include them.
//
// A metadata failure on a single entry degrades that entry (treated as a
// plain file) rather than failing the whole listing.
func List(path string, foldersOnly bool) (Listing, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	listing := make(Listing, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{Name: de.Name(), IsDir: de.IsDir()}

		if de.Type()&os.ModeSymlink != 0 {
			full := filepath.Join(path, de.Name())
			if target, err := os.Readlink(full); err == nil {
				entry.SymlinkTarget = target
			}
			// Symlinks to directories are traversable, so they count as dirs.
			if info, err := os.Stat(full); err == nil {
				entry.IsDir = info.IsDir()
			}
		}

		if foldersOnly && !entry.IsDir {
			continue
		}
		listing = append(listing, entry)
	}

	sort.SliceStable(listing, func(i, j int) bool {
		a, b := strings.ToLower(listing[i].Name), strings.ToLower(listing[j].Name)
		if a == b {
			return listing[i].Name < listing[j].Name
		}
		return a < b
	})

	return listing, nil
}
