package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GatherFiles collects the files under the given roots whose extension is
// in extensions (lower-cased, including the dot). Regular-file roots are
// taken as-is, directory roots are scanned one level deep. Results are
// absolute paths in sorted order.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	hasExtension := func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, e := range extensions {
			if e == ext {
				return true
			}
		}
		return false
	}

	var paths []string

	appendAbsPath := func(path string) error {
		path, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("absolute path: %w", err)
		}
		paths = append(paths, path)
		return nil
	}

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		switch {
		case fi.Mode().IsRegular():
			if !hasExtension(fi.Name()) {
				continue
			}
			if err := appendAbsPath(root); err != nil {
				return nil, err
			}

		case fi.Mode().IsDir():
			entries, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			for _, entry := range entries {
				if entry.IsDir() || !hasExtension(entry.Name()) {
					continue
				}
				if err := appendAbsPath(filepath.Join(root, entry.Name())); err != nil {
					return nil, err
				}
			}

		default:
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	sort.Strings(paths)

	return paths, nil
}
