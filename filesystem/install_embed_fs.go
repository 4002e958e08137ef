package filesystem

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// InstallEmbedFS copies the contents of an embedded filesystem into root
// on disk, creating directories as needed.
func InstallEmbedFS(embedFS embed.FS, root string) error {
	return fs.WalkDir(embedFS, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("could not read embedded FS: %w", err)
		}

		target := filepath.Join(root, path)

		if entry.IsDir() {
			if err := CreateDirectoryIfNotExists(target); err != nil {
				return fmt.Errorf("creating directory '%s' failed: %w", target, err)
			}
			return nil
		}

		content, err := embedFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read embedded file '%s': %w", path, err)
		}

		log.Printf("installing '%s'", target)

		if err := os.WriteFile(target, content, 0666); err != nil {
			return fmt.Errorf("could not write file '%s': %w", target, err)
		}

		return nil
	})
}
