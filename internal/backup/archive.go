package backup

import (
	"archive/zip"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// CreateArchive compresses the directory tree rooted at sourceDir into a
// zip file at zipPath. Entry names are relative to the parent of sourceDir,
// so the source directory itself appears as the archive's top-level folder.
// On any failure the partial archive is removed and sourceDir is untouched.
func CreateArchive(sourceDir, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}

	writer := zip.NewWriter(out)
	root := filepath.Dir(sourceDir)

	walkErr := filepath.WalkDir(sourceDir, func(path string, entry iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		dst, err := writer.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(dst, src)
		return err
	})

	if walkErr != nil {
		writer.Close()
		out.Close()
		os.Remove(zipPath)
		return fmt.Errorf("archiving %s: %w", sourceDir, walkErr)
	}

	if err := writer.Close(); err != nil {
		out.Close()
		os.Remove(zipPath)
		return fmt.Errorf("finalizing archive: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(zipPath)
		return fmt.Errorf("closing archive: %w", err)
	}

	return nil
}
