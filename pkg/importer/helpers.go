package importer

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PrepareSourceDir returns a directory holding the source files. A .zip
// archive is extracted into a temporary directory that cleanup removes.
func PrepareSourceDir(path string) (dir string, cleanup func(), err error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return path, func() {}, nil
	}

	tmp, err := os.MkdirTemp("", "tifosi-sources-")
	if err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup = func() { os.RemoveAll(tmp) }

	if _, err := unzipFile(path, tmp); err != nil {
		cleanup()
		return "", nil, err
	}
	return tmp, cleanup, nil
}

// unzipFile extracts a ZIP archive flat into destDir and returns the list
// of extracted file paths.
func unzipFile(src, destDir string) ([]string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var paths []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		base := filepath.Base(f.Name)
		// Office lock files and macOS metadata.
		if strings.HasPrefix(base, "~$") || strings.HasPrefix(base, "._") {
			continue
		}

		destPath := filepath.Join(destDir, base)
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open zip entry %s: %w", f.Name, err)
		}

		out, err := os.Create(destPath)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("create %s: %w", destPath, err)
		}

		if _, err := io.Copy(out, rc); err != nil {
			rc.Close()
			out.Close()
			return nil, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		rc.Close()
		out.Close()
		paths = append(paths, destPath)
	}
	return paths, nil
}
