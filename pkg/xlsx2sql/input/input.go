// Package input validates and discovers workbook files before conversion.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a supported workbook format.
var ErrInvalidFormat = errors.New("invalid file format")

// Extensions lists the supported workbook extensions, lower case with dot.
var Extensions = []string{".xlsx", ".xlsm", ".xls"}

// ValidateFile checks that path exists and carries a supported extension.
func ValidateFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return err
	}
	if !SupportedExtension(path) {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	return nil
}

// SupportedExtension reports whether path has a supported workbook extension.
func SupportedExtension(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// FindWorkbooks returns the workbook files directly inside dir, sorted by
// path. The scan is not recursive.
func FindWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !SupportedExtension(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
