// Package output writes rendered SQL text to its destination.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Destination selects where rendered SQL is written. An empty Path writes to
// standard output.
type Destination struct {
	Path string
}

// FileDestination returns a destination writing to path.
func FileDestination(path string) Destination { return Destination{Path: path} }

// StdoutDestination returns a destination writing to standard output.
func StdoutDestination() Destination { return Destination{} }

// DefaultSQLPath derives the default output path from the input workbook
// path by swapping its extension for .sql.
func DefaultSQLPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".sql"
}

// Write writes content to the destination.
func Write(content string, dest Destination) error {
	if dest.Path == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(dest.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write to %s: %w", dest.Path, err)
	}
	return nil
}
