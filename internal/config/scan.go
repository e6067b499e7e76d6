package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ScanResult holds the results of directory scanning
type ScanResult struct {
	Files      []string // Media files, sorted by name
	TotalFiles int
}

// HasMedia reports whether any media file was found.
func (r *ScanResult) HasMedia() bool {
	return len(r.Files) > 0
}

// Scan lists the media files directly inside dir.
// It uses the provided formats list (extensions without dot, any case) to identify relevant files.
func Scan(dir string, formats []string) (*ScanResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		TotalFiles: len(entries),
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsMedia(e.Name(), formats) {
			result.Files = append(result.Files, filepath.Join(dir, e.Name()))
		}
	}

	return result, nil
}

// IsMedia reports whether name has one of the given extensions.
func IsMedia(name string, formats []string) bool {
	ext := filepath.Ext(name)
	if len(ext) > 0 {
		ext = ext[1:] // Remove leading dot
	}
	return slices.ContainsFunc(formats, func(f string) bool {
		return strings.EqualFold(f, ext)
	})
}
