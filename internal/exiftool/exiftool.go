// Package exiftool produces metadata dumps by running exiftool.
package exiftool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mydehq/exifname/internal/metadata"
)

// DefaultBinary is looked up in $PATH when no explicit binary is configured.
const DefaultBinary = "exiftool"

// Runner invokes an exiftool binary.
type Runner struct {
	Binary string
	// Tags restricts the dump to these short tag names. Empty means all tags.
	Tags []string
}

// New returns a Runner for binary, or DefaultBinary when binary is empty.
func New(binary string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{Binary: binary}
}

// IsAvailable returns true if the binary can be found.
func (r *Runner) IsAvailable() bool {
	_, err := exec.LookPath(r.Binary)
	return err == nil
}

// Args returns the command line used for path.
func (r *Runner) Args(path string) []string {
	// -s keeps the padded "Tag : value" layout but with short tag names.
	args := []string{"-s", "-d", "%Y:%m:%d %H:%M:%S"}
	for _, tag := range r.Tags {
		args = append(args, "-"+tag)
	}
	return append(args, "--", path)
}

// Dump runs exiftool on a single file and returns its textual listing.
func (r *Runner) Dump(ctx context.Context, path string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Binary, r.Args(path)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %w\noutput: %s", r.Binary, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Record runs Dump and parses the result.
func (r *Runner) Record(ctx context.Context, path string) (*metadata.Record, error) {
	out, err := r.Dump(ctx, path)
	if err != nil {
		return nil, err
	}
	return metadata.ParseString(out), nil
}
