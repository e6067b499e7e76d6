// Package renamer plans and applies pattern-based renames for a batch of files.
package renamer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mydehq/exifname/internal/pattern"
	"github.com/mydehq/exifname/internal/types"
	"golang.org/x/sync/errgroup"
)

// Options configures a Renamer.
type Options struct {
	Pattern     *pattern.Pattern
	Source      RecordSource
	TargetDir   string // empty keeps each file in its own directory
	Concurrency int
	DryRun      bool
	OnEvent     func(Event)
}

// Renamer applies one compiled pattern to many files.
type Renamer struct {
	opts Options
}

// New creates a Renamer.
func New(opts Options) *Renamer {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Renamer{opts: opts}
}

func (r *Renamer) emit(t EventType, format string, args ...any) {
	if r.opts.OnEvent != nil {
		r.opts.OnEvent(Event{Type: t, Message: fmt.Sprintf(format, args...)})
	}
}

// Plan resolves the target name of every path. Per-file failures are
// recorded on the operation; only context cancellation aborts planning.
func (r *Renamer) Plan(ctx context.Context, paths []string) ([]Operation, error) {
	if r.opts.Pattern == nil {
		return nil, errors.New("renamer: no pattern configured")
	}
	if r.opts.Source == nil {
		return nil, errors.New("renamer: no metadata source configured")
	}

	ops := make([]Operation, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ops[i] = r.planOne(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.markConflicts(ops)
	return ops, nil
}

func (r *Renamer) planOne(ctx context.Context, path string) Operation {
	op := Operation{SourcePath: path}

	rec, err := r.opts.Source(ctx, path)
	if err != nil {
		op.Status, op.Err = StatusFailed, fmt.Errorf("failed to read metadata: %w", err)
		return op
	}

	name, err := r.opts.Pattern.Render(pattern.Context{Record: rec, Filename: filepath.Base(path)})
	if err != nil {
		op.Status, op.Err = StatusFailed, err
		return op
	}
	if err := validateName(name); err != nil {
		op.Status, op.Err = StatusFailed, err
		return op
	}

	dir := r.opts.TargetDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	op.TargetPath = filepath.Join(dir, name)
	if filepath.Clean(op.TargetPath) == filepath.Clean(path) {
		op.Status = StatusSkipped
	}
	return op
}

// validateName rejects names that would leave the target directory.
func validateName(name string) error {
	switch {
	case name == "":
		return types.ErrInvalidTarget{Name: name, Reason: "empty name"}
	case name == "." || name == "..":
		return types.ErrInvalidTarget{Name: name, Reason: "reserved name"}
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return types.ErrInvalidTarget{Name: name, Reason: "contains a path separator"}
	case strings.ContainsRune(name, 0):
		return types.ErrInvalidTarget{Name: name, Reason: "contains a NUL byte"}
	}
	return nil
}

// markConflicts flags pending operations whose target is already claimed,
// either by an earlier operation in the batch or by an existing file. An
// existing target that is the source itself (case-only rename on a
// case-insensitive filesystem) is not a conflict.
func (r *Renamer) markConflicts(ops []Operation) {
	claimed := make(map[string]string, len(ops))
	for i := range ops {
		op := &ops[i]
		if op.Status != StatusPending {
			continue
		}
		target := filepath.Clean(op.TargetPath)
		if first, ok := claimed[target]; ok {
			op.Status, op.Err = StatusConflict, fmt.Errorf("target also produced by %s", filepath.Base(first))
			continue
		}
		claimed[target] = op.SourcePath

		if exists(target) && !sameFile(op.SourcePath, target) {
			op.Status, op.Err = StatusConflict, errors.New("target already exists")
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func sameFile(a, b string) bool {
	fa, err := os.Lstat(a)
	if err != nil {
		return false
	}
	fb, err := os.Lstat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}

// Execute applies pending operations in order. Existing files are never
// overwritten. In dry-run mode nothing is touched.
func (r *Renamer) Execute(ctx context.Context, ops []Operation) (Result, error) {
	var res Result

	for i := range ops {
		op := &ops[i]
		if err := ctx.Err(); err != nil {
			return res, err
		}

		switch op.Status {
		case StatusSkipped:
			res.Skipped++
			r.emit(EventDebug, "Unchanged: %s", filepath.Base(op.SourcePath))
			continue
		case StatusConflict:
			res.Conflicts++
			r.emit(EventWarning, "Conflict: %s → %s (%v)", filepath.Base(op.SourcePath), filepath.Base(op.TargetPath), op.Err)
			continue
		case StatusFailed:
			res.Failed++
			r.emit(EventError, "Failed: %s (%v)", filepath.Base(op.SourcePath), op.Err)
			continue
		case StatusDone:
			continue
		}

		if r.opts.DryRun {
			res.Renamed++
			r.emit(EventInfo, "Would rename: %s → %s", filepath.Base(op.SourcePath), filepath.Base(op.TargetPath))
			continue
		}

		if err := renameNoClobber(op.SourcePath, op.TargetPath); err != nil {
			op.Status, op.Err = StatusFailed, err
			res.Failed++
			r.emit(EventError, "Failed: %s (%v)", filepath.Base(op.SourcePath), err)
			continue
		}
		op.Status = StatusDone
		res.Renamed++
		r.emit(EventSuccess, "Renamed: %s → %s", filepath.Base(op.SourcePath), filepath.Base(op.TargetPath))
	}

	return res, nil
}

func renameNoClobber(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		if !sameFile(src, dst) {
			return fmt.Errorf("target %s already exists", dst)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat target: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create target dir: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename: %w", err)
	}
	return nil
}
