package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/mydehq/exifname/internal/config"
	"github.com/mydehq/exifname/internal/exiftool"
	"github.com/mydehq/exifname/internal/metadata"
	"github.com/mydehq/exifname/internal/pattern"
	"github.com/mydehq/exifname/internal/renamer"
	"github.com/mydehq/exifname/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagExif        string
	flagPattern     string
	flagPreset      string
	flagOutputDir   string
	flagDryRun      bool
	flagYes         bool
	flagConcurrency int
)

func init() {
	f := RootCmd.Flags()
	f.StringVarP(&flagExif, "exif", "e", "", "metadata dump produced by exiftool (default: run exiftool on each file)")
	f.StringVarP(&flagPattern, "pattern", "p", "", "filename pattern (default from config)")
	f.StringVar(&flagPreset, "preset", "", "use a named pattern from the config")
	f.StringVarP(&flagOutputDir, "output-dir", "o", "", "move renamed files into this directory")
	f.BoolVarP(&flagDryRun, "dry-run", "n", false, "show what would be renamed without touching files")
	f.BoolVarP(&flagYes, "yes", "y", false, "do not ask for confirmation")
	f.IntVarP(&flagConcurrency, "jobs", "j", 0, "files to inspect in parallel (default from config)")
	RootCmd.MarkFlagsMutuallyExclusive("pattern", "preset")
}

// resolvePattern compiles --pattern, --preset or the configured default.
func resolvePattern(cfg *types.GlobalConfig) (*pattern.Pattern, error) {
	tpl := flagPattern
	if tpl == "" {
		var err error
		if tpl, err = cfg.ResolvePattern(flagPreset); err != nil {
			return nil, err
		}
	}
	p, err := pattern.Compile(tpl)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using pattern", "pattern", p.String())
	return p, nil
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := resolvePattern(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if flagExif == "" {
			return cmd.Help()
		}
		return printRendered(cmd, p)
	}

	files, err := collectFiles(args, cfg.Formats)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No media files found")
		return nil
	}

	source, err := recordSource(cfg, files)
	if err != nil {
		return err
	}

	concurrency := cfg.Concurrency
	if flagConcurrency > 0 {
		concurrency = flagConcurrency
	}

	r := renamer.New(renamer.Options{
		Pattern:     p,
		Source:      source,
		TargetDir:   flagOutputDir,
		Concurrency: concurrency,
		DryRun:      flagDryRun,
		OnEvent:     logEvent,
	})

	logger.Debug("Planning renames", "files", len(files), "jobs", concurrency)
	ops, err := r.Plan(ctx, files)
	if err != nil {
		return err
	}

	pending := 0
	for _, op := range ops {
		if op.Status == renamer.StatusPending {
			pending++
		}
	}
	if flagDryRun {
		fmt.Fprintln(cmd.ErrOrStderr(), styleFlag.Render("[DRY RUN]"))
	} else if pending > 0 && !flagYes {
		ok, err := confirm(pending)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info(StyleDim.Render("Rename cancelled"))
			return nil
		}
	}

	res, err := r.Execute(ctx, ops)
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("%s %d renamed, %d unchanged, %d conflicts, %d failed",
		StyleHeader.Render("Done:"), res.Renamed, res.Skipped, res.Conflicts, res.Failed))
	if res.Failed > 0 || res.Conflicts > 0 {
		return errSilent
	}
	return nil
}

// printRendered renders the --exif dump without renaming anything.
func printRendered(cmd *cobra.Command, p *pattern.Pattern) error {
	rec, err := metadata.ParseFile(flagExif)
	if err != nil {
		return err
	}
	name, err := p.Render(pattern.Context{Record: rec})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}

// collectFiles expands directories into the media files they contain.
func collectFiles(args []string, formats []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		scan, err := config.Scan(arg, formats)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory: %w", err)
		}
		logger.Debug("Scanned directory", "path", arg, "media", len(scan.Files), "entries", scan.TotalFiles)
		files = append(files, scan.Files...)
	}
	return files, nil
}

// recordSource reads --exif when given, otherwise runs exiftool per file.
func recordSource(cfg *types.GlobalConfig, files []string) (renamer.RecordSource, error) {
	if flagExif != "" {
		if len(files) != 1 {
			return nil, errors.New("--exif can only be used with a single file")
		}
		rec, err := metadata.ParseFile(flagExif)
		if err != nil {
			return nil, err
		}
		return func(context.Context, string) (*metadata.Record, error) { return rec, nil }, nil
	}

	runner := exiftool.New(cfg.Exiftool.Binary)
	runner.Tags = cfg.Exiftool.Tags
	if !runner.IsAvailable() {
		return nil, fmt.Errorf("%s not found in $PATH; install it or pass --exif", runner.Binary)
	}
	return runner.Record, nil
}

func logEvent(e renamer.Event) {
	msg := colorizeEvent(e.Message)
	switch e.Type {
	case renamer.EventSuccess, renamer.EventInfo:
		logger.Info(msg)
	case renamer.EventWarning:
		logger.Warn(msg)
	case renamer.EventError:
		logger.Error(msg)
	default:
		logger.Debug(msg)
	}
}

// confirm asks before renaming; non-interactive sessions require --yes.
func confirm(n int) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return false, errors.New("refusing to rename without a terminal; pass --yes")
	}
	ok := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Rename %d files?", n)).
				Affirmative("Rename").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(exifnameTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}
