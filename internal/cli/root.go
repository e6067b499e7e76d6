// Package cli implements the exifname command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mydehq/exifname/internal/config"
	"github.com/mydehq/exifname/internal/types"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

var (
	flagConfig  string
	flagVerbose bool
	flagQuiet   bool
)

// errSilent marks failures that were already logged.
var errSilent = errors.New("exit")

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "exifname [file|dir...]",
	Short: "Rename photos from their EXIF metadata",
	Long: `Renames media files using a template filled from exiftool metadata.

Placeholders such as {Y}, {m}, {D}, {t}, {r}, {e} and {T2} are replaced
with the capture date, image number, extension and camera model.
Run "exifname tokens" for the full list.

Without files, the name rendered from --exif is printed instead.`,
	Example: `  exifname -p "{y}{m}{D}_{t}_{r}.{e}" DCIM/100CANON
  exifname -e IMG_1234.txt -p "{Y}-{m}-{D}_{T2}_{r}.{e}" IMG_1234.JPG
  exifname -e IMG_1234.txt -p "{y}{m}{D}.{e}"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureStyles()
		switch {
		case flagVerbose:
			logger.SetLevel(log.DebugLevel)
		case flagQuiet:
			logger.SetLevel(log.WarnLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRename(cmd, args)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/exifname/config.yml)")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only log warnings and errors")
	RootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errSilent) {
			logger.Error(err.Error())
		}
		return 1
	}
	return 0
}

// loadConfig reads --config or the global config file.
func loadConfig() (*types.GlobalConfig, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	cfg, err := config.LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
