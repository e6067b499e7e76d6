package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/mydehq/exifname/internal/exiftool"
	"github.com/mydehq/exifname/internal/metadata"
	"github.com/mydehq/exifname/internal/pattern"
	"github.com/spf13/cobra"
)

var flagInspectExif string

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show the metadata fields a pattern would see",
	Long: `Parses a metadata dump (--exif) or runs exiftool on a file and prints
the fields the date, camera and filename placeholders resolve from.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rec *metadata.Record
		var err error
		switch {
		case flagInspectExif != "":
			rec, err = metadata.ParseFile(flagInspectExif)
		case len(args) == 1:
			cfg, cfgErr := loadConfig()
			if cfgErr != nil {
				return cfgErr
			}
			rec, err = exiftool.New(cfg.Exiftool.Binary).Record(cmd.Context(), args[0])
		default:
			return cmd.Help()
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tags := rec.Tags()
		keys := make([]string, 0, len(tags))
		for k := range tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(out, "%s (%d)\n", StyleHeader.Render("Fields"), len(keys))
		for _, k := range keys {
			fmt.Fprintf(out, " %-32s %s\n", StyleDim.Render(k), tags[k])
		}

		fmt.Fprintf(out, "\n%s\n", StyleHeader.Render("Resolved"))
		for _, tag := range []string{metadata.TagDateTimeOriginal, metadata.TagCameraModel, metadata.TagFileName} {
			v, ok := rec.Lookup(tag)
			if !ok {
				v = StyleDim.Render("(missing)")
			}
			fmt.Fprintf(out, " %-32s %s\n", tag, v)
		}

		filename := ""
		if len(args) == 1 {
			filename = args[0]
		}
		sample, err := pattern.MustCompile("{Y}-{m}-{D} {H}:{M}:{S} W{W} {a}").Render(pattern.Context{Record: rec, Filename: filename})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", StyleDim.Render("timestamp:"), err)
			return nil
		}
		fmt.Fprintf(out, " %-32s %s\n", "Capture time", StylePattern.Render(sample))
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&flagInspectExif, "exif", "e", "", "metadata dump to parse")
	RootCmd.AddCommand(inspectCmd)
}
