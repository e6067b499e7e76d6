package cli

import (
	"fmt"
	"os"

	"github.com/mydehq/exifname/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "Prints the config file location and the effective settings. With --init, writes the defaults to that location.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			var err error
			if path, err = config.GlobalPath(); err != nil {
				return err
			}
		}

		if flagConfigInit {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			defaults := config.GetDefaults()
			if err := config.Save(path, &defaults); err != nil {
				return err
			}
			logger.Info(colorizeEvent("Wrote: " + path))
			return nil
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n\n", StyleHeader.Render("Config:"), StylePath.Render(path))
		fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "write the default configuration")
	RootCmd.AddCommand(configCmd)
}
