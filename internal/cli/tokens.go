package cli

import (
	"fmt"

	"github.com/mydehq/exifname/internal/pattern"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the placeholders a pattern can use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, StyleHeader.Render("Placeholders"))
		for _, info := range pattern.Vocabulary {
			fmt.Fprintf(out, " %-6s %-45s %s\n",
				StylePattern.Render(info.Token.String()),
				info.Description,
				StyleDim.Render("e.g. "+info.Example),
			)
		}
		fmt.Fprintf(out, "\n%s\n", StyleDim.Render("Use {{ and }} for literal braces."))
	},
}

func init() {
	RootCmd.AddCommand(tokensCmd)
}
