package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	// Adaptive Color definitions
	colorHeader = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af00", ANSI256: "34", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#008700", ANSI256: "28", ANSI: "2"},
	}
	colorCommand = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffff", ANSI256: "86", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f5fff", ANSI256: "63", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorPattern = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#d7ff87", ANSI256: "192", ANSI: "11"},
		Light: lipgloss.CompleteColor{TrueColor: "#5f8700", ANSI256: "64", ANSI: "10"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#9e9e9e", ANSI256: "247", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#444444", ANSI256: "238", ANSI: "0"},
	}
	colorFlag = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ff5faf", ANSI256: "204", ANSI: "13"},
		Light: lipgloss.CompleteColor{TrueColor: "#af005f", ANSI256: "125", ANSI: "5"},
	}

	// Exported Styles for CLI output
	StyleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorCommand)
	StylePath    = lipgloss.NewStyle().Foreground(colorPath)
	StylePattern = lipgloss.NewStyle().Foreground(colorPattern)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleFlag    = lipgloss.NewStyle().Italic(true).Foreground(colorFlag)
)

// levelStyles are the padded level badges shown by the logger.
var levelStyles = []struct {
	level log.Level
	label string
	color string
}{
	{log.DebugLevel, "DEBUG", "63"},
	{log.InfoLevel, "INFO ", "86"},
	{log.WarnLevel, "WARN ", "192"},
	{log.ErrorLevel, "ERROR", "204"},
}

func configureStyles() {
	styles := log.DefaultStyles()
	for _, ls := range levelStyles {
		styles.Levels[ls.level] = lipgloss.NewStyle().
			SetString(ls.label).
			Bold(true).
			Foreground(lipgloss.Color(ls.color))
	}
	logger.SetStyles(styles)
}

func exifnameTheme() *huh.Theme {
	return huh.ThemeCatppuccin()
}

// colorizeEvent adds CLI styling to known event message patterns.
func colorizeEvent(msg string) string {
	// Messages with "→": "Renamed: old.jpg → new.jpg"
	if parts := strings.SplitN(msg, " → ", 2); len(parts) == 2 {
		left := parts[0]
		right := parts[1]

		var label, oldName string
		if idx := strings.Index(left, ": "); idx >= 0 {
			label = StyleHeader.Render(left[:idx+1]) + " "
			oldName = left[idx+2:]
		} else {
			oldName = left
		}

		return fmt.Sprintf("%s%s %s %s",
			label,
			StyleDim.Render(oldName),
			StyleDim.Render("→"),
			StyleCommand.Render(right),
		)
	}

	// Messages with ": " label: "Failed: file.jpg (reason)"
	if idx := strings.Index(msg, ": "); idx >= 0 {
		label := msg[:idx+1]
		value := msg[idx+2:]
		return fmt.Sprintf("%s %s", StyleHeader.Render(label), StylePath.Render(value))
	}

	return msg
}
