package main

import (
	"github.com/spf13/cobra"

	cmerrors "github.com/abatilo/checkmate/internal/errors"
)

// themeCmd implements 'checkmate theme'.
func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [show|toggle|dark|light]",
		Short:     "Show or change the display theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"show", "toggle", "dark", "light"},
		Run: func(cmd *cobra.Command, args []string) {
			action := "show"
			if len(args) == 1 {
				action = args[0]
			}

			a := mustOpenApp(cmd)
			defer a.close()

			dark := a.dark
			switch action {
			case "show":
				printOutput(formatter.FormatTheme(dark))
				return
			case "toggle":
				dark = !dark
			case "dark":
				dark = true
			case "light":
				dark = false
			default:
				printError(cmerrors.InvalidThemeError{Value: action})
			}

			a.adapter.SavePreference(cmd.Context(), dark)
			a.dark = dark
			setFormatter(dark)
			printOutput(formatter.FormatTheme(dark))
		},
	}
}
