// Package completions registers shell completion helpers for fclip's
// enumerable flags.
package completions

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	imageFormats = []string{"png", "jpeg"}
	logLevels    = []string{"debug", "info", "warn", "error", "fatal", "panic"}
)

func RegisterCompletions(root *cobra.Command) {
	_ = root.RegisterFlagCompletionFunc("log-level", Static(logLevels))
}

// ImageFormats completes the --format flag of the image commands.
func ImageFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return Static(imageFormats)(cmd, args, toComplete)
}

// Static returns a completion function over a fixed word list.
func Static(words []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string
		for _, w := range words {
			if strings.HasPrefix(w, toComplete) {
				matches = append(matches, w)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}
