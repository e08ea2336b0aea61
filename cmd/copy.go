package cmd

import (
	"path/filepath"

	"fclip/pkg/clipboard"
	"fclip/pkg/config"
	"fclip/pkg/errors"
	"fclip/pkg/logger"

	"github.com/spf13/cobra"
)

var copyStrict bool

var copyCmd = &cobra.Command{
	Use:   "copy <path>...",
	Short: "Copy file paths to the clipboard",
	Long: `Copy one or more file paths to the clipboard as a text/uri-list
selection with a plain-text fallback. Relative paths are resolved against
the working directory before conversion. Paths that cannot be converted to
a URI are silently dropped unless --strict is given.`,
	Example: `  # Copy two files
  fclip copy /tmp/a.txt /tmp/b.txt

  # Fail instead of dropping unconvertible paths
  fclip copy --strict ./report.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()
		strict := copyStrict || cfg.Clipboard.StrictConversions

		paths := make([]string, 0, len(args))
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			if err != nil {
				if strict {
					return errors.ConversionError([]string{arg})
				}
				logger.Debug().Str("path", arg).Err(err).Msg("dropping path that failed to resolve")
				continue
			}
			paths = append(paths, abs)
		}

		if IsDryRun() {
			PrintDryRun("Would copy %d path(s) to the clipboard", len(paths))
			return nil
		}

		var err error
		if strict {
			err = clipboard.WriteFilePathsStrict(paths)
		} else {
			err = clipboard.WriteFilePaths(paths)
		}
		if err != nil {
			return err
		}

		logger.Debug().Int("count", len(paths)).Msg("copied file paths to clipboard")
		return nil
	},
}

func init() {
	copyCmd.Flags().BoolVar(&copyStrict, "strict", false, "Fail if any path cannot be converted to a URI")
}
