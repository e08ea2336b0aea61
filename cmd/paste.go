package cmd

import (
	"fmt"

	"fclip/pkg/clipboard"

	"github.com/spf13/cobra"
)

var pasteNull bool

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Print the file paths on the clipboard",
	Long: `Read the clipboard's text/uri-list selection and print the file
paths it represents, one per line. Exits with a distinct status when the
clipboard is empty or holds no file URIs.`,
	Example: `  # Print clipboard file paths
  fclip paste

  # NUL-separated output for xargs -0
  fclip paste --null | xargs -0 ls -l`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := clipboard.ReadFilePaths()
		if err != nil {
			return err
		}

		for _, p := range paths {
			if pasteNull {
				fmt.Printf("%s\x00", p)
			} else {
				fmt.Println(p)
			}
		}
		return nil
	},
}

func init() {
	pasteCmd.Flags().BoolVarP(&pasteNull, "null", "0", false, "Separate paths with NUL instead of newline")
}
