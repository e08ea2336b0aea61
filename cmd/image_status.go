package cmd

import (
	"fmt"

	"fclip/pkg/clipboard"
	"fclip/pkg/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusQuiet bool

var imageStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the clipboard holds an image",
	Long: `Check for image content on the clipboard without saving it. Exits
with status 0 when an image is present and a no-data status otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if clipboard.HasImage() {
			if !statusQuiet {
				green := color.New(color.FgGreen)
				_, _ = green.Println("image present")
			}
			return nil
		}

		if !statusQuiet {
			fmt.Println("no image")
		}
		return errors.NoDataError("clipboard holds no image")
	},
}

func init() {
	imageStatusCmd.Flags().BoolVarP(&statusQuiet, "quiet", "q", false, "Suppress output, report via exit status only")
}
