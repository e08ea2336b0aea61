package cmd

import (
	"fclip/pkg/clipboard"
	"fclip/pkg/logger"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the clipboard",
	Long:  `Discard the current clipboard content, including any image selection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsDryRun() {
			PrintDryRun("Would clear the clipboard")
			return nil
		}

		if err := clipboard.Clear(); err != nil {
			return err
		}

		logger.Debug().Msg("clipboard cleared")
		return nil
	},
}
