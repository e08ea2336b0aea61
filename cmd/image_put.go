package cmd

import (
	"path/filepath"

	"fclip/pkg/clipboard"
	"fclip/pkg/errors"
	"fclip/pkg/logger"

	"github.com/spf13/cobra"
)

var imagePutCmd = &cobra.Command{
	Use:   "put <path>",
	Short: "Put an image file onto the clipboard",
	Long:  `Decode an image file (PNG, JPEG or GIF) and install it as the clipboard's image content.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return errors.FileOperationError("failed to resolve "+args[0], err)
		}

		if IsDryRun() {
			PrintDryRun("Would put %s onto the clipboard", path)
			return nil
		}

		if err := clipboard.PutImage(path); err != nil {
			return err
		}

		logger.Debug().Str("path", path).Msg("image placed on clipboard")
		return nil
	},
}
