package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fclip/pkg/clipboard"
	"fclip/pkg/completions"
	"fclip/pkg/config"
	"fclip/pkg/errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	saveFormat  string
	saveQuality float64
)

var imageSaveCmd = &cobra.Command{
	Use:   "save [target]",
	Short: "Save the clipboard image to a file",
	Long: `Save the current clipboard image as JPEG or PNG. The format is taken
from --format, then from the target file extension, then from the
configured default. Without a target argument a generated file name in the
working directory is used. The JPEG quality factor ranges 0.0 to 1.0 and
saturates at the bounds.`,
	Example: `  # Save as PNG
  fclip image save screenshot.png

  # Save as JPEG at 75% quality
  fclip image save --quality 0.75 screenshot.jpg

  # Save to a generated file name using the configured default format
  fclip image save`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		requested := saveFormat
		if requested == "" && len(args) > 0 {
			requested = formatFromExtension(args[0])
		}
		if requested == "" {
			requested = cfg.Image.DefaultFormat
		}
		format := normalizeFormat(requested)
		if format == "" {
			return errors.ValidationError(fmt.Sprintf("unsupported image format %q (use png or jpeg)", requested))
		}

		target := ""
		if len(args) > 0 {
			target = args[0]
		} else {
			ext := "png"
			if format == "jpeg" {
				ext = "jpg"
			}
			target = fmt.Sprintf("clipboard-%s.%s", uuid.NewString()[:8], ext)
		}

		if IsDryRun() {
			PrintDryRun("Would save clipboard image to %s as %s", target, format)
			return nil
		}

		if _, err := os.Stat(target); err == nil && !IsAssumeYes() {
			confirmed, err := ConfirmPrompt(fmt.Sprintf("Overwrite %s", target))
			if err != nil {
				return err
			}
			if !confirmed {
				return errors.CancelledError("save clipboard image")
			}
		}

		quality := cfg.Image.JPEGQuality
		if cmd.Flags().Changed("quality") {
			quality = saveQuality
		}

		switch format {
		case "jpeg":
			if err := clipboard.SaveImageJPEG(target, quality); err != nil {
				return err
			}
		case "png":
			if err := clipboard.SaveImagePNG(target); err != nil {
				return err
			}
		}

		fmt.Println(target)
		return nil
	},
}

func formatFromExtension(target string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(target)), ".")
}

func normalizeFormat(format string) string {
	switch strings.ToLower(format) {
	case "png":
		return "png"
	case "jpeg", "jpg":
		return "jpeg"
	default:
		return ""
	}
}

func init() {
	imageSaveCmd.Flags().StringVar(&saveFormat, "format", "", "Image format (png, jpeg); defaults to the target extension")
	imageSaveCmd.Flags().Float64Var(&saveQuality, "quality", config.DefaultJPEGQuality, "JPEG quality factor, 0.0 to 1.0")
	_ = imageSaveCmd.RegisterFlagCompletionFunc("format", completions.ImageFormats)
}
