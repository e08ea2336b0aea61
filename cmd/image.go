package cmd

import "github.com/spf13/cobra"

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Clipboard image operations",
	Long:  `Save the clipboard image to a file, put an image file onto the clipboard, or check whether an image is present.`,
}
