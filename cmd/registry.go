package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)
	root.AddCommand(clipboardServeCmd)

	root.AddCommand(copyCmd)
	root.AddCommand(pasteCmd)
	root.AddCommand(clearCmd)
	root.AddCommand(imageCmd)
	root.AddCommand(watchCmd)
	root.AddCommand(configCmd)

	imageCmd.AddCommand(
		imageSaveCmd,
		imagePutCmd,
		imageStatusCmd,
	)
}
