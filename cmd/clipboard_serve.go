package cmd

import (
	"encoding/json"
	"os"

	"fclip/pkg/clipboard"

	"github.com/spf13/cobra"
)

var clipboardServeCmd = &cobra.Command{
	Use:    "__clipboard-serve",
	Hidden: true,
	Short:  "Internal: serve clipboard content over Wayland (do not call directly)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var payload clipboard.OwnerPayload
		if err := json.NewDecoder(os.Stdin).Decode(&payload); err != nil {
			return err
		}
		return clipboard.ServeSelection(payload)
	},
}
