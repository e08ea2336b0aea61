package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fclip/pkg/clipboard"
	"fclip/pkg/logger"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream clipboard file lists as they change",
	Long: `Watch the clipboard and print the file paths of every new
text/uri-list selection, one path per line with a blank line between
selections. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		changes, err := clipboard.Watch(ctx)
		if err != nil {
			return err
		}

		logger.Info().Msg("watching clipboard for file lists")
		for paths := range changes {
			for _, p := range paths {
				fmt.Println(p)
			}
			fmt.Println()
		}
		return nil
	},
}
