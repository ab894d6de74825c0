package cmd

import (
	"github.com/spf13/cobra"

	"blurbgen/internal/driver"
	"blurbgen/internal/services"
)

var loopOpts = driver.DefaultOptions

var loopCmd = &cobra.Command{
	Use:         "loop",
	Short:       "Post every sample to a running server and print the results",
	Annotations: map[string]string{skipAppInit: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := driver.Run(cmd.Context(), cmd.OutOrStdout(), loopOpts, services.ListSamples())
		return err
	},
}

func init() {
	rootCmd.AddCommand(loopCmd)

	loopCmd.Flags().StringVar(&loopOpts.BaseURL, "url", driver.DefaultOptions.BaseURL, "Base URL of the running server")
	loopCmd.Flags().DurationVar(&loopOpts.Timeout, "timeout", driver.DefaultOptions.Timeout, "Per-request timeout")
	loopCmd.Flags().DurationVar(&loopOpts.Delay, "delay", driver.DefaultOptions.Delay, "Pause between requests")
}
