package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"blurbgen/internal/models"
	"blurbgen/internal/util"
)

var generateCmd = &cobra.Command{
	Use:   "generate <product_name> <category>",
	Short: "Generate one description with the configured backend",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		defer appInstance.Close()

		req, err := util.SanitizeRequest(models.GenerationRequest{ProductName: args[0], Category: args[1]}, appInstance.Sanitize)
		if err != nil {
			return err
		}

		description, err := appInstance.Generator.Generate(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
