package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"blurbgen/internal/services"
)

var samplesCmd = &cobra.Command{
	Use:         "samples",
	Short:       "List the example product inputs",
	Annotations: map[string]string{skipAppInit: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Product", "Category"})
		for _, s := range services.ListSamples() {
			table.Append([]string{s.ProductName, s.Category})
		}
		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
