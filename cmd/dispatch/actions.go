package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List actions of the demo controller",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range demoRegistry().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
