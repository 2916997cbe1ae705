package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odourcollect/ocdata/pkg/filters"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the registered filter names in catalog order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range filters.DefaultRegistry().Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
