package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odourcollect/ocdata"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ocdata",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ocdata version %s\n", ocdata.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
