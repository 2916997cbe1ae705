package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/odourcollect/ocdata"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Load the export named by TEST_PATH and report the result",
	Long: `Reads TEST_PATH (and optionally MAPBOX_API_KEY) from the environment or
a .env file, builds an observation dataset from it and prints a summary.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		path := os.Getenv("TEST_PATH")
		if path == "" {
			fatal("selftest", fmt.Errorf("TEST_PATH is not set"))
		}
		if os.Getenv("MAPBOX_API_KEY") == "" {
			slog.Warn("MAPBOX_API_KEY is not set; map rendering downstream will not work")
		}

		ds, err := ocdata.Load(path,
			ocdata.WithProfile(ocdata.ProfileObservation),
			ocdata.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("selftest", err)
		}

		t := ds.Table()
		fmt.Printf("ok: %s loaded as %d rows x %d columns\n", ds.Name(), t.Rows(), t.Width())
		for _, col := range t.Columns() {
			fmt.Printf("  %-20s %s\n", col.Name, col.Kind)
		}
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}
