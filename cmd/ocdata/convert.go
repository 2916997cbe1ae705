package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/odourcollect/ocdata"
	"github.com/odourcollect/ocdata/pkg/adapters/tabular"
	"github.com/odourcollect/ocdata/pkg/core"
)

var (
	convertProfile string
	convertFormat  string
	convertOut     string
	convertStrict  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Load an export, run its profile's filters and optionally export the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profile, err := core.ParseProfile(convertProfile)
		if err != nil {
			fatal("invalid profile", err)
		}
		format, err := tabular.ParseFormat(convertFormat)
		if err != nil {
			fatal("invalid format", err)
		}

		opts := []ocdata.Option{
			ocdata.WithProfile(profile),
			ocdata.WithFormat(format),
			ocdata.WithLogger(slog.Default()),
		}
		if convertStrict {
			opts = append(opts, ocdata.WithUnmappedPolicy(ocdata.Fail))
		}

		ds, err := ocdata.Load(args[0], opts...)
		if err != nil {
			fatal("conversion failed", err)
		}

		t := ds.Table()
		fmt.Printf("%s: %d rows, %d columns (%s profile)\n", ds.Name(), t.Rows(), t.Width(), ds.Profile())

		if convertOut != "" {
			if err := ocdata.Export(convertOut, t); err != nil {
				fatal("export failed", err)
			}
			fmt.Printf("exported to %s\n", convertOut)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertProfile, "profile", string(core.ProfileObservation), "Dataset profile (observation or analysis)")
	convertCmd.Flags().StringVar(&convertFormat, "format", string(tabular.FormatAuto), "Input file type hint (auto, csv, xlsx)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Write the normalized table to this .csv or .xlsx file")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "Fail on unrecognized literal values instead of passing them through")
}
