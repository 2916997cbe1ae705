// Package ocdata is the public entry point for the OdourCollect export
// normalization toolkit.
//
// It connects the core filter pipeline (Domain Layer) with the tabular
// file adapters (Persistence Layer) using the Hexagonal Architecture
// pattern.
//
// Philosophy:
//
// OdourCollect's citizen-submitted exports accumulated years of schema
// drift: misspelled column names, missing user ids, categorical text where
// analysts need numbers. ocdata loads an export into an in-memory table
// and runs an ordered list of corrective filters over it, once, at
// construction time. The result is a typed dataset ready for analysis.
//
// Features:
//
//   - **Ordered filter pipeline**: a static catalog of named Table→Table steps.
//   - **Two profiles**: Observation (full normalization) and Analysis (cast only).
//   - **CSV and XLSX ingest**: text-only loading, first sheet for spreadsheets.
//   - **Map-config store**: named .conf mappings parsed as structured data.
//   - **Extensible**: custom catalogs via WithRegistry, custom sources via core.Source.
//
// Usage:
//
//	ds, err := ocdata.Load("export.csv",
//		ocdata.WithProfile(ocdata.ProfileObservation),
//		ocdata.WithLogger(logger),
//	)
//
//	// Write the normalized table back out
//	err = ocdata.Export("export_analysis.xlsx", ds.Table())
package ocdata
