// Package lib provides a Go SDK to generate sheetgantt reports programmatically.
//
// This package allows applications to build the project progress spreadsheet
// (task table plus embedded Gantt chart) without shelling out to the
// sheetgantt CLI binary.
//
// # Quick Start
//
//	client, err := lib.New(lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := client.Generate(ctx, lib.GenerateOpts{
//	    OutputPath: "progress.xlsx",
//	    Tasks: []lib.Task{
//	        {Name: "Design", Start: "2024-01-08", End: "2024-01-12", Completion: 100},
//	        {Name: "Build", Start: "2024-01-15", End: "2024-02-02", Completion: 40},
//	    },
//	})
//
// When no tasks are given the built-in project tasks are used, see [DefaultTasks].
//
// # Fonts
//
// The chart uses a Latin font by default. Task names in other scripts (e.g. CJK)
// need a font that has them, set [Config].FontData with the TrueType/OpenType
// font file content.
//
// # Errors
//
//   - [ErrNotValid]: Invalid input (e.g. end date before start date, no tasks).
package lib
