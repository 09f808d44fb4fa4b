// Package dataprocessing turns organizational records into chart-ready
// structures. It covers the complete path from dataset files to chart
// results.
//
// # Architecture
//
//  1. Loader: reads profiles, check events, interactions and in-degree
//     records from JSON files or Excel workbooks
//  2. DepartmentIndex: the employee to department lookup and the fixed
//     row order shared by every chart
//  3. Builders: BuildBarChart, BuildHeatmap and BuildGraph
//
// # Usage
//
//	loader := dataprocessing.NewLoader(time.Local, logger)
//	dataset, err := loader.Load(ctx, files)
//	if err != nil {
//	    return err
//	}
//
//	idx := dataprocessing.NewDepartmentIndex(dataset.Profiles)
//	opts := dataprocessing.DefaultOptions()
//
//	bars := dataprocessing.BuildBarChart(idx, dataset.CheckEvents, domain.DepartmentHR, opts)
//	heat := dataprocessing.BuildHeatmap(idx, dataset.CheckEvents, opts)
//	graph := dataprocessing.BuildGraph(dataset.GraphInput(), domain.DepartmentHR, opts)
//
// # Data Flow
//
//	Files → Loader → Dataset → DepartmentIndex → Builders → chart results
//
// # Error Handling
//
// Only the loader returns errors. The builders never fail: missing punches,
// implausible shift lengths and unknown departments degrade to zero values
// or are left out of department-scoped views.
//
// # Concurrency
//
// Builders are pure functions. They never modify their inputs, and a
// DepartmentIndex is read-only once built, so any number of builds may
// run in parallel over the same dataset.
package dataprocessing
