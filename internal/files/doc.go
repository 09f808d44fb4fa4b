// Package files provides file system operations and discovery utilities
// for orgpulse.
//
// Discovery locates the dataset files in a data directory. Each dataset
// kind (profiles, check events, interactions, in-degree) may be stored as
// JSON or as an Excel workbook.
//
// Manager writes exports and other artifacts relative to the configured
// application paths.
//
// Example usage:
//
//	discovery := files.NewDiscovery(paths.BaseDir)
//	dataset, err := discovery.FindDataset("data")
//
//	manager := files.NewManager(paths, logger)
//	err = manager.WriteFile("exports/heatmap.csv", data)
package files
