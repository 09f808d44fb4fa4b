// Package services implements the business logic layer of orgpulse. It
// sits between the HTTP handlers or the CLI and the pure chart builders in
// internal/dataprocessing.
//
// # Services
//
//	- ChartService: owns the loaded dataset and its department index, builds
//	  histograms, the heatmap, social graphs and the dashboard, and exports
//	  charts as CSV or XLSX
//	- HealthService: liveness and readiness reporting
//
// # Concurrency
//
// The dataset and its DepartmentIndex are replaced atomically by
// SetDataset or LoadDirectory and are read-only afterwards, so chart builds
// run concurrently without locking beyond a snapshot read. Dashboard fans
// out one goroutine per department with errgroup.
//
// # Error Handling
//
// Services return sentinel errors that handlers map to HTTP problems:
//
//	- ErrDepartmentNotFound for departments outside the fixed set
//	- ErrDatasetNotLoaded before a dataset is available
//	- ErrUnknownChart and ErrUnsupportedFormat for export requests
package services
