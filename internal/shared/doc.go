// Package shared holds code used across orgpulse packages that belongs to
// no single layer.
//
// The testutil subpackage provides:
//
//	- a buffered slog handler for asserting on log output
//	- dataset fixtures, in memory and written to a temporary directory
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, handler := testutil.NewTestLogger(t)
//	    dir := testutil.WriteDatasetDir(t, testutil.SampleDataset())
//	    ...
//	    testutil.AssertLogContains(t, handler, slog.LevelInfo, "Dataset loaded")
//	}
//
// Nothing in this package may import other internal packages.
package shared
