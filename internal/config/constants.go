package config

import "time"

// Application constants
const (
	AppName = "orgpulse"

	// Default configuration file name, looked up in the working directory
	DefaultConfigFile = "config.yaml"

	// Maximum size of an uploaded or loaded dataset file
	MaxDatasetFileSize = 256 << 20

	// Timeout for the startup health check
	StartupCheckTimeout = 5 * time.Second

	// Export content types
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
