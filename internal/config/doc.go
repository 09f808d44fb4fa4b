// Package config provides centralized configuration management for orgpulse.
// It handles loading configuration from multiple sources, validation, and provides
// a type-safe API for accessing configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is layered, later sources overriding earlier ones:
//
//	1. Default values (Default)
//	2. A YAML file (ORGPULSE_CONFIG, or config.yaml in the working directory)
//	3. Environment variables (highest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern ORGPULSE_<SECTION>_<FIELD>:
//
//	ORGPULSE_SERVER_PORT=8080
//	ORGPULSE_PATHS_DATA_DIR=/srv/orgpulse/data
//	ORGPULSE_ANALYTICS_BIN_WIDTH=30m
//	ORGPULSE_ANALYTICS_TIMEZONE=Asia/Shanghai
//	ORGPULSE_LOGGING_LEVEL=debug
//
// # Path Management
//
// ResolvePaths turns the configured directories into absolute paths:
//
//	paths, err := config.ResolvePaths(cfg.Paths)
//	out := paths.GetExportPath("heatmap.xlsx")
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
