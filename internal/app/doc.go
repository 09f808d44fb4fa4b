// Package app wires the orgpulse server together and manages its
// lifecycle.
//
// # Initialization Flow
//
//	1. Load configuration from defaults, config.yaml and ORGPULSE_* variables
//	2. Initialize logging and OpenTelemetry
//	3. Build the chart and health services
//	4. Set up middleware, handlers and the problem mappings
//	5. Load the dataset and start the HTTP server
//	6. Shut down gracefully on SIGINT or SIGTERM
//
// # Usage
//
//	app, err := app.NewApplication(nil, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Run(); err != nil {
//	    log.Fatal(err)
//	}
package app
