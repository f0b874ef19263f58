// Package cli implements the hellod command-line interface.
//
// # Commands
//
// serve (default) - Run the HTTP greeting service:
//
//	hellod [serve] [--config FILE] [--default-message TEXT] [--port N]
//
// info - Print the host diagnostics embedded in greeting responses:
//
//	hellod info [--format json|yaml|table] [--output FILE]
//
// config - Print the resolved configuration and where each value came from:
//
//	hellod config [serve flags] [--format json|yaml|table] [--output FILE]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL                      Logging verbosity
//	HELLO_CONFIG                   Config file path
//	APP_GREETING_DEFAULT_MESSAGE   Default greeting
//	PORT                           Listen port
//	SHUTDOWN_TIMEOUT_SECONDS       Graceful shutdown window
//	OTEL_EXPORTER_OTLP_ENDPOINT    Enables OTLP/HTTP trace export
//
// # Exit Codes
//
//	0  Success
//	1  Invalid configuration or server failure
//
// The CLI uses the urfave/cli/v3 framework and delegates to pkg/api,
// pkg/config, pkg/diagnostics, pkg/header and pkg/serializer.
package cli
