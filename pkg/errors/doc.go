// Package errors provides structured error types for better observability
// and programmatic error handling across the service.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidConfig,
//	    "failed to read config file",
//	    readErr,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
package errors
