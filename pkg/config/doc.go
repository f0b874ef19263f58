// Package config resolves hellod application settings.
//
// The only application setting is the greeting returned when no name is
// given. It is resolved once at startup, highest precedence first:
//
//  1. --default-message flag (WithDefaultMessage)
//  2. APP_GREETING_DEFAULT_MESSAGE environment variable
//  3. app.greeting.default-message in the YAML file (--config or HELLO_CONFIG)
//  4. "Hello, World!"
//
// Example file:
//
//	app:
//	  greeting:
//	    default-message: "Welcome to the hello service!"
//
// Unknown keys in the file are rejected, as is an empty message from any
// layer. Any other message, whitespace included, is used verbatim.
// All failures carry the INVALID_CONFIG error code.
package config
