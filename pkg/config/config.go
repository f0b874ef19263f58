package config

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"

	"github.com/sbxservice/hello-service/pkg/errors"
	"github.com/sbxservice/hello-service/pkg/greeting"
	"github.com/sbxservice/hello-service/pkg/serializer"
)

const (
	// EnvDefaultMessage overrides app.greeting.default-message.
	EnvDefaultMessage = "APP_GREETING_DEFAULT_MESSAGE"
	// EnvConfigFile names the configuration file when no path is given.
	EnvConfigFile = "HELLO_CONFIG"
)

// Source identifies where a setting was resolved from.
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// Config is the resolved application configuration.
type Config struct {
	// DefaultMessage is returned for greeting requests without a name.
	DefaultMessage string `json:"defaultMessage" yaml:"defaultMessage"`
	// DefaultMessageSource records which layer supplied DefaultMessage.
	DefaultMessageSource Source `json:"defaultMessageSource" yaml:"defaultMessageSource"`
}

// fileConfig mirrors the YAML layout:
//
//	app:
//	  greeting:
//	    default-message: "Hello, World!"
type fileConfig struct {
	App struct {
		Greeting struct {
			DefaultMessage *string `yaml:"default-message"`
		} `yaml:"greeting"`
	} `yaml:"app"`
}

// Option applies an explicit override after file and environment layers.
type Option func(*Config)

// WithDefaultMessage overrides the default message, typically from a flag.
func WithDefaultMessage(msg string) Option {
	return func(c *Config) {
		c.DefaultMessage = msg
		c.DefaultMessageSource = SourceFlag
	}
}

// Load resolves the configuration. Precedence, highest first: options,
// APP_GREETING_DEFAULT_MESSAGE, the YAML file at path, the built-in default.
// An empty path falls back to HELLO_CONFIG; when both are empty no file is read.
// The result is validated.
func Load(path string, opts ...Option) (*Config, error) {
	cfg := &Config{
		DefaultMessage:       greeting.DefaultMessage,
		DefaultMessageSource: SourceDefault,
	}

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if v, ok := os.LookupEnv(EnvDefaultMessage); ok {
		cfg.DefaultMessage = v
		cfg.DefaultMessageSource = SourceEnv
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("configuration loaded",
		"defaultMessageSource", string(cfg.DefaultMessageSource),
		"file", path,
	)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	reader, err := serializer.NewFileReader(serializer.FormatYAML, path, serializer.WithStrict())
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidConfig, "failed to read config file", err,
			map[string]any{"path": path})
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close config file", "path", path, "error", closeErr)
		}
	}()

	var fc fileConfig
	if err := reader.Deserialize(&fc); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.WrapWithContext(errors.ErrCodeInvalidConfig, "failed to parse config file", err,
			map[string]any{"path": path})
	}

	if fc.App.Greeting.DefaultMessage != nil {
		c.DefaultMessage = *fc.App.Greeting.DefaultMessage
		c.DefaultMessageSource = SourceFile
	}

	return nil
}

// Validate rejects an empty default message. Any other value, including
// whitespace, is used verbatim.
func (c *Config) Validate() error {
	if c.DefaultMessage == "" {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig, "default greeting message must not be empty",
			map[string]any{"source": string(c.DefaultMessageSource)})
	}
	return nil
}
