package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sbxservice/hello-service/pkg/api"
	"github.com/sbxservice/hello-service/pkg/config"
	"github.com/sbxservice/hello-service/pkg/header"
	"github.com/sbxservice/hello-service/pkg/server"
)

type configDocument struct {
	header.Header `yaml:",inline"`

	App    *config.Config `json:"app" yaml:"app"`
	Server serverSettings `json:"server" yaml:"server"`
}

type serverSettings struct {
	Address           string  `json:"address" yaml:"address"`
	RateLimit         float64 `json:"rateLimit" yaml:"rateLimit"`
	RateLimitBurst    int     `json:"rateLimitBurst" yaml:"rateLimitBurst"`
	ReadTimeout       string  `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout string  `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      string  `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       string  `json:"idleTimeout" yaml:"idleTimeout"`
	ShutdownTimeout   string  `json:"shutdownTimeout" yaml:"shutdownTimeout"`
}

func newServerSettings(sc *server.Config) serverSettings {
	return serverSettings{
		Address:           sc.Addr(),
		RateLimit:         float64(sc.RateLimit),
		RateLimitBurst:    sc.RateLimitBurst,
		ReadTimeout:       sc.ReadTimeout.String(),
		ReadHeaderTimeout: sc.ReadHeaderTimeout.String(),
		WriteTimeout:      sc.WriteTimeout.String(),
		IdleTimeout:       sc.IdleTimeout.String(),
		ShutdownTimeout:   sc.ShutdownTimeout.String(),
	}
}

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the resolved configuration without starting the server",
		Description: `Resolves flags, environment and the config file exactly as serve does
and prints the result, including where the default message came from.

# Examples

  hellod config
  APP_GREETING_DEFAULT_MESSAGE="Hi" hellod config --format yaml
  hellod config --config /etc/hellod/config.yaml --port 9000`,
		Flags: append(serveFlags(), outputFlag(), formatFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			sc := serverConfig(cmd)
			if err := sc.Validate(); err != nil {
				return err
			}

			doc := configDocument{App: cfg, Server: newServerSettings(sc)}
			doc.Init(header.KindConfig, api.Version(), time.Now())

			return writeOutput(ctx, outFormat, cmd.String(outputFlagName), doc)
		},
	}
}
