package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sbxservice/hello-service/pkg/api"
	"github.com/sbxservice/hello-service/pkg/config"
	"github.com/sbxservice/hello-service/pkg/server"
)

const (
	configFlagName         = "config"
	defaultMessageFlagName = "default-message"
	portFlagName           = "port"
)

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlagName,
			Aliases: []string{"c"},
			Usage:   "YAML config file (app.greeting.default-message)",
			Sources: cli.EnvVars(config.EnvConfigFile),
		},
		&cli.StringFlag{
			Name:  defaultMessageFlagName,
			Usage: "greeting returned when no name is given (overrides config and " + config.EnvDefaultMessage + ")",
		},
		&cli.IntFlag{
			Name:    portFlagName,
			Aliases: []string{"p"},
			Usage:   "listen port (overrides " + server.EnvPort + ")",
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP greeting service (default command)",
		Description: `Serves GET /api/hello alongside /health, /ready, /metrics and a root index.

The default greeting is resolved from, highest precedence first:
  --default-message, APP_GREETING_DEFAULT_MESSAGE,
  app.greeting.default-message in --config, "Hello, World!"

# Examples

  hellod serve --port 9000
  hellod serve --config /etc/hellod/config.yaml
  APP_GREETING_DEFAULT_MESSAGE="Hi there" hellod`,
		Flags:  serveFlags(),
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return api.Serve(ctx, cfg, serverOptions(cmd)...)
}

// loadConfig resolves the application config, letting --default-message
// win over the environment and file layers when it was given.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var opts []config.Option
	if cmd.IsSet(defaultMessageFlagName) {
		opts = append(opts, config.WithDefaultMessage(cmd.String(defaultMessageFlagName)))
	}
	return config.Load(cmd.String(configFlagName), opts...)
}

func serverConfig(cmd *cli.Command) *server.Config {
	sc := server.NewConfig()
	if cmd.IsSet(portFlagName) {
		sc.Port = cmd.Int(portFlagName)
	}
	return sc
}

func serverOptions(cmd *cli.Command) []server.Option {
	if !cmd.IsSet(portFlagName) {
		return nil
	}
	return []server.Option{server.WithConfig(serverConfig(cmd))}
}
