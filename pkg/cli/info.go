package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sbxservice/hello-service/pkg/api"
	"github.com/sbxservice/hello-service/pkg/diagnostics"
	"github.com/sbxservice/hello-service/pkg/header"
)

type infoDocument struct {
	header.Header `yaml:",inline"`

	ServerInfo diagnostics.ServerInfo `json:"serverInfo" yaml:"serverInfo"`
}

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print the server diagnostics reported by /api/hello",
		Description: `Collects the same host and runtime facts embedded in every greeting
response, without starting the server.

# Examples

  hellod info
  hellod info --format table
  hellod info --format yaml --output info.yaml`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			info := diagnostics.NewCollector().CollectServerInfo(ctx)

			doc := infoDocument{ServerInfo: info}
			doc.Init(header.KindServerInfo, api.Version(), time.Now())
			doc.Metadata[header.MetadataHostname] = info.Hostname

			return writeOutput(ctx, outFormat, cmd.String(outputFlagName), doc)
		},
	}
}
