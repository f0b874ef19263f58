package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/sbxservice/hello-service/pkg/api"
	"github.com/sbxservice/hello-service/pkg/logging"
	"github.com/sbxservice/hello-service/pkg/serializer"
)

const (
	name = "hellod"

	outputFlagName   = "output"
	formatFlagName   = "format"
	logLevelFlagName = "log-level"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    outputFlagName,
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    formatFlagName,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("output format (supported: %v)", serializer.SupportedFormats()),
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    logLevelFlagName,
		Value:   "info",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
	}
}

// newRootCmd builds the hellod command tree. Without a subcommand it serves.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "HTTP greeting service with request and host diagnostics",
		Version:               api.Version(),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Flags:                 append(serveFlags(), logLevelFlag()),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, api.Version(), cmd.String(logLevelFlagName))
			return ctx, nil
		},
		Action: serveAction,
		Commands: []*cli.Command{
			serveCmd(),
			infoCmd(),
			configCmd(),
		},
	}
}

// Execute runs the hellod CLI and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String(formatFlagName))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// writeOutput serializes v to path, or stdout when path is empty.
func writeOutput(ctx context.Context, format serializer.Format, path string, v any) error {
	var ser serializer.Serializer = serializer.NewFileWriterOrStdout(format, path)
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close output", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, v)
}

// commandLister prints visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}
