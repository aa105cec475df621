package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vsixget/pkg/cli/config"
	"github.com/m-mizutani/vsixget/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg  config.Logger
		galleryCfg config.Gallery
		outputCfg  config.Output
	)
	var logger *slog.Logger

	flags := loggerCfg.Flags()
	flags = append(flags, galleryCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	app := &cli.Command{
		Name:      "vsixget",
		Usage:     "Download VS Code extensions from the Visual Studio Marketplace",
		ArgsUsage: "<publisher.extension | marketplace URL>",
		Flags:     flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runDownload(ctx, c, &galleryCfg, &outputCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("download failed", slog.Any("error", err))
		printHints(os.Stderr, err)
		return err
	}

	return nil
}

// printHints gives the user something actionable after a terminal pipeline
// failure. Errors without a pipeline tag (flag parsing, bad log level) get
// no hints; the download advice would only mislead there.
func printHints(w io.Writer, err error) {
	yellow := color.New(color.FgYellow)

	switch {
	case goerr.HasTag(err, types.ErrTagBadIdentifier):
		_, _ = yellow.Fprintln(w, "Accepted input formats:")
		fmt.Fprintln(w, "  publisher.extension          e.g. ms-python.python")
		fmt.Fprintln(w, "  marketplace URL              e.g. https://marketplace.visualstudio.com/items?itemName=ms-python.python")

	case goerr.HasTag(err, types.ErrTagNotFound),
		goerr.HasTag(err, types.ErrTagTransport),
		goerr.HasTag(err, types.ErrTagValidation),
		goerr.HasTag(err, types.ErrTagExhausted):
		_, _ = yellow.Fprintln(w, "Troubleshooting:")
		fmt.Fprintln(w, "  - retry with --skip-version-check to bypass the version lookup")
		fmt.Fprintln(w, "  - increase the timeout with -t/--timeout (e.g. -t 30)")
		fmt.Fprintln(w, "  - check your network connection and proxy settings")
		fmt.Fprintln(w, "  - behind a corporate firewall, use --proxy http://your-proxy:port")
		fmt.Fprintln(w, "  - use --debug for transport-level detail")
	}
}
