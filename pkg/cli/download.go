package cli

import (
	"context"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vsixget/pkg/cli/config"
	"github.com/m-mizutani/vsixget/pkg/domain/model"
	"github.com/m-mizutani/vsixget/pkg/domain/types"
	"github.com/m-mizutani/vsixget/pkg/infra/gallery"
	"github.com/m-mizutani/vsixget/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// preflightTimeout bounds the pre-pipeline connectivity probe.
const preflightTimeout = 5 * time.Second

func runDownload(ctx context.Context, c *cli.Command, galleryCfg *config.Gallery, outputCfg *config.Output) error {
	logger := ctxlog.From(ctx)

	raw := c.Args().First()
	if raw == "" {
		return goerr.New("extension identifier is required",
			goerr.T(types.ErrTagBadIdentifier),
		)
	}
	if c.Args().Len() > 1 {
		return goerr.New("exactly one extension identifier is expected",
			goerr.T(types.ErrTagBadIdentifier),
			goerr.V("args", c.Args().Slice()),
		)
	}

	ref, err := model.ParseExtensionID(raw)
	if err != nil {
		return err
	}

	fileCfg, err := config.LoadFile(outputCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyFileDefaults(c, fileCfg, galleryCfg, outputCfg)

	version := outputCfg.Version
	if version == "" && !outputCfg.SkipVersionCheck {
		version, err = promptVersion(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	clientCfg := gallery.Config{
		BaseURL:  galleryCfg.BaseURL,
		Platform: galleryCfg.Platform,
		Timeout:  time.Duration(galleryCfg.Timeout) * time.Second,
		Proxy:    galleryCfg.Proxy,
	}
	// Pre-flight connectivity check, skipped when a proxy carries the
	// traffic (a direct dial would be meaningless then). Failure only
	// warns; the download itself is the real test.
	if clientCfg.Proxy == "" {
		if err := gallery.CheckConnectivity(clientCfg.BaseURL, preflightTimeout); err != nil {
			logger.Warn("cannot reach the marketplace host, continuing anyway",
				"error", err,
				"hint", "check your network connection; if behind a proxy use --proxy, and consider a higher -t/--timeout",
			)
		}
	}

	client, err := gallery.New(clientCfg)
	if err != nil {
		return err
	}

	// Proxy credentials in clientCfg are masked by the logger.
	logger.Debug("gallery client configured", "config", clientCfg)

	uc := usecase.NewDownload(client)
	result, err := uc.Download(ctx, &model.DownloadRequest{
		Ref:              ref,
		Version:          version,
		Directory:        outputCfg.Directory,
		SkipVersionCheck: outputCfg.SkipVersionCheck,
	})
	if err != nil {
		return err
	}

	logger.Info("download complete",
		"path", result.Path,
		"size_bytes", result.Size,
		"version", result.Version,
		"source", result.Description,
	)
	_, _ = color.New(color.FgGreen).Fprintf(os.Stdout, "Success! Downloaded to: %s\n", result.Path)

	return nil
}

// applyFileDefaults fills settings-file values into fields whose flags were
// not set on the command line or environment.
func applyFileDefaults(c *cli.Command, file *config.File, galleryCfg *config.Gallery, outputCfg *config.Output) {
	if file == nil {
		return
	}

	if !c.IsSet("directory") && file.Directory != "" {
		outputCfg.Directory = file.Directory
	}
	if !c.IsSet("timeout") && file.Timeout > 0 {
		galleryCfg.Timeout = file.Timeout
	}
	if !c.IsSet("proxy") && file.Proxy != "" {
		galleryCfg.Proxy = file.Proxy
	}
	if !c.IsSet("platform") && file.Platform != "" {
		galleryCfg.Platform = file.Platform
	}
	if !c.IsSet("marketplace-url") && file.MarketplaceURL != "" {
		galleryCfg.BaseURL = file.MarketplaceURL
	}
}
