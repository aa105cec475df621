package config

import (
	"github.com/m-mizutani/vsixget/pkg/infra/gallery"
	"github.com/urfave/cli/v3"
)

// Gallery holds marketplace endpoint and transport configuration
type Gallery struct {
	BaseURL  string
	Platform string
	Timeout  int64 // seconds per request
	Proxy    string
}

// Flags returns CLI flags for gallery configuration
func (c *Gallery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "marketplace-url",
			Usage:       "Gallery API base URL",
			Value:       gallery.DefaultBaseURL,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("VSIXGET_MARKETPLACE_URL"),
		},
		&cli.StringFlag{
			Name:        "platform",
			Usage:       "Target platform tried before the universal package",
			Value:       gallery.DefaultPlatform,
			Destination: &c.Platform,
			Sources:     cli.EnvVars("VSIXGET_PLATFORM"),
		},
		&cli.Int64Flag{
			Name:        "timeout",
			Aliases:     []string{"t"},
			Usage:       "Timeout in seconds for HTTP requests",
			Value:       10,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("VSIXGET_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "proxy",
			Usage:       "HTTP proxy to use (e.g. http://proxy.example.com:8080)",
			Destination: &c.Proxy,
			Sources:     cli.EnvVars("VSIXGET_PROXY"),
		},
	}
}
