package config

import "github.com/urfave/cli/v3"

// Output holds destination and version-selection configuration
type Output struct {
	Directory        string
	Version          string
	SkipVersionCheck bool
	ConfigPath       string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "directory",
			Aliases:     []string{"d"},
			Usage:       "Directory to save the VSIX file",
			Value:       ".",
			Destination: &c.Directory,
			Sources:     cli.EnvVars("VSIXGET_DIRECTORY"),
		},
		&cli.StringFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "Extension version (latest when omitted)",
			Destination: &c.Version,
			Sources:     cli.EnvVars("VSIXGET_VERSION"),
		},
		&cli.BoolFlag{
			Name:        "skip-version-check",
			Usage:       "Skip checking for the latest version and download directly",
			Destination: &c.SkipVersionCheck,
			Sources:     cli.EnvVars("VSIXGET_SKIP_VERSION_CHECK"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "TOML file with default settings",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("VSIXGET_CONFIG"),
		},
	}
}
