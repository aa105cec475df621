package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File holds defaults loaded from a TOML settings file. Every field is
// optional; command line flags and environment variables win over file
// values.
type File struct {
	Directory      string `toml:"directory"`
	Timeout        int64  `toml:"timeout"`
	Proxy          string `toml:"proxy"`
	Platform       string `toml:"platform"`
	MarketplaceURL string `toml:"marketplace_url"`
}

// DefaultFilePath returns the conventional settings file location
// ($XDG_CONFIG_HOME/vsixget/config.toml or the OS equivalent). Empty when
// the user config directory cannot be determined.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vsixget", "config.toml")
}

// LoadFile reads and decodes a TOML settings file. When path is empty, the
// default location is used and a missing file is not an error.
func LoadFile(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilePath()
		if path == "" {
			return &File{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &File{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read settings file", goerr.V("path", path))
	}

	var cfg File
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse settings file", goerr.V("path", path))
	}

	return &cfg, nil
}
