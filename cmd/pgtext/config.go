package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config is the merged configuration of the config file and command line flags.
type config struct {
	ServerVersion string    `toml:"server_version"`
	TimeZone      string    `toml:"time_zone"`
	Format        string    `toml:"format"`
	Log           logConfig `toml:"log"`
}

type logConfig struct {
	Level   string `toml:"level"`
	Backend string `toml:"backend"`
}

func loadConfig(path string) (config, error) {
	var c config
	if path == "" {
		return c, nil
	}

	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, errors.Wrapf(err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return c, errors.Errorf("read config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return c, nil
}

// override replaces file settings with the flags that were given.
func (c *config) override(flags *cli) {
	if flags.ServerVersion != "" {
		c.ServerVersion = flags.ServerVersion
	}
	if flags.TimeZone != "" {
		c.TimeZone = flags.TimeZone
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.Log.Level = flags.LogLevel
	}
	if flags.LogBackend != "" {
		c.Log.Backend = flags.LogBackend
	}
	if c.Format == "" {
		c.Format = "text"
	}
}

func (c config) validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	return nil
}
