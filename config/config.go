// Package config contains structures for parsing nodelist configurations.
package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/nodelist/pkg/thunks"
)

const (
	// UserConfigDirectory is the dirname of the directory holding the user
	// configuration.
	UserConfigDirectory = ".nodelist"

	// DefaultConfigFile is the name of the config file inside the
	// UserConfigDirectory.
	DefaultConfigFile = "config.toml"

	// DefaultPrompt is printed before each line in interactive mode.
	DefaultPrompt = "nodelist> "
)

// Config represents a parsed configuration.
type Config struct {
	LogLevel  string   `toml:"log_level"`
	Prompt    string   `toml:"prompt"`
	KeepGoing bool     `toml:"keep_going"`
	Echo      bool     `toml:"echo"`
	Seed      []string `toml:"seed"`

	Trace TraceConfig `toml:"trace"`
}

// TraceConfig controls logging of every mutation applied to the list.
type TraceConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Prompt:   DefaultPrompt,
	}
}

// Level parses the LogLevel setting.
func (c *Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.LogLevel)
}

// Load reads and parses the TOML file at path. Unset keys keep their default
// values. Unknown keys are an error.
func Load(path string) (*Config, error) {
	b, err := fs.ReadFile(fileSystem, path)
	if err != nil {
		return nil, err
	}
	c := Default()
	md, err := toml.Decode(string(b), c)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("unknown settings in %s: %s", path, strings.Join(keys, ", "))
	}
	if _, err := c.Level(); err != nil {
		return nil, errors.Wrapf(err, "invalid log_level in %s", path)
	}
	return c, nil
}

// UserDirectory returns the path to the nodelist configuration directory for
// the current user, or an empty string if the home directory is unknown.
func UserDirectory() string {
	home, err := thunks.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDirectory)
}

// Locate returns the config path to load. A non-empty override is always used.
// Otherwise it returns UserDirectory()/config.toml if that file exists. The
// boolean is false when there is nothing to load.
func Locate(override string) (string, bool) {
	if override != "" {
		return override, true
	}
	d := UserDirectory()
	if d == "" {
		return "", false
	}
	path := filepath.Join(d, DefaultConfigFile)
	if _, err := fs.Stat(fileSystem, path); err != nil {
		return "", false
	}
	return path, true
}

// LoadOrDefault locates and loads the configuration. When no file is found it
// returns Default().
func LoadOrDefault(override string) (*Config, error) {
	path, ok := Locate(override)
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
