package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/AnyTimeTraveler/dotscripts/errors"
)

// AppName is the directory name used below the XDG base directories.
const AppName = "dotscripts"

// configDirOverride lets tests point LoadConfig at a temporary directory.
var configDirOverride string

// ConfigDir returns $XDG_CONFIG_HOME/dotscripts, defaulting to
// ~/.config/dotscripts.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "Failed to get home directory")
		}
		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, AppName), nil
}

// EnvPrefix returns the environment prefix for tool, e.g. NIXOS_REBUILD.
func EnvPrefix(tool string) string {
	return strings.ToUpper(strings.ReplaceAll(tool, "-", "_"))
}

// LoadConfig layers, from highest to lowest precedence, the flags that were
// set on the command line, <TOOL>_* environment variables, the config file
// and the flag defaults.
//
// When file is empty, <tool>.{yaml,toml,json} in ConfigDir is used if it
// exists.
func LoadConfig(tool, file string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix(tool))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "Failed to bind command line flags")
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "Failed to read config file '%s'", file)
		}
		return v, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	v.SetConfigName(tool)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "Failed to read config file for '%s'", tool)
		}
	}

	return v, nil
}
