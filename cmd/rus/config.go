package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// Output formats understood by parse and repl.
const (
	formatAST    = "ast"
	formatTokens = "tokens"
)

type config struct {
	Output outputConfig `toml:"output"`
	Watch  watchConfig  `toml:"watch"`
}

type outputConfig struct {
	Color  bool   `toml:"color"`
	Format string `toml:"format"`
}

type watchConfig struct {
	DebounceMS int      `toml:"debounce_ms"`
	Extensions []string `toml:"extensions"`
}

func defaultConfig() config {
	return config{
		Output: outputConfig{Color: true, Format: formatAST},
		Watch: watchConfig{
			DebounceMS: 100,
			Extensions: []string{".rus"},
		},
	}
}

// loadConfig reads a rus.toml file. A missing file is not an error; the
// defaults apply.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if cfg.Watch.DebounceMS <= 0 {
		cfg.Watch.DebounceMS = defaultConfig().Watch.DebounceMS
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = defaultConfig().Watch.Extensions
	}
	return cfg, nil
}

// resolveConfig loads the config file and layers any flags the user set
// explicitly on top. Flags win over the file; a flag left at its default
// changes nothing.
func resolveConfig(cmd *cobra.Command, path string) (config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Output.Color, _ = flags.GetBool("color")
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if cfg.Output.Format != formatAST && cfg.Output.Format != formatTokens {
		return cfg, fmt.Errorf("output format must be %q or %q, got %q",
			formatAST, formatTokens, cfg.Output.Format)
	}
	return cfg, nil
}
