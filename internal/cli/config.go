package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls one ipcalc invocation. Values from the config file fill in
// defaults, flags override them.
type Config struct {
	Output string `yaml:"output"`
	Limit  uint64 `yaml:"limit"`

	Command string   `yaml:"-"`
	Args    []string `yaml:"-"`
}

// LoadConfig parses flags and, when one is named by -config or the
// IPCALC_CONFIG environment variable, a YAML config file.
func LoadConfig(args []string) (Config, error) {
	cfg := Config{Output: "text"}

	fs := flag.NewFlagSet("ipcalc", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("IPCALC_CONFIG"), "YAML file with default options")
	output := fs.String("o", "", "output format: text or json")
	limit := fs.Uint64("limit", 0, "stop list output after this many addresses (0 means no limit)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if *output != "" {
		cfg.Output = *output
	}
	if *limit != 0 {
		cfg.Limit = *limit
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return Config{}, fmt.Errorf("unknown output format %q", cfg.Output)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, errors.New("missing command: info, contains, subnet, mask, sort or list")
	}
	cfg.Command = rest[0]
	cfg.Args = rest[1:]
	return cfg, nil
}
