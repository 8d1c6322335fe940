package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is stripped from environment variables before they are mapped to
// config keys, e.g. HEXIFY_BUFFER_SIZE becomes buffer-size.
const EnvPrefix = "HEXIFY_"

// DefaultInput is used when no input path is given anywhere.
const DefaultInput = "example.proof"

// Config holds settings for the file encoder.
type Config struct {
	Input      string `koanf:"input"`
	Output     string `koanf:"output"`
	Suffix     string `koanf:"suffix"`
	Verbose    bool   `koanf:"verbose"`
	Quiet      bool   `koanf:"quiet"`
	BufferSize int    `koanf:"buffer-size"`
	Debug      bool   `koanf:"debug"`
}

// LoadConfig merges, in increasing precedence, the config file (if any),
// HEXIFY_* environment variables and the command-line flags in flagSet.
// Flags the user did not set only fill keys no other source provided, so
// their defaults act as the defaults for the whole config.
func LoadConfig(flagSet *pflag.FlagSet, configFile string) (*Config, error) {
	k := koanf.New(".")

	// Load from config file if provided
	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// This will convert HEXIFY_BUFFER_SIZE to buffer-size
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	// Load from command-line flags (highest precedence)
	if flagSet != nil {
		if err := k.Load(posflag.Provider(flagSet, ".", k), nil); err != nil {
			return nil, fmt.Errorf("error loading flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}

	return cfg, nil
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
