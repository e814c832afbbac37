package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "POWERING_"

// sections are the nested config blocks. An env var whose first segment
// names a section is split there: POWERING_CHAT_DELAY -> chat.delay.
var sections = map[string]bool{
	"data":   true,
	"map":    true,
	"chat":   true,
	"server": true,
	"log":    true,
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (POWERING_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps POWERING_SERVER_ALLOW_ALL_ORIGINS to server.allow_all_origins
// and POWERING_OUTPUT_DIR to output_dir.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if head, rest, ok := strings.Cut(key, "_"); ok && sections[head] {
		return head + "." + rest
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validFormats = map[LogFormat]bool{
	LogFormatConsole: true,
	LogFormatJSON:    true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Data.Locations == "" {
		return fmt.Errorf("data.locations is required")
	}
	if c.Data.Commentary == "" {
		return fmt.Errorf("data.commentary is required")
	}
	if c.Data.Timeout < 0 {
		return fmt.Errorf("data.timeout must be non-negative")
	}

	if c.Map.CenterLat < -90 || c.Map.CenterLat > 90 {
		return fmt.Errorf("map.center_lat %v out of range [-90, 90]", c.Map.CenterLat)
	}
	if c.Map.CenterLng < -180 || c.Map.CenterLng > 180 {
		return fmt.Errorf("map.center_lng %v out of range [-180, 180]", c.Map.CenterLng)
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > c.Map.MaxZoom {
		return fmt.Errorf("map.zoom %d must be between 0 and max_zoom (%d)", c.Map.Zoom, c.Map.MaxZoom)
	}
	if c.Map.FitPadding < 0 {
		return fmt.Errorf("map.fit_padding must be non-negative")
	}
	if c.Map.TileURL == "" {
		return fmt.Errorf("map.tile_url is required")
	}
	if c.Map.Attribution == "" {
		return fmt.Errorf("map.attribution is required by the tile provider")
	}

	if c.Chat.Delay < 0 {
		return fmt.Errorf("chat.delay must be non-negative")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	if c.Log.Level != "" && !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.Format != "" && !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	return nil
}
