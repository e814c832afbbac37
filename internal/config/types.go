package config

import "time"

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level powering configuration, corresponding to .powering.yml.
type Config struct {
	Data      DataConfig   `yaml:"data" koanf:"data"`
	Map       MapConfig    `yaml:"map" koanf:"map"`
	Chat      ChatConfig   `yaml:"chat" koanf:"chat"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Log       LogConfig    `yaml:"log" koanf:"log"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	Title     string       `yaml:"title" koanf:"title"`
}

// DataConfig locates the two JSON resources. Each source is either an
// http(s) URL or a local file path.
type DataConfig struct {
	Locations  string        `yaml:"locations" koanf:"locations"`
	Commentary string        `yaml:"commentary" koanf:"commentary"`
	Timeout    time.Duration `yaml:"timeout" koanf:"timeout"`
}

// MapConfig holds the map surface settings.
type MapConfig struct {
	CenterLat   float64 `yaml:"center_lat" koanf:"center_lat"`
	CenterLng   float64 `yaml:"center_lng" koanf:"center_lng"`
	Zoom        int     `yaml:"zoom" koanf:"zoom"`
	MaxZoom     int     `yaml:"max_zoom" koanf:"max_zoom"`
	FitPadding  int     `yaml:"fit_padding" koanf:"fit_padding"`
	TileURL     string  `yaml:"tile_url" koanf:"tile_url"`
	Attribution string  `yaml:"attribution" koanf:"attribution"`
}

// ChatConfig holds chat widget settings.
type ChatConfig struct {
	Delay time.Duration `yaml:"delay" koanf:"delay"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
