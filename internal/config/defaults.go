package config

import "time"

const (
	DefaultLocationsPath  = "assets/data_centers.json"
	DefaultCommentaryPath = "assets/city_tooltip_blurbs_map.json"
	DefaultTileURL        = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution    = "© OpenStreetMap contributors"
)

// DefaultConfig returns a Config with sensible defaults. The map defaults
// center the contiguous United States.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Locations:  DefaultLocationsPath,
			Commentary: DefaultCommentaryPath,
			Timeout:    15 * time.Second,
		},
		Map: MapConfig{
			CenterLat:   39.8283,
			CenterLng:   -98.5795,
			Zoom:        4,
			MaxZoom:     19,
			FitPadding:  50,
			TileURL:     DefaultTileURL,
			Attribution: DefaultAttribution,
		},
		Chat: ChatConfig{
			Delay: 500 * time.Millisecond,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
		OutputDir: "site",
		Title:     "Data Center Impact Map",
	}
}
