package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultLocationsPath, cfg.Data.Locations)
	assert.Equal(t, DefaultCommentaryPath, cfg.Data.Commentary)
	assert.Equal(t, 39.8283, cfg.Map.CenterLat)
	assert.Equal(t, -98.5795, cfg.Map.CenterLng)
	assert.Equal(t, 4, cfg.Map.Zoom)
	assert.Equal(t, 50, cfg.Map.FitPadding)
	assert.Equal(t, 500*time.Millisecond, cfg.Chat.Delay)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.powering.yml")

	original := DefaultConfig()
	original.Data.Locations = "https://example.com/data_centers.json"
	original.Map.Zoom = 5
	original.Chat.Delay = 250 * time.Millisecond
	original.Server.Port = 9090
	original.Log.Format = LogFormatJSON

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Data.Locations, loaded.Data.Locations)
	assert.Equal(t, original.Data.Commentary, loaded.Data.Commentary)
	assert.Equal(t, 5, loaded.Map.Zoom)
	assert.Equal(t, 250*time.Millisecond, loaded.Chat.Delay)
	assert.Equal(t, 9090, loaded.Server.Port)
	assert.Equal(t, LogFormatJSON, loaded.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Data, cfg.Data)
}

func TestLoadYAMLDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	yml := "chat:\n  delay: 750ms\ndata:\n  timeout: 3s\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.Chat.Delay)
	assert.Equal(t, 3*time.Second, cfg.Data.Timeout)
	// Untouched keys keep their defaults.
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	require.NoError(t, DefaultConfig().Save(path))

	t.Setenv("POWERING_SERVER_PORT", "9191")
	t.Setenv("POWERING_CHAT_DELAY", "1s")
	t.Setenv("POWERING_SERVER_ALLOW_ALL_ORIGINS", "true")
	t.Setenv("POWERING_OUTPUT_DIR", "public")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9191, loaded.Server.Port)
	assert.Equal(t, time.Second, loaded.Chat.Delay)
	assert.True(t, loaded.Server.AllowAllOrigins)
	assert.Equal(t, "public", loaded.OutputDir)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"POWERING_SERVER_PORT", "server.port"},
		{"POWERING_MAP_CENTER_LAT", "map.center_lat"},
		{"POWERING_SERVER_ALLOW_ALL_ORIGINS", "server.allow_all_origins"},
		{"POWERING_OUTPUT_DIR", "output_dir"},
		{"POWERING_TITLE", "title"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, envKey(tt.in), tt.in)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty locations", func(c *Config) { c.Data.Locations = "" }},
		{"empty commentary", func(c *Config) { c.Data.Commentary = "" }},
		{"negative timeout", func(c *Config) { c.Data.Timeout = -time.Second }},
		{"latitude out of range", func(c *Config) { c.Map.CenterLat = 91 }},
		{"longitude out of range", func(c *Config) { c.Map.CenterLng = -181 }},
		{"zoom above max", func(c *Config) { c.Map.Zoom = 20 }},
		{"negative padding", func(c *Config) { c.Map.FitPadding = -1 }},
		{"no attribution", func(c *Config) { c.Map.Attribution = "" }},
		{"negative delay", func(c *Config) { c.Chat.Delay = -time.Millisecond }},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validatePort("8080"))
	assert.Error(t, validatePort("0"))
	assert.Error(t, validatePort("http"))
}

func TestDetectDataFiles(t *testing.T) {
	data := &fstest.MapFile{Data: []byte("[]")}

	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantLoc string
		wantCom string
	}{
		{"nothing on disk", fstest.MapFS{}, DefaultLocationsPath, DefaultCommentaryPath},
		{
			name:    "both files in one directory",
			fsys:    fstest.MapFS{"data/data_centers.json": data, "data/city_tooltip_blurbs_map.json": data},
			wantLoc: "data/data_centers.json",
			wantCom: "data/city_tooltip_blurbs_map.json",
		},
		{
			name: "locations without commentary is skipped",
			fsys: fstest.MapFS{
				"data_centers.json":                       data,
				"web/static/data_centers.json":            data,
				"web/static/city_tooltip_blurbs_map.json": data,
			},
			wantLoc: "web/static/data_centers.json",
			wantCom: "web/static/city_tooltip_blurbs_map.json",
		},
		{
			name: "shallowest pair wins",
			fsys: fstest.MapFS{
				"a/b/data_centers.json":            data,
				"a/b/city_tooltip_blurbs_map.json": data,
				"z/data_centers.json":              data,
				"z/city_tooltip_blurbs_map.json":   data,
			},
			wantLoc: "z/data_centers.json",
			wantCom: "z/city_tooltip_blurbs_map.json",
		},
		{
			name:    "files in different directories",
			fsys:    fstest.MapFS{"a/data_centers.json": data, "b/city_tooltip_blurbs_map.json": data},
			wantLoc: DefaultLocationsPath,
			wantCom: DefaultCommentaryPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, com := detectDataFiles(tt.fsys)
			assert.Equal(t, tt.wantLoc, loc)
			assert.Equal(t, tt.wantCom, com)
		})
	}
}
