package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/manifoldco/promptui"
)

// ConfigFile is the default config file name written by the wizard.
const ConfigFile = ".powering.yml"

// detectDataFiles globs fsys for the locations file and returns the
// shallowest match whose directory also holds the commentary file.
func detectDataFiles(fsys fs.FS) (locations, commentary string) {
	locName := path.Base(DefaultLocationsPath)
	comName := path.Base(DefaultCommentaryPath)

	matches, err := doublestar.Glob(fsys, "**/"+locName, doublestar.WithFilesOnly())
	if err != nil {
		return DefaultLocationsPath, DefaultCommentaryPath
	}
	sort.Slice(matches, func(i, j int) bool {
		di, dj := strings.Count(matches[i], "/"), strings.Count(matches[j], "/")
		if di != dj {
			return di < dj
		}
		return matches[i] < matches[j]
	})

	for _, loc := range matches {
		com := path.Join(path.Dir(loc), comName)
		if info, err := fs.Stat(fsys, com); err == nil && !info.IsDir() {
			return loc, com
		}
	}
	return DefaultLocationsPath, DefaultCommentaryPath
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .powering.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to powering! Let's configure the map.")
	fmt.Println()

	defLocations, defCommentary := detectDataFiles(os.DirFS("."))
	if defLocations != DefaultLocationsPath {
		fmt.Printf("Detected dataset in %s\n\n", filepath.Dir(defLocations))
	}

	cfg := DefaultConfig()

	// 1. Data sources.
	locationsPrompt := promptui.Prompt{
		Label:   "Locations JSON (path or URL)",
		Default: defLocations,
	}
	locations, err := locationsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locations source: %w", err)
	}
	cfg.Data.Locations = locations

	commentaryPrompt := promptui.Prompt{
		Label:   "City commentary JSON (path or URL)",
		Default: defCommentary,
	}
	commentary, err := commentaryPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("commentary source: %w", err)
	}
	cfg.Data.Commentary = commentary

	// 2. Server port.
	portPrompt := promptui.Prompt{
		Label:    "Server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Chat reply delay.
	delayPrompt := promptui.Prompt{
		Label:   "Simulated chat reply delay",
		Default: cfg.Chat.Delay.String(),
		Validate: func(s string) error {
			_, err := time.ParseDuration(s)
			return err
		},
	}
	delayStr, err := delayPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("chat delay: %w", err)
	}
	cfg.Chat.Delay, _ = time.ParseDuration(delayStr)

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console: human readable",
			"json:    structured, for log shippers",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = []LogFormat{LogFormatConsole, LogFormatJSON}[formatIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(ConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", ConfigFile)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
