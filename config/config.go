package config

import (
	"encoding/json"
	"fllvideo/infobox"
	"fllvideo/log"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".fllvideo"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidateColorMode checks that mode is one of the color mode constants.
func ValidateColorMode(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q (must be %q, %q or %q)", mode, ColorAuto, ColorAlways, ColorNever)
}

// Config represents the application configuration
type Config struct {
	// Style is the box style used when no flag overrides it.
	Style infobox.Style `json:"style"`
	// Banner holds the text of the startup banner.
	Banner BannerConfig `json:"banner"`
	// Stream describes where the video streams are served.
	Stream StreamConfig `json:"stream"`
	// Color controls ANSI colouring of rendered boxes: "auto", "always" or "never".
	Color string `json:"color"`
}

// BannerConfig is the text shown in the startup banner.
type BannerConfig struct {
	Title     string `json:"title"`
	Note      string `json:"note"`
	ListTitle string `json:"list_title"`
}

// StreamConfig is the address of the MJPEG server and the IDs of the streams
// it serves.
type StreamConfig struct {
	Host    string   `json:"host"`
	Port    int      `json:"port"`
	Streams []string `json:"streams"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Style: infobox.DefaultStyle(),
		Banner: BannerConfig{
			Title:     "FLL Robot Game Video Processor",
			Note:      "Press CTRL+C to exit",
			ListTitle: "Video streams:",
		},
		Stream: StreamConfig{
			Host:    "localhost",
			Port:    8080,
			Streams: []string{"red-team-video", "blue-team-video"},
		},
		Color: ColorAuto,
	}
}

// URLs returns the address of every configured stream.
func (s StreamConfig) URLs() []string {
	base := "http://" + net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	urls := make([]string, 0, len(s.Streams))
	for _, id := range s.Streams {
		urls = append(urls, base+"/"+id)
	}
	return urls
}

// Validate checks that the server address is usable and that stream IDs are
// unique.
func (s StreamConfig) Validate() error {
	if s.Host == "" {
		return fmt.Errorf("stream host must not be empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("stream port %d out of range", s.Port)
	}
	seen := make(map[string]bool, len(s.Streams))
	for _, id := range s.Streams {
		if id == "" {
			return fmt.Errorf("stream ID must not be empty")
		}
		if seen[id] {
			return fmt.Errorf("stream with ID %q already exists", id)
		}
		seen[id] = true
	}
	return nil
}

// BannerSpec builds the info box shown at startup.
func (c *Config) BannerSpec() infobox.Spec {
	return infobox.Spec{
		Title:     c.Banner.Title,
		Note:      c.Banner.Note,
		ListTitle: c.Banner.ListTitle,
		ListItems: c.Stream.URLs(),
		Style:     c.Style,
	}
}

// Validate reports whether the configuration can render a banner.
func (c *Config) Validate() error {
	if err := ValidateColorMode(c.Color); err != nil {
		return err
	}
	if err := c.Stream.Validate(); err != nil {
		return err
	}
	if err := c.BannerSpec().Validate(); err != nil {
		return fmt.Errorf("invalid banner: %w", err)
	}
	return nil
}

// LoadConfig reads the configuration from disk. Missing fields keep their
// defaults; a missing file is created with the defaults and an unreadable or
// invalid one is backed up and replaced by the defaults in memory.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err == nil {
		err = config.Validate()
		if err == nil {
			return config
		}
		log.ErrorLog.Printf("invalid config file at %s: %v", configPath, err)
	} else {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)
	}

	// Back up the bad config before falling back to defaults
	backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
	if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
		log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
	}

	return DefaultConfig()
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig validates config and writes it to disk.
func SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	return saveConfig(config)
}
