package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	APIBaseURL    string
	SessionDBPath string
	Previews      bool
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	config := &Config{}

	// .env values fill in missing environment variables; they never
	// override ones already set.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var showVersion bool
	flag.StringVar(&config.APIBaseURL, "api", "", "Campground API base URL (or set CAMPQUEST_API_URL)")
	flag.StringVar(&config.SessionDBPath, "session", "", "Path to session database file (default: ~/.campquest/session.db)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("campquest " + version)
		os.Exit(0)
	}

	// Get API base URL from env if not provided via flag
	if config.APIBaseURL == "" {
		config.APIBaseURL = os.Getenv("CAMPQUEST_API_URL")
	}

	// Set default session path if not specified
	var configDir string
	if config.SessionDBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir = filepath.Join(home, ".campquest")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		config.SessionDBPath = filepath.Join(configDir, "session.db")
	} else {
		configDir = filepath.Dir(config.SessionDBPath)
	}

	settings, err := loadSettings(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if shouldRunOnboarding(settings) {
		settings, err = runOnboarding(configDir, config.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to run onboarding: %w", err)
		}
	}

	config.Previews = settings.PreviewsEnabled
	if config.APIBaseURL == "" {
		config.APIBaseURL = settings.APIBaseURL
	}
	config.APIBaseURL = strings.TrimRight(strings.TrimSpace(config.APIBaseURL), "/")
	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("no API base URL configured: pass -api, set CAMPQUEST_API_URL, or rerun setup")
	}

	return config, nil
}
