package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultImagePath = "resources/images/Lenna.png"
	DefaultEnvFile   = ".env"

	EnvFileEnvVar   = "MOUSE_ROI_ENV"
	ImageEnvVar     = "MOUSE_ROI_IMAGE"
	OutputDirEnvVar = "MOUSE_ROI_OUTPUT_DIR"
	ClipboardEnvVar = "MOUSE_ROI_CLIPBOARD"
	DisplayEnvVar   = "MOUSE_ROI_DISPLAY"
	LogLevelEnvVar  = "LOG_LEVEL"
	DebugEnvVar     = "DEBUG"

	// NoDisplay means the image comes from ImagePath.
	NoDisplay = -1
)

type LoadOptions struct {
	// EnvFile overrides the .env lookup. Missing files are ignored.
	EnvFile string
}

type Config struct {
	ImagePath string
	LogLevel  string
	OutputDir string
	Clipboard bool
	Display   int
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions reads the optional .env file and then the process
// environment. Variables already set in the environment win over the file.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	envPath := resolveEnvPath(opts)
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	display := NoDisplay
	if v := strings.TrimSpace(os.Getenv(DisplayEnvVar)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", DisplayEnvVar, v)
		}
		display = n
	}

	cfg := &Config{
		ImagePath: getEnvWithDefault(ImageEnvVar, DefaultImagePath),
		LogLevel:  resolveLogLevel(),
		OutputDir: strings.TrimSpace(os.Getenv(OutputDirEnvVar)),
		Clipboard: parseBool(os.Getenv(ClipboardEnvVar)),
		Display:   display,
	}

	return cfg, nil
}

// UsesDisplay reports whether the image should be captured from a screen.
func (c *Config) UsesDisplay() bool {
	return c.Display != NoDisplay
}

func resolveEnvPath(opts LoadOptions) string {
	if opts.EnvFile != "" {
		return opts.EnvFile
	}
	if p := os.Getenv(EnvFileEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultEnvFile); err == nil {
		return DefaultEnvFile
	}
	return ""
}

func resolveLogLevel() string {
	if level := strings.TrimSpace(os.Getenv(LogLevelEnvVar)); level != "" {
		return level
	}
	if os.Getenv(DebugEnvVar) == "1" {
		return "debug"
	}
	return "info"
}

func getEnvWithDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
