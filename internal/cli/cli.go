// Package cli builds the cobra commands behind the two executables.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mouse-roi/internal/app"
	"mouse-roi/internal/config"
	"mouse-roi/internal/export"
	"mouse-roi/internal/logger"
	"mouse-roi/internal/opencv/imageio"
	"mouse-roi/internal/opencv/safe"

	"github.com/spf13/cobra"
)

// Tool identifies which program a command runs.
type Tool struct {
	Use           string
	Short         string
	LoadFailedMsg string
	SupportsCrop  bool
}

var (
	ClickTool = Tool{
		Use:           "click-detector [image]",
		Short:         "Show an image and print the coordinates of every click",
		LoadFailedMsg: "image not found",
	}
	CropTool = Tool{
		Use:           "mouse-crop [image]",
		Short:         "Select a rectangle with the mouse and show it cropped",
		LoadFailedMsg: "Could not load image",
		SupportsCrop:  true,
	}
)

type cliOptions struct {
	envFile   string
	display   int
	logLevel  string
	outputDir string
	clipboard bool
}

// Runner starts the GUI for a resolved configuration.
type Runner func(cfg *config.Config, log logger.Logger, source *safe.Mat) error

// NewCommand wires flags, configuration and image loading for tool. The
// console receives user-facing messages; logs go to stderr.
func NewCommand(tool Tool, console io.Writer, run Runner) *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           tool.Use,
		Short:         tool.Short,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, args)
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log := logger.NewConsoleLogger(level)

			source, err := loadSource(cfg, log)
			if err != nil {
				if errors.Is(err, imageio.ErrImageNotLoaded) {
					fmt.Fprintln(console, tool.LoadFailedMsg)
				}
				return err
			}

			return run(cfg, log, source)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", "", "Path to a .env file (default ./.env)")
	flags.IntVar(&opts.display, "screen", config.NoDisplay, "Capture this display instead of reading an image file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	if tool.SupportsCrop {
		flags.StringVar(&opts.outputDir, "output-dir", "", "Save every crop as PNG into this directory")
		flags.BoolVar(&opts.clipboard, "clipboard", false, "Copy every crop to the clipboard")
	}

	return cmd
}

// resolveConfig layers defaults, .env, environment, flags and the positional
// image path, in increasing priority.
func resolveConfig(cmd *cobra.Command, opts *cliOptions, args []string) (*config.Config, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{EnvFile: opts.envFile})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if len(args) == 1 {
		cfg.ImagePath = args[0]
	}
	if flags.Changed("screen") {
		if opts.display < 0 {
			return nil, fmt.Errorf("--screen must be non-negative, got %d", opts.display)
		}
		cfg.Display = opts.display
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Lookup("output-dir") != nil && flags.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Lookup("clipboard") != nil && flags.Changed("clipboard") {
		cfg.Clipboard = opts.clipboard
	}

	return cfg, nil
}

func loadSource(cfg *config.Config, log logger.Logger) (*safe.Mat, error) {
	if cfg.UsesDisplay() {
		log.Info("Loader", "capturing display", map[string]interface{}{"display": cfg.Display})
		return imageio.CaptureDisplay(cfg.Display)
	}

	mat, err := imageio.Load(cfg.ImagePath)
	if err != nil {
		log.Error("Loader", err, map[string]interface{}{"path": cfg.ImagePath})
		return nil, err
	}

	log.Info("Loader", "image loaded", map[string]interface{}{
		"path":     cfg.ImagePath,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	})
	return mat, nil
}

// RunClickDetector is the Runner for the click detector.
func RunClickDetector(cfg *config.Config, log logger.Logger, source *safe.Mat) error {
	detector, err := app.NewClickDetector(app.NewFyneApp(), source, app.Options{
		Out:    os.Stdout,
		Logger: log,
	})
	if err != nil {
		return err
	}

	detector.Run()
	return nil
}

// RunMouseCrop is the Runner for the crop tool.
func RunMouseCrop(cfg *config.Config, log logger.Logger, source *safe.Mat) error {
	var cb export.ImageClipboard
	if cfg.Clipboard {
		sys, err := export.NewSystemClipboard()
		if err != nil {
			log.Warning("MouseCrop", "clipboard disabled", map[string]interface{}{"error": err.Error()})
		} else {
			cb = sys
		}
	}

	exporter := export.NewExporter(export.Options{
		OutputDir: cfg.OutputDir,
		Clipboard: cfg.Clipboard,
		Prefix:    sourceName(cfg),
	}, cb, log)

	crop, err := app.NewMouseCrop(app.NewFyneApp(), source, app.Options{
		Out:      os.Stdout,
		Logger:   log,
		Exporter: exporter,
	})
	if err != nil {
		return err
	}

	crop.Run()
	return nil
}

func sourceName(cfg *config.Config) string {
	if cfg.UsesDisplay() {
		return fmt.Sprintf("display%d", cfg.Display)
	}
	return filepath.Base(cfg.ImagePath)
}
