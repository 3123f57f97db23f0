// Package cli implements the command-line interface for cubeview.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/config"
	"github.com/SeamusWaldron/cubeview/internal/viewer"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	logPath    string
	speed      float32
	fps        int
	verbose    bool
)

// rootCmd is the base command. Run without a subcommand it opens the viewer.
var rootCmd = &cobra.Command{
	Use:   "cubeview",
	Short: "Interactive 3x3x3 cube viewer",
	Long: `cubeview - An interactive Rubik's Cube viewer for the terminal.

Turn any of the nine layers with the keyboard, orbit the camera by dragging
with the mouse or using the arrow keys, and zoom with the wheel.

Run "cubeview controls" for the full key list.`,
	Version: version,
	RunE:    runViewer,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every command")
	rootCmd.Flags().StringVar(&logPath, "log", "", "Write log output to this file")
	rootCmd.Flags().Float32Var(&speed, "speed", 0, "Rotation speed in degrees per frame (default from config)")
	rootCmd.Flags().IntVar(&fps, "fps", 0, "Frames per second (default from config)")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if speed > 0 {
		cfg.Animation.Speed = speed
	}
	if fps > 0 {
		cfg.Animation.TickMs = 1000 / fps
		if cfg.Animation.TickMs < 1 {
			cfg.Animation.TickMs = 1
		}
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the viewer, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "cubeview")
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	session, err := viewer.NewSession(cfg, viewer.WithLogger(logger), viewer.WithVerbose(verbose))
	if err != nil {
		return err
	}

	tick := time.Duration(cfg.Animation.TickMs) * time.Millisecond
	model := viewer.NewModel(session, tick)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	logger.Printf("viewer started, tick %s", tick)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}
	return nil
}
