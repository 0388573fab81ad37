package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	// Version is the current version of FlowCanvas
	Version = "1.0.0"
)

// Config holds the global configuration for the FlowCanvas CLI.
type Config struct {
	ConfigDir string
	Debug     bool
}

// GlobalConfig is the shared configuration instance.
var GlobalConfig = &Config{}

// NewRootCommand creates the root cobra command for FlowCanvas.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flowcanvas",
		Short: "FlowCanvas - Visual workflow builder",
		Long: `FlowCanvas is a visual workflow builder. Drag approval, email, signature and
logic steps onto a canvas, connect them, and configure each step through its
own dialog. The canvas is the document; flows are built interactively.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			if GlobalConfig.Debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			} else {
				log.SetOutput(io.Discard)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&GlobalConfig.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&GlobalConfig.ConfigDir, "config-dir", "", "Configuration directory (default: ~/.flowcanvas)")

	cmd.AddCommand(NewEditCommand())
	cmd.AddCommand(NewCredentialCommand())
	cmd.AddCommand(NewPaletteCommand())

	return cmd
}

// initConfig initializes the FlowCanvas configuration directory and files.
func initConfig() error {
	// Environment variable always takes priority (for testing)
	if envDir := os.Getenv("FLOWCANVAS_CONFIG_DIR"); envDir != "" {
		GlobalConfig.ConfigDir = envDir
	} else if GlobalConfig.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		GlobalConfig.ConfigDir = filepath.Join(homeDir, ".flowcanvas")
	}

	if err := os.MkdirAll(GlobalConfig.ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(GlobalConfig.ConfigDir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		defaultConfig := map[string]interface{}{
			"version": "1.0",
		}
		data, err := yaml.Marshal(defaultConfig)
		if err != nil {
			return fmt.Errorf("failed to marshal default config: %w", err)
		}
		if err := os.WriteFile(configFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}
	}

	return nil
}

// GetConfigDir returns the configuration directory path.
// Priority order: 1) FLOWCANVAS_CONFIG_DIR env var, 2) GlobalConfig.ConfigDir, 3) ~/.flowcanvas
func GetConfigDir() string {
	if envDir := os.Getenv("FLOWCANVAS_CONFIG_DIR"); envDir != "" {
		return envDir
	}
	if GlobalConfig.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".flowcanvas"
		}
		return filepath.Join(homeDir, ".flowcanvas")
	}
	return GlobalConfig.ConfigDir
}

// GetPaletteOverridePath returns the path to the palette override file, which
// customizes node type display labels and descriptions.
func GetPaletteOverridePath() string {
	return filepath.Join(GetConfigDir(), "palette.yaml")
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
