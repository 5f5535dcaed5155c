package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/teable-client/internal/constants"
)

// ErrUnknownConfigKey is returned for keys outside the settable set.
var ErrUnknownConfigKey = errors.New("unknown configuration key")

// CLIConfig is the persisted CLI configuration.
type CLIConfig struct {
	URL     string `json:"url,omitempty"     yaml:"url,omitempty"`
	APIKey  string `json:"api-key,omitempty" yaml:"api-key,omitempty"`
	Output  string `json:"output,omitempty"  yaml:"output,omitempty"`
	Verbose bool   `json:"verbose"           yaml:"verbose"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and update the persisted teable CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the resolved CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadCLIConfig()

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(config)
			case OutputFormatYAML:
				return outputYAML(config)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("url", config.URL)
				_ = table.Append("api-key", maskAPIKey(config.APIKey))
				_ = table.Append("output", config.Output)
				_ = table.Append("verbose", fmt.Sprintf("%t", config.Verbose))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadCLIConfig()

			switch key {
			case "url":
				config.URL = value
			case "api-key":
				config.APIKey = value
			case "output":
				config.Output = value
			case "verbose":
				config.Verbose = value == "true"
			default:
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config := loadCLIConfig()

			switch key {
			case "url":
				config.URL = ""
			case "api-key":
				config.APIKey = ""
			case "output":
				config.Output = ""
			case "verbose":
				config.Verbose = false
			default:
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the config file and all persisted settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			if err := os.Remove(configFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			fmt.Println("Cleared configuration")

			return nil
		},
	}
}

func loadCLIConfig() *CLIConfig {
	return &CLIConfig{
		URL:     viper.GetString("url"),
		APIKey:  viper.GetString("api-key"),
		Output:  viper.GetString("output"),
		Verbose: viper.GetBool("verbose"),
	}
}

func saveCLIConfig(config *CLIConfig) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".teable")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// maskAPIKey hides all but the trailing characters of a key.
func maskAPIKey(key string) string {
	if key == "" {
		return NotAvailable
	}

	const visible = 4
	if len(key) <= visible {
		return "****"
	}

	return "****" + key[len(key)-visible:]
}
