// Package commands implements the subcommands of the teable CLI.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/teable-client/pkg/teable"
	"github.com/fivetwenty-io/teable-client/pkg/teableclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrAPIURLNotConfigured = errors.New("API URL not configured (use --url, TEABLE_URL, or the config file)")
	ErrAPIKeyNotConfigured = errors.New("API key not configured (use --api-key, TEABLE_API_KEY, or the config file)")
	ErrDeleteNotConfirmed  = errors.New("permanent deletion is irreversible; re-run with --force to confirm")
)

// createClient builds an API client from the resolved configuration.
func createClient() (teable.Client, error) {
	apiURL := viper.GetString("url")
	if apiURL == "" {
		return nil, ErrAPIURLNotConfigured
	}

	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := teable.NewConfig(apiURL, apiKey)

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	apiClient, err := teableclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return apiClient, nil
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return nil
}

// strValue renders an optional string for table output.
func strValue(value *string) string {
	if value == nil || *value == "" {
		return NotAvailable
	}

	return *value
}

// stderrLogger writes structured debug output to stderr for --verbose runs.
type stderrLogger struct{}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }
