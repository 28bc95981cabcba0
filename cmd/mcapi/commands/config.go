package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/mcapi/internal/constants"
)

// Config is the persisted CLI configuration.
type Config struct {
	APIKey      string `json:"api_key,omitempty"      yaml:"api_key,omitempty"`
	APIEndpoint string `json:"api_endpoint,omitempty" yaml:"api_endpoint,omitempty"`
	Output      string `json:"output,omitempty"       yaml:"output,omitempty"`
	NATSURL     string `json:"nats_url,omitempty"     yaml:"nats_url,omitempty"`
}

var outputFormats = []string{"table", constants.FormatJSON, constants.FormatYAML}

// configMutex serializes read-modify-write cycles of the config file.
var configMutex sync.Mutex

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the mcapi CLI configuration stored in ~/.mcapi/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration. The API key is masked.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			effective := Config{
				APIKey:      maskAPIKey(viper.GetString(KeyAPIKey)),
				APIEndpoint: viper.GetString(KeyAPIEndpoint),
				Output:      viper.GetString(KeyOutput),
				NATSURL:     viper.GetString(KeyNATSURL),
			}

			return render(cmd.OutOrStdout(), effective, func(w io.Writer) error {
				return renderProperties(w, [][]string{
					{"API Key", effective.APIKey},
					{"API Endpoint", valueOrNA(effective.APIEndpoint)},
					{"Output", valueOrNA(effective.Output)},
					{"NATS URL", valueOrNA(effective.NATSURL)},
					{"Config File", valueOrNA(configFilePath())},
				})
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of: api_key, api_endpoint, output, nats_url",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			err := updateConfig(func(config *Config) error {
				return setConfigValue(config, args[0], args[1])
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove one of: api_key, api_endpoint, output, nats_url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := updateConfig(func(config *Config) error {
				return unsetConfigValue(config, args[0])
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case KeyAPIKey:
		if value == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = value
	case KeyAPIEndpoint:
		config.APIEndpoint = value
	case KeyOutput:
		if !slices.Contains(outputFormats, value) {
			return fmt.Errorf("%w: output must be one of %v", constants.ErrInvalidOutput, outputFormats)
		}

		config.Output = value
	case KeyNATSURL:
		config.NATSURL = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case KeyAPIKey:
		config.APIKey = ""
	case KeyAPIEndpoint:
		config.APIEndpoint = ""
	case KeyOutput:
		config.Output = ""
	case KeyNATSURL:
		config.NATSURL = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, "")

	return nil
}

// updateConfig loads the config file, applies fn and writes it back.
func updateConfig(fn func(config *Config) error) error {
	configMutex.Lock()
	defer configMutex.Unlock()

	path := configFilePath()
	if path == "" {
		return constants.ErrConfigPathUnknown
	}

	config, err := loadConfigFile(path)
	if err != nil {
		return err
	}

	err = fn(config)
	if err != nil {
		return err
	}

	return saveConfigFile(path, config)
}

// configFilePath returns the --config file, the file viper loaded, or
// ~/.mcapi/config.yml.
func configFilePath() string {
	if path := viper.GetString("config"); path != "" {
		return path
	}

	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".mcapi", "config.yml")
}

func loadConfigFile(path string) (*Config, error) {
	config := &Config{}

	// path comes from the --config flag or the user's home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
