package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/mcapi/internal/constants"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
	"github.com/fivetwenty-io/mcapi/pkg/mcclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [API_KEY]",
		Short: "Store an API key",
		Long: `Verify an API key against the API and store it in the config file.

Without an argument the key is read from the terminal without echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := ""
			if len(args) == 1 {
				apiKey = args[0]
			}

			if apiKey == "" {
				prompted, err := promptAPIKey(cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				apiKey = prompted
			}

			return runLogin(commandContext(cmd), cmd.OutOrStdout(), apiKey)
		},
	}
}

func promptAPIKey(prompt io.Writer) (string, error) {
	_, _ = io.WriteString(prompt, "API key: ")

	key, err := term.ReadPassword(int(os.Stdin.Fd()))

	_, _ = io.WriteString(prompt, "\n")

	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return strings.TrimSpace(string(key)), nil
}

func runLogin(ctx context.Context, out io.Writer, apiKey string) error {
	if apiKey == "" {
		return constants.ErrEmptyAPIKey
	}

	endpoint := viper.GetString(KeyAPIEndpoint)

	client, err := mcclient.New(ctx, &mcapi.Config{
		APIKey:      apiKey,
		APIEndpoint: endpoint,
		UserAgent:   userAgent,
		HTTPTimeout: constants.ShortHTTPTimeout,
	})
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	_, err = client.Ping(ctx)
	if err != nil {
		return fmt.Errorf("verifying API key: %w", err)
	}

	account, err := client.Root(ctx)
	if err != nil {
		return fmt.Errorf("fetching account: %w", err)
	}

	err = updateConfig(func(config *Config) error {
		config.APIKey = apiKey
		if endpoint != "" {
			config.APIEndpoint = endpoint
		}

		return nil
	})
	if err != nil {
		return err
	}

	viper.Set(KeyAPIKey, apiKey)

	_, _ = fmt.Fprintf(out, "Logged in to %s (%s)\n", valueOrNA(account.AccountName), valueOrNA(account.AccountID))

	return nil
}
