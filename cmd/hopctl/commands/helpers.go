package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"github.com/ifyun/hop/pkg/hop"
	"github.com/ifyun/hop/pkg/hopclient"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	yamlIndent = 2
)

// CreateClient builds a management client from viper-resolved configuration,
// prompting for the password on a terminal when it is absent.
func CreateClient() (hop.Client, error) {
	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		return nil, hop.ErrEndpointRequired
	}

	username := viper.GetString("username")
	password := viper.GetString("password")

	if username != "" && password == "" {
		prompted, err := promptForPassword()
		if err != nil {
			return nil, err
		}

		password = prompted
	}

	return hopclient.New(&hop.Config{
		Endpoint:      endpoint,
		Username:      username,
		Password:      password,
		Debug:         viper.GetBool("verbose"),
		SkipTLSVerify: viper.GetBool("skip-ssl-validation"),
	})
}

func promptForPassword() (string, error) {
	if !term.IsTerminal(syscall.Stdin) {
		return "", nil
	}

	_, err := os.Stdout.WriteString("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	_, _ = os.Stdout.WriteString("\n") // Add newline after password input

	return string(passwordBytes), nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}
