// Package hopclient provides the main entry point for creating broker
// management API clients.
package hopclient

import (
	"fmt"
	"strings"

	"github.com/ifyun/hop/internal/client"
	"github.com/ifyun/hop/pkg/hop"
)

// New creates a new management API client from the given configuration.
func New(config *hop.Config) (hop.Client, error) {
	if config == nil {
		return nil, hop.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, hop.ErrEndpointRequired
	}

	// Normalize the endpoint
	endpoint := strings.TrimSuffix(config.Endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "http://" + endpoint
	}

	config.Endpoint = endpoint

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithCredentials creates a new client with an endpoint, username and
// password.
func NewWithCredentials(endpoint, username, password string) (hop.Client, error) {
	return New(&hop.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
	})
}
