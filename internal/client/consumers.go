package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// ConsumersClient implements hop.ConsumersClient.
type ConsumersClient struct {
	httpClient *http.Client
}

// NewConsumersClient creates a new consumers client.
func NewConsumersClient(httpClient *http.Client) *ConsumersClient {
	return &ConsumersClient{httpClient: httpClient}
}

// List implements hop.ConsumersClient.List.
func (c *ConsumersClient) List(ctx context.Context) ([]hop.ConsumerInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("consumers"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing consumers: %w", err)
	}

	var consumers []hop.ConsumerInfo

	err = unmarshal(resp.Body, &consumers, "consumers")
	if err != nil {
		return nil, err
	}

	return consumers, nil
}

// ListIn implements hop.ConsumersClient.ListIn.
func (c *ConsumersClient) ListIn(ctx context.Context, vhost string) ([]hop.ConsumerInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("consumers", vhost), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing consumers in vhost: %w", err)
	}

	var consumers []hop.ConsumerInfo

	err = unmarshal(resp.Body, &consumers, "consumers")
	if err != nil {
		return nil, err
	}

	return consumers, nil
}
