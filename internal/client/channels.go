package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// ChannelsClient implements hop.ChannelsClient.
type ChannelsClient struct {
	httpClient *http.Client
}

// NewChannelsClient creates a new channels client.
func NewChannelsClient(httpClient *http.Client) *ChannelsClient {
	return &ChannelsClient{httpClient: httpClient}
}

// List implements hop.ChannelsClient.List.
func (c *ChannelsClient) List(ctx context.Context, params *hop.QueryParams) ([]hop.ChannelInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("channels"), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}

	page, err := hop.DecodePage[hop.ChannelInfo](resp.Body)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// ListOfConnection implements hop.ChannelsClient.ListOfConnection.
func (c *ChannelsClient) ListOfConnection(ctx context.Context, connectionName string) ([]hop.ChannelInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("connections", connectionName, "channels"), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing channels of connection: %w", err)
	}

	var channels []hop.ChannelInfo

	err = unmarshal(resp.Body, &channels, "connection channels")
	if err != nil {
		return nil, err
	}

	return channels, nil
}

// Get implements hop.ChannelsClient.Get.
func (c *ChannelsClient) Get(ctx context.Context, name string) (*hop.ChannelInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("channels", name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting channel: %w", err)
	}

	var channel hop.ChannelInfo

	err = unmarshal(resp.Body, &channel, "channel")
	if err != nil {
		return nil, err
	}

	return &channel, nil
}
