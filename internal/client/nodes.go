package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// NodesClient implements hop.NodesClient.
type NodesClient struct {
	httpClient *http.Client
}

// NewNodesClient creates a new nodes client.
func NewNodesClient(httpClient *http.Client) *NodesClient {
	return &NodesClient{httpClient: httpClient}
}

// List implements hop.NodesClient.List.
func (c *NodesClient) List(ctx context.Context) ([]hop.NodeInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("nodes"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}

	var nodes []hop.NodeInfo

	err = unmarshal(resp.Body, &nodes, "nodes")
	if err != nil {
		return nil, err
	}

	return nodes, nil
}

// Get implements hop.NodesClient.Get.
func (c *NodesClient) Get(ctx context.Context, name string) (*hop.NodeInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("nodes", name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting node: %w", err)
	}

	var node hop.NodeInfo

	err = unmarshal(resp.Body, &node, "node")
	if err != nil {
		return nil, err
	}

	return &node, nil
}
