package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// ConnectionsClient implements hop.ConnectionsClient.
type ConnectionsClient struct {
	httpClient    *http.Client
	serverVersion versionFunc
}

// NewConnectionsClient creates a new connections client.
func NewConnectionsClient(httpClient *http.Client, serverVersion versionFunc) *ConnectionsClient {
	return &ConnectionsClient{httpClient: httpClient, serverVersion: serverVersion}
}

// List implements hop.ConnectionsClient.List.
func (c *ConnectionsClient) List(ctx context.Context, params *hop.QueryParams) ([]hop.ConnectionInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("connections"), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	page, err := hop.DecodePage[hop.ConnectionInfo](resp.Body)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// ListPaged implements hop.ConnectionsClient.ListPaged.
func (c *ConnectionsClient) ListPaged(ctx context.Context, params *hop.QueryParams) (*hop.Page[hop.ConnectionInfo], error) {
	params = normalizePaged(params)

	resp, err := c.httpClient.Get(ctx, apiPath("connections"), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	return hop.DecodePage[hop.ConnectionInfo](resp.Body)
}

// Get implements hop.ConnectionsClient.Get.
func (c *ConnectionsClient) Get(ctx context.Context, name string) (*hop.ConnectionInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("connections", name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	var connection hop.ConnectionInfo

	err = unmarshal(resp.Body, &connection, "connection")
	if err != nil {
		return nil, err
	}

	return &connection, nil
}

// Close implements hop.ConnectionsClient.Close. The optional reason is
// passed to the client in the connection.close frame.
func (c *ConnectionsClient) Close(ctx context.Context, name, reason string) error {
	var headers map[string]string

	if reason != "" {
		headers = map[string]string{"X-Reason": reason}
	}

	_, err := c.httpClient.DeleteWithHeaders(ctx, apiPath("connections", name), headers)
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("closing connection: %w", err)
	}

	return nil
}

// ListOfUser implements hop.ConnectionsClient.ListOfUser. On brokers
// without per-user connection listing this returns an absent result
// without issuing the request.
func (c *ConnectionsClient) ListOfUser(ctx context.Context, username string) ([]hop.ConnectionInfo, error) {
	version, err := c.serverVersion(ctx)
	if err != nil {
		return nil, err
	}

	if !hop.SupportsCapability(version, hop.CapabilityUserConnections) {
		return nil, nil
	}

	resp, err := c.httpClient.Get(ctx, apiPath("connections", "username", username), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing connections of user: %w", err)
	}

	var connections []hop.ConnectionInfo

	err = unmarshal(resp.Body, &connections, "user connections")
	if err != nil {
		return nil, err
	}

	return connections, nil
}
