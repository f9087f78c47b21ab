package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// PermissionsClient implements hop.PermissionsClient.
type PermissionsClient struct {
	httpClient *http.Client
}

// NewPermissionsClient creates a new permissions client.
func NewPermissionsClient(httpClient *http.Client) *PermissionsClient {
	return &PermissionsClient{httpClient: httpClient}
}

// List implements hop.PermissionsClient.List.
func (c *PermissionsClient) List(ctx context.Context) ([]hop.Permissions, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("permissions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}

	var permissions []hop.Permissions

	err = unmarshal(resp.Body, &permissions, "permissions")
	if err != nil {
		return nil, err
	}

	return permissions, nil
}

// Get implements hop.PermissionsClient.Get.
func (c *PermissionsClient) Get(ctx context.Context, vhost, user string) (*hop.Permissions, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("permissions", vhost, user), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting permissions: %w", err)
	}

	var permissions hop.Permissions

	err = unmarshal(resp.Body, &permissions, "permissions")
	if err != nil {
		return nil, err
	}

	return &permissions, nil
}

// Update implements hop.PermissionsClient.Update.
func (c *PermissionsClient) Update(ctx context.Context, vhost, user string, permissions hop.Permissions) error {
	body := struct {
		Configure string `json:"configure"`
		Write     string `json:"write"`
		Read      string `json:"read"`
	}{permissions.Configure, permissions.Write, permissions.Read}

	_, err := c.httpClient.Put(ctx, apiPath("permissions", vhost, user), body)
	if err != nil {
		return fmt.Errorf("updating permissions: %w", err)
	}

	return nil
}

// Clear implements hop.PermissionsClient.Clear.
func (c *PermissionsClient) Clear(ctx context.Context, vhost, user string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("permissions", vhost, user))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("clearing permissions: %w", err)
	}

	return nil
}
