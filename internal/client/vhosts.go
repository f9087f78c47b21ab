package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// versionFunc resolves the cached broker version for capability checks.
type versionFunc func(ctx context.Context) (string, error)

// VhostsClient implements hop.VhostsClient.
type VhostsClient struct {
	httpClient    *http.Client
	serverVersion versionFunc
}

// NewVhostsClient creates a new vhosts client.
func NewVhostsClient(httpClient *http.Client, serverVersion versionFunc) *VhostsClient {
	return &VhostsClient{httpClient: httpClient, serverVersion: serverVersion}
}

// List implements hop.VhostsClient.List.
func (c *VhostsClient) List(ctx context.Context, params *hop.QueryParams) ([]hop.VhostInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("vhosts"), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing vhosts: %w", err)
	}

	page, err := hop.DecodePage[hop.VhostInfo](resp.Body)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// Get implements hop.VhostsClient.Get.
func (c *VhostsClient) Get(ctx context.Context, name string) (*hop.VhostInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("vhosts", name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting vhost: %w", err)
	}

	var vhost hop.VhostInfo

	err = unmarshal(resp.Body, &vhost, "vhost")
	if err != nil {
		return nil, err
	}

	return &vhost, nil
}

// Put implements hop.VhostsClient.Put. Metadata fields (description, tags)
// are only sent to brokers that understand them; older brokers get the
// tracing flag alone.
func (c *VhostsClient) Put(ctx context.Context, name string, settings hop.VhostSettings) error {
	version, err := c.serverVersion(ctx)
	if err != nil {
		version = hop.UnknownVersion
	}

	body := settings
	if !hop.SupportsCapability(version, hop.CapabilityVhostMetadata) {
		body.Description = ""
		body.Tags = nil
	}

	_, err = c.httpClient.Put(ctx, apiPath("vhosts", name), body)
	if err != nil {
		return fmt.Errorf("putting vhost: %w", err)
	}

	return nil
}

// Delete implements hop.VhostsClient.Delete.
func (c *VhostsClient) Delete(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("vhosts", name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting vhost: %w", err)
	}

	return nil
}
