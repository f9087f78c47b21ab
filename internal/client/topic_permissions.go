package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// TopicPermissionsClient implements hop.TopicPermissionsClient. Every
// operation first checks the topic-permissions capability: on brokers
// below the minimum version, reads return absent results and mutations
// are skipped without a request.
type TopicPermissionsClient struct {
	httpClient    *http.Client
	serverVersion versionFunc
}

// NewTopicPermissionsClient creates a new topic permissions client.
func NewTopicPermissionsClient(httpClient *http.Client, serverVersion versionFunc) *TopicPermissionsClient {
	return &TopicPermissionsClient{httpClient: httpClient, serverVersion: serverVersion}
}

// supported resolves the capability against the cached broker version.
func (c *TopicPermissionsClient) supported(ctx context.Context) (bool, error) {
	version, err := c.serverVersion(ctx)
	if err != nil {
		return false, err
	}

	return hop.SupportsCapability(version, hop.CapabilityTopicPermissions), nil
}

// List implements hop.TopicPermissionsClient.List.
func (c *TopicPermissionsClient) List(ctx context.Context) ([]hop.TopicPermissions, error) {
	ok, err := c.supported(ctx)
	if err != nil || !ok {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("topic-permissions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing topic permissions: %w", err)
	}

	var permissions []hop.TopicPermissions

	err = unmarshal(resp.Body, &permissions, "topic permissions")
	if err != nil {
		return nil, err
	}

	return permissions, nil
}

// Get implements hop.TopicPermissionsClient.Get. One user can hold topic
// permissions on several exchanges, so the result is a list.
func (c *TopicPermissionsClient) Get(ctx context.Context, vhost, user string) ([]hop.TopicPermissions, error) {
	ok, err := c.supported(ctx)
	if err != nil || !ok {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, apiPath("topic-permissions", vhost, user), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting topic permissions: %w", err)
	}

	var permissions []hop.TopicPermissions

	err = unmarshal(resp.Body, &permissions, "topic permissions")
	if err != nil {
		return nil, err
	}

	return permissions, nil
}

// Update implements hop.TopicPermissionsClient.Update.
func (c *TopicPermissionsClient) Update(ctx context.Context, vhost, user string, permissions hop.TopicPermissions) error {
	ok, err := c.supported(ctx)
	if err != nil || !ok {
		return err
	}

	body := struct {
		Exchange string `json:"exchange"`
		Write    string `json:"write"`
		Read     string `json:"read"`
	}{permissions.Exchange, permissions.Write, permissions.Read}

	_, err = c.httpClient.Put(ctx, apiPath("topic-permissions", vhost, user), body)
	if err != nil {
		return fmt.Errorf("updating topic permissions: %w", err)
	}

	return nil
}

// Clear implements hop.TopicPermissionsClient.Clear.
func (c *TopicPermissionsClient) Clear(ctx context.Context, vhost, user string) error {
	ok, err := c.supported(ctx)
	if err != nil || !ok {
		return err
	}

	_, err = c.httpClient.Delete(ctx, apiPath("topic-permissions", vhost, user))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("clearing topic permissions: %w", err)
	}

	return nil
}
