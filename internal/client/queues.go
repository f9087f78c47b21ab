package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// QueuesClient implements hop.QueuesClient.
type QueuesClient struct {
	httpClient *http.Client
}

// NewQueuesClient creates a new queues client.
func NewQueuesClient(httpClient *http.Client) *QueuesClient {
	return &QueuesClient{httpClient: httpClient}
}

// List implements hop.QueuesClient.List.
func (c *QueuesClient) List(ctx context.Context, params *hop.QueryParams) ([]hop.QueueInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("queues"), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing queues: %w", err)
	}

	page, err := hop.DecodePage[hop.QueueInfo](resp.Body)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// ListPaged implements hop.QueuesClient.ListPaged.
func (c *QueuesClient) ListPaged(ctx context.Context, params *hop.QueryParams, details *hop.DetailsParams) (*hop.Page[hop.QueueInfo], error) {
	params = normalizePaged(params)

	resp, err := c.httpClient.Get(ctx, apiPath("queues"), hop.CombineValues(params, details))
	if err != nil {
		return nil, fmt.Errorf("listing queues: %w", err)
	}

	return hop.DecodePage[hop.QueueInfo](resp.Body)
}

// ListIn implements hop.QueuesClient.ListIn. A missing vhost yields an
// absent result.
func (c *QueuesClient) ListIn(ctx context.Context, vhost string, params *hop.QueryParams) ([]hop.QueueInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("queues", vhost), params.ToValues())
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing queues in vhost: %w", err)
	}

	page, err := hop.DecodePage[hop.QueueInfo](resp.Body)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// ListInPaged implements hop.QueuesClient.ListInPaged.
func (c *QueuesClient) ListInPaged(ctx context.Context, vhost string, params *hop.QueryParams, details *hop.DetailsParams) (*hop.Page[hop.QueueInfo], error) {
	params = normalizePaged(params)

	resp, err := c.httpClient.Get(ctx, apiPath("queues", vhost), hop.CombineValues(params, details))
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing queues in vhost: %w", err)
	}

	return hop.DecodePage[hop.QueueInfo](resp.Body)
}

// Get implements hop.QueuesClient.Get.
func (c *QueuesClient) Get(ctx context.Context, vhost, name string) (*hop.QueueInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("queues", vhost, name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting queue: %w", err)
	}

	var queue hop.QueueInfo

	err = unmarshal(resp.Body, &queue, "queue")
	if err != nil {
		return nil, err
	}

	return &queue, nil
}

// Declare implements hop.QueuesClient.Declare. Re-declaring with identical
// arguments succeeds; a conflicting redeclare surfaces the server's error.
func (c *QueuesClient) Declare(ctx context.Context, vhost, name string, settings hop.QueueSettings) error {
	_, err := c.httpClient.Put(ctx, apiPath("queues", vhost, name), settings)
	if err != nil {
		return fmt.Errorf("declaring queue: %w", err)
	}

	return nil
}

// Delete implements hop.QueuesClient.Delete. Deleting a queue that does not
// exist is a no-op.
func (c *QueuesClient) Delete(ctx context.Context, vhost, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("queues", vhost, name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting queue: %w", err)
	}

	return nil
}

// Purge implements hop.QueuesClient.Purge.
func (c *QueuesClient) Purge(ctx context.Context, vhost, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("queues", vhost, name, "contents"))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("purging queue: %w", err)
	}

	return nil
}

// ListBindings implements hop.QueuesClient.ListBindings.
func (c *QueuesClient) ListBindings(ctx context.Context, vhost, name string) ([]hop.BindingInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("queues", vhost, name, "bindings"), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing queue bindings: %w", err)
	}

	var bindings []hop.BindingInfo

	err = unmarshal(resp.Body, &bindings, "queue bindings")
	if err != nil {
		return nil, err
	}

	return bindings, nil
}
