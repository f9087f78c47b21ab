package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// BindingsClient implements hop.BindingsClient.
type BindingsClient struct {
	httpClient *http.Client
}

// NewBindingsClient creates a new bindings client.
func NewBindingsClient(httpClient *http.Client) *BindingsClient {
	return &BindingsClient{httpClient: httpClient}
}

// bindingDeclareBody is the PUT/POST body for binding declarations.
type bindingDeclareBody struct {
	RoutingKey string                 `json:"routing_key"`
	Arguments  map[string]interface{} `json:"arguments,omitempty"`
}

// List implements hop.BindingsClient.List.
func (c *BindingsClient) List(ctx context.Context) ([]hop.BindingInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("bindings"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing bindings: %w", err)
	}

	var bindings []hop.BindingInfo

	err = unmarshal(resp.Body, &bindings, "bindings")
	if err != nil {
		return nil, err
	}

	return bindings, nil
}

// ListIn implements hop.BindingsClient.ListIn.
func (c *BindingsClient) ListIn(ctx context.Context, vhost string) ([]hop.BindingInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("bindings", vhost), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing bindings in vhost: %w", err)
	}

	var bindings []hop.BindingInfo

	err = unmarshal(resp.Body, &bindings, "bindings")
	if err != nil {
		return nil, err
	}

	return bindings, nil
}

// ListQueueBindings implements hop.BindingsClient.ListQueueBindings.
func (c *BindingsClient) ListQueueBindings(ctx context.Context, vhost, exchange, queue string) ([]hop.BindingInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("bindings", vhost, "e", exchange, "q", queue), nil)
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

// DeclareQueueBinding implements hop.BindingsClient.DeclareQueueBinding.
func (c *BindingsClient) DeclareQueueBinding(ctx context.Context, vhost, exchange, queue, routingKey string, arguments map[string]interface{}) error {
	body := bindingDeclareBody{RoutingKey: routingKey, Arguments: arguments}

	_, err := c.httpClient.Post(ctx, apiPath("bindings", vhost, "e", exchange, "q", queue), body)
	if err != nil {
		return fmt.Errorf("declaring queue binding: %w", err)
	}

	return nil
}

// DeleteQueueBinding implements hop.BindingsClient.DeleteQueueBinding. The
// properties key identifies which of possibly several bindings between the
// pair to remove.
func (c *BindingsClient) DeleteQueueBinding(ctx context.Context, vhost, exchange, queue, propertiesKey string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("bindings", vhost, "e", exchange, "q", queue, propertiesKey))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting queue binding: %w", err)
	}

	return nil
}

// DeclareExchangeBinding implements hop.BindingsClient.DeclareExchangeBinding.
func (c *BindingsClient) DeclareExchangeBinding(ctx context.Context, vhost, source, destination, routingKey string, arguments map[string]interface{}) error {
	body := bindingDeclareBody{RoutingKey: routingKey, Arguments: arguments}

	_, err := c.httpClient.Post(ctx, apiPath("bindings", vhost, "e", source, "e", destination), body)
	if err != nil {
		return fmt.Errorf("declaring exchange binding: %w", err)
	}

	return nil
}

// ListExchangeBindings implements hop.BindingsClient.ListExchangeBindings.
func (c *BindingsClient) ListExchangeBindings(ctx context.Context, vhost, source, destination string) ([]hop.BindingInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("bindings", vhost, "e", source, "e", destination), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing exchange bindings: %w", err)
	}

	var bindings []hop.BindingInfo

	err = unmarshal(resp.Body, &bindings, "exchange bindings")
	if err != nil {
		return nil, err
	}

	return bindings, nil
}

// DeleteExchangeBinding implements hop.BindingsClient.DeleteExchangeBinding.
func (c *BindingsClient) DeleteExchangeBinding(ctx context.Context, vhost, source, destination, propertiesKey string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("bindings", vhost, "e", source, "e", destination, propertiesKey))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting exchange binding: %w", err)
	}

	return nil
}
