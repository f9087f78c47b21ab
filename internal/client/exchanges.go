package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// ExchangesClient implements hop.ExchangesClient.
type ExchangesClient struct {
	httpClient *http.Client
}

// NewExchangesClient creates a new exchanges client.
func NewExchangesClient(httpClient *http.Client) *ExchangesClient {
	return &ExchangesClient{httpClient: httpClient}
}

// List implements hop.ExchangesClient.List.
func (c *ExchangesClient) List(ctx context.Context, params *hop.QueryParams) ([]hop.ExchangeInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("exchanges"), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing exchanges: %w", err)
	}

	page, err := hop.DecodePage[hop.ExchangeInfo](resp.Body)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// ListPaged implements hop.ExchangesClient.ListPaged.
func (c *ExchangesClient) ListPaged(ctx context.Context, params *hop.QueryParams) (*hop.Page[hop.ExchangeInfo], error) {
	params = normalizePaged(params)

	resp, err := c.httpClient.Get(ctx, apiPath("exchanges"), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing exchanges: %w", err)
	}

	return hop.DecodePage[hop.ExchangeInfo](resp.Body)
}

// ListIn implements hop.ExchangesClient.ListIn.
func (c *ExchangesClient) ListIn(ctx context.Context, vhost string, params *hop.QueryParams) ([]hop.ExchangeInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("exchanges", vhost), params.ToValues())
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing exchanges in vhost: %w", err)
	}

	page, err := hop.DecodePage[hop.ExchangeInfo](resp.Body)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// Get implements hop.ExchangesClient.Get.
func (c *ExchangesClient) Get(ctx context.Context, vhost, name string) (*hop.ExchangeInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("exchanges", vhost, name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting exchange: %w", err)
	}

	var exchange hop.ExchangeInfo

	err = unmarshal(resp.Body, &exchange, "exchange")
	if err != nil {
		return nil, err
	}

	return &exchange, nil
}

// Declare implements hop.ExchangesClient.Declare.
func (c *ExchangesClient) Declare(ctx context.Context, vhost, name string, settings hop.ExchangeSettings) error {
	if settings.Type == "" {
		return &hop.ValidationError{Field: "type", Message: "exchange type is required"}
	}

	_, err := c.httpClient.Put(ctx, apiPath("exchanges", vhost, name), settings)
	if err != nil {
		return fmt.Errorf("declaring exchange: %w", err)
	}

	return nil
}

// Delete implements hop.ExchangesClient.Delete.
func (c *ExchangesClient) Delete(ctx context.Context, vhost, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("exchanges", vhost, name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting exchange: %w", err)
	}

	return nil
}

// ListBindingsWithSource implements hop.ExchangesClient.ListBindingsWithSource.
func (c *ExchangesClient) ListBindingsWithSource(ctx context.Context, vhost, name string) ([]hop.BindingInfo, error) {
	return c.listBindings(ctx, vhost, name, "source")
}

// ListBindingsWithDestination implements hop.ExchangesClient.ListBindingsWithDestination.
func (c *ExchangesClient) ListBindingsWithDestination(ctx context.Context, vhost, name string) ([]hop.BindingInfo, error) {
	return c.listBindings(ctx, vhost, name, "destination")
}

func (c *ExchangesClient) listBindings(ctx context.Context, vhost, name, direction string) ([]hop.BindingInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("exchanges", vhost, name, "bindings", direction), nil)
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
