package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// ShovelsClient implements hop.ShovelsClient. Shovels are stored as
// runtime parameters under the "shovel" component; operational status
// comes from the shovel plugin's own endpoint.
type ShovelsClient struct {
	httpClient *http.Client
}

// NewShovelsClient creates a new shovels client.
func NewShovelsClient(httpClient *http.Client) *ShovelsClient {
	return &ShovelsClient{httpClient: httpClient}
}

// List implements hop.ShovelsClient.List.
func (c *ShovelsClient) List(ctx context.Context) ([]hop.ShovelInfo, error) {
	return c.list(ctx, apiPath("parameters", hop.ComponentShovel))
}

// ListIn implements hop.ShovelsClient.ListIn.
func (c *ShovelsClient) ListIn(ctx context.Context, vhost string) ([]hop.ShovelInfo, error) {
	return c.list(ctx, apiPath("parameters", hop.ComponentShovel, vhost))
}

func (c *ShovelsClient) list(ctx context.Context, path string) ([]hop.ShovelInfo, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing shovels: %w", err)
	}

	var shovels []hop.ShovelInfo

	err = unmarshal(resp.Body, &shovels, "shovels")
	if err != nil {
		return nil, err
	}

	return shovels, nil
}

// Get implements hop.ShovelsClient.Get.
func (c *ShovelsClient) Get(ctx context.Context, vhost, name string) (*hop.ShovelInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("parameters", hop.ComponentShovel, vhost, name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting shovel: %w", err)
	}

	var shovel hop.ShovelInfo

	err = unmarshal(resp.Body, &shovel, "shovel")
	if err != nil {
		return nil, err
	}

	return &shovel, nil
}

// Declare implements hop.ShovelsClient.Declare. The definition is
// validated before any request is issued.
func (c *ShovelsClient) Declare(ctx context.Context, vhost, name string, definition hop.ShovelDefinition) error {
	err := definition.Validate()
	if err != nil {
		return err
	}

	body := struct {
		Value hop.ShovelDefinition `json:"value"`
	}{definition}

	_, err = c.httpClient.Put(ctx, apiPath("parameters", hop.ComponentShovel, vhost, name), body)
	if err != nil {
		return fmt.Errorf("declaring shovel: %w", err)
	}

	return nil
}

// Delete implements hop.ShovelsClient.Delete.
func (c *ShovelsClient) Delete(ctx context.Context, vhost, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("parameters", hop.ComponentShovel, vhost, name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting shovel: %w", err)
	}

	return nil
}

// ListStatus implements hop.ShovelsClient.ListStatus.
func (c *ShovelsClient) ListStatus(ctx context.Context) ([]hop.ShovelStatus, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("shovels"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing shovel status: %w", err)
	}

	var statuses []hop.ShovelStatus

	err = unmarshal(resp.Body, &statuses, "shovel status")
	if err != nil {
		return nil, err
	}

	return statuses, nil
}
