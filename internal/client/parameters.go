package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// ParametersClient implements hop.ParametersClient.
type ParametersClient struct {
	httpClient *http.Client
}

// NewParametersClient creates a new runtime parameters client.
func NewParametersClient(httpClient *http.Client) *ParametersClient {
	return &ParametersClient{httpClient: httpClient}
}

// List implements hop.ParametersClient.List.
func (c *ParametersClient) List(ctx context.Context) ([]hop.RuntimeParameter, error) {
	return c.list(ctx, apiPath("parameters"))
}

// ListFor implements hop.ParametersClient.ListFor.
func (c *ParametersClient) ListFor(ctx context.Context, component string) ([]hop.RuntimeParameter, error) {
	return c.list(ctx, apiPath("parameters", component))
}

// ListForIn implements hop.ParametersClient.ListForIn.
func (c *ParametersClient) ListForIn(ctx context.Context, component, vhost string) ([]hop.RuntimeParameter, error) {
	return c.list(ctx, apiPath("parameters", component, vhost))
}

func (c *ParametersClient) list(ctx context.Context, path string) ([]hop.RuntimeParameter, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing parameters: %w", err)
	}

	var parameters []hop.RuntimeParameter

	err = unmarshal(resp.Body, &parameters, "parameters")
	if err != nil {
		return nil, err
	}

	return parameters, nil
}

// Get implements hop.ParametersClient.Get.
func (c *ParametersClient) Get(ctx context.Context, component, vhost, name string) (*hop.RuntimeParameter, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("parameters", component, vhost, name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting parameter: %w", err)
	}

	var parameter hop.RuntimeParameter

	err = unmarshal(resp.Body, &parameter, "parameter")
	if err != nil {
		return nil, err
	}

	return &parameter, nil
}

// Put implements hop.ParametersClient.Put. Values with a known component
// shape are validated before the request is sent.
func (c *ParametersClient) Put(ctx context.Context, parameter hop.RuntimeParameter) error {
	err := validateParameterValue(parameter.Value)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Put(ctx, apiPath("parameters", parameter.Component, parameter.Vhost, parameter.Name), parameter)
	if err != nil {
		return fmt.Errorf("putting parameter: %w", err)
	}

	return nil
}

// validateParameterValue runs the per-shape pre-flight checks.
func validateParameterValue(value hop.ParameterValue) error {
	switch v := value.(type) {
	case hop.ShovelDefinition:
		return v.Validate()
	case hop.FederationDefinition:
		return v.Validate()
	case hop.FederationUpstreamSet:
		return v.Validate()
	default:
		return nil
	}
}

// Delete implements hop.ParametersClient.Delete.
func (c *ParametersClient) Delete(ctx context.Context, component, vhost, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("parameters", component, vhost, name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting parameter: %w", err)
	}

	return nil
}

// globalParameterEnvelope defers value decoding: global parameters carry
// either an object (e.g. cluster tags) or a bare string (e.g.
// internal_cluster_id).
type globalParameterEnvelope struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func (e globalParameterEnvelope) toGlobalParameter() (hop.GlobalParameter, error) {
	value, err := hop.DecodeParameterValue("", e.Value)
	if err != nil {
		return hop.GlobalParameter{}, err
	}

	return hop.GlobalParameter{Name: e.Name, Value: value}, nil
}

// ListGlobal implements hop.ParametersClient.ListGlobal.
func (c *ParametersClient) ListGlobal(ctx context.Context) ([]hop.GlobalParameter, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("global-parameters"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing global parameters: %w", err)
	}

	var parameters []globalParameterEnvelope

	err = unmarshal(resp.Body, &parameters, "global parameters")
	if err != nil {
		return nil, err
	}

	result := make([]hop.GlobalParameter, 0, len(parameters))

	for _, envelope := range parameters {
		parameter, err := envelope.toGlobalParameter()
		if err != nil {
			return nil, err
		}

		result = append(result, parameter)
	}

	return result, nil
}

// GetGlobal implements hop.ParametersClient.GetGlobal.
func (c *ParametersClient) GetGlobal(ctx context.Context, name string) (*hop.GlobalParameter, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("global-parameters", name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting global parameter: %w", err)
	}

	var envelope globalParameterEnvelope

	err = unmarshal(resp.Body, &envelope, "global parameter")
	if err != nil {
		return nil, err
	}

	parameter, err := envelope.toGlobalParameter()
	if err != nil {
		return nil, err
	}

	return &parameter, nil
}

// PutGlobal implements hop.ParametersClient.PutGlobal.
func (c *ParametersClient) PutGlobal(ctx context.Context, name string, value interface{}) error {
	body := struct {
		Value interface{} `json:"value"`
	}{value}

	_, err := c.httpClient.Put(ctx, apiPath("global-parameters", name), body)
	if err != nil {
		return fmt.Errorf("putting global parameter: %w", err)
	}

	return nil
}

// DeleteGlobal implements hop.ParametersClient.DeleteGlobal.
func (c *ParametersClient) DeleteGlobal(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("global-parameters", name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting global parameter: %w", err)
	}

	return nil
}
