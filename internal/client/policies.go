package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// PoliciesClient implements hop.PoliciesClient for both regular and
// operator policies; the resource segment selects which.
type PoliciesClient struct {
	httpClient *http.Client
	resource   string
}

// NewPoliciesClient creates a policies client for the given resource
// segment ("policies" or "operator-policies").
func NewPoliciesClient(httpClient *http.Client, resource string) *PoliciesClient {
	return &PoliciesClient{httpClient: httpClient, resource: resource}
}

// List implements hop.PoliciesClient.List.
func (c *PoliciesClient) List(ctx context.Context) ([]hop.Policy, error) {
	resp, err := c.httpClient.Get(ctx, apiPath(c.resource), nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.resource, err)
	}

	var policies []hop.Policy

	err = unmarshal(resp.Body, &policies, c.resource)
	if err != nil {
		return nil, err
	}

	return policies, nil
}

// ListIn implements hop.PoliciesClient.ListIn.
func (c *PoliciesClient) ListIn(ctx context.Context, vhost string) ([]hop.Policy, error) {
	resp, err := c.httpClient.Get(ctx, apiPath(c.resource, vhost), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing %s in vhost: %w", c.resource, err)
	}

	var policies []hop.Policy

	err = unmarshal(resp.Body, &policies, c.resource)
	if err != nil {
		return nil, err
	}

	return policies, nil
}

// Get implements hop.PoliciesClient.Get.
func (c *PoliciesClient) Get(ctx context.Context, vhost, name string) (*hop.Policy, error) {
	resp, err := c.httpClient.Get(ctx, apiPath(c.resource, vhost, name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting policy: %w", err)
	}

	var policy hop.Policy

	err = unmarshal(resp.Body, &policy, "policy")
	if err != nil {
		return nil, err
	}

	return &policy, nil
}

// Put implements hop.PoliciesClient.Put.
func (c *PoliciesClient) Put(ctx context.Context, vhost, name string, policy hop.Policy) error {
	if policy.Pattern == "" {
		return &hop.ValidationError{Field: "pattern", Message: "policy pattern is required"}
	}

	if len(policy.Definition) == 0 {
		return &hop.ValidationError{Field: "definition", Message: "policy definition is required"}
	}

	body := struct {
		Pattern    string           `json:"pattern"`
		ApplyTo    string           `json:"apply-to,omitempty"`
		Priority   int              `json:"priority"`
		Definition hop.GenericValue `json:"definition"`
	}{policy.Pattern, policy.ApplyTo, policy.Priority, policy.Definition}

	_, err := c.httpClient.Put(ctx, apiPath(c.resource, vhost, name), body)
	if err != nil {
		return fmt.Errorf("putting policy: %w", err)
	}

	return nil
}

// Delete implements hop.PoliciesClient.Delete.
func (c *PoliciesClient) Delete(ctx context.Context, vhost, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath(c.resource, vhost, name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting policy: %w", err)
	}

	return nil
}
