package client

import (
	"context"
	"fmt"

	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// FederationClient implements hop.FederationClient. Upstreams and upstream
// sets are stored as runtime parameters; link status comes from the
// federation plugin's own endpoint.
type FederationClient struct {
	httpClient *http.Client
}

// NewFederationClient creates a new federation client.
func NewFederationClient(httpClient *http.Client) *FederationClient {
	return &FederationClient{httpClient: httpClient}
}

// ListUpstreams implements hop.FederationClient.ListUpstreams.
func (c *FederationClient) ListUpstreams(ctx context.Context) ([]hop.FederationUpstream, error) {
	return c.listUpstreams(ctx, apiPath("parameters", hop.ComponentFederationUpstream))
}

// ListUpstreamsIn implements hop.FederationClient.ListUpstreamsIn.
func (c *FederationClient) ListUpstreamsIn(ctx context.Context, vhost string) ([]hop.FederationUpstream, error) {
	return c.listUpstreams(ctx, apiPath("parameters", hop.ComponentFederationUpstream, vhost))
}

func (c *FederationClient) listUpstreams(ctx context.Context, path string) ([]hop.FederationUpstream, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing federation upstreams: %w", err)
	}

	var upstreams []hop.FederationUpstream

	err = unmarshal(resp.Body, &upstreams, "federation upstreams")
	if err != nil {
		return nil, err
	}

	return upstreams, nil
}

// GetUpstream implements hop.FederationClient.GetUpstream.
func (c *FederationClient) GetUpstream(ctx context.Context, vhost, name string) (*hop.FederationUpstream, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("parameters", hop.ComponentFederationUpstream, vhost, name), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting federation upstream: %w", err)
	}

	var upstream hop.FederationUpstream

	err = unmarshal(resp.Body, &upstream, "federation upstream")
	if err != nil {
		return nil, err
	}

	return &upstream, nil
}

// DeclareUpstream implements hop.FederationClient.DeclareUpstream. The
// definition is validated before any request is issued.
func (c *FederationClient) DeclareUpstream(ctx context.Context, vhost, name string, definition hop.FederationDefinition) error {
	err := definition.Validate()
	if err != nil {
		return err
	}

	body := struct {
		Value hop.FederationDefinition `json:"value"`
	}{definition}

	_, err = c.httpClient.Put(ctx, apiPath("parameters", hop.ComponentFederationUpstream, vhost, name), body)
	if err != nil {
		return fmt.Errorf("declaring federation upstream: %w", err)
	}

	return nil
}

// DeleteUpstream implements hop.FederationClient.DeleteUpstream.
func (c *FederationClient) DeleteUpstream(ctx context.Context, vhost, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("parameters", hop.ComponentFederationUpstream, vhost, name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting federation upstream: %w", err)
	}

	return nil
}

// ListUpstreamSets implements hop.FederationClient.ListUpstreamSets.
func (c *FederationClient) ListUpstreamSets(ctx context.Context) ([]hop.FederationUpstreamSetInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("parameters", hop.ComponentFederationUpstreamSet), nil)
	if hop.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing federation upstream sets: %w", err)
	}

	var sets []hop.FederationUpstreamSetInfo

	err = unmarshal(resp.Body, &sets, "federation upstream sets")
	if err != nil {
		return nil, err
	}

	return sets, nil
}

// DeclareUpstreamSet implements hop.FederationClient.DeclareUpstreamSet.
func (c *FederationClient) DeclareUpstreamSet(ctx context.Context, vhost, name string, set hop.FederationUpstreamSet) error {
	err := set.Validate()
	if err != nil {
		return err
	}

	body := struct {
		Value hop.FederationUpstreamSet `json:"value"`
	}{set}

	_, err = c.httpClient.Put(ctx, apiPath("parameters", hop.ComponentFederationUpstreamSet, vhost, name), body)
	if err != nil {
		return fmt.Errorf("declaring federation upstream set: %w", err)
	}

	return nil
}

// DeleteUpstreamSet implements hop.FederationClient.DeleteUpstreamSet.
func (c *FederationClient) DeleteUpstreamSet(ctx context.Context, vhost, name string) error {
	_, err := c.httpClient.Delete(ctx, apiPath("parameters", hop.ComponentFederationUpstreamSet, vhost, name))
	if hop.IsNotFound(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("deleting federation upstream set: %w", err)
	}

	return nil
}

// ListLinks implements hop.FederationClient.ListLinks.
func (c *FederationClient) ListLinks(ctx context.Context) ([]hop.FederationLink, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("federation-links"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing federation links: %w", err)
	}

	var links []hop.FederationLink

	err = unmarshal(resp.Body, &links, "federation links")
	if err != nil {
		return nil, err
	}

	return links, nil
}
