package client

import (
	"context"
	"fmt"
	"time"

	"github.com/ifyun/hop/internal/constants"
	"github.com/ifyun/hop/internal/http"
	"github.com/ifyun/hop/pkg/hop"
)

// Client implements hop.Client against one broker endpoint.
type Client struct {
	httpClient *http.Client
	logger     hop.Logger

	// serverVersion is fetched once per client and then read-only.
	// Concurrent first readers may race to fetch it; the fetch is
	// idempotent so the last write wins harmlessly.
	serverVersion string

	queues           hop.QueuesClient
	exchanges        hop.ExchangesClient
	bindings         hop.BindingsClient
	vhosts           hop.VhostsClient
	connections      hop.ConnectionsClient
	channels         hop.ChannelsClient
	consumers        hop.ConsumersClient
	nodes            hop.NodesClient
	users            hop.UsersClient
	permissions      hop.PermissionsClient
	topicPermissions hop.TopicPermissionsClient
	policies         hop.PoliciesClient
	operatorPolicies hop.PoliciesClient
	parameters       hop.ParametersClient
	shovels          hop.ShovelsClient
	federation       hop.FederationClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *hop.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.SkipTLSVerify {
		httpOpts = append(httpOpts, http.WithSkipTLSVerify())
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a management API client.
func New(config *hop.Config) (*Client, error) {
	if config == nil {
		return nil, hop.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, hop.ErrEndpointRequired
	}

	httpClient := http.NewClient(config.Endpoint, config.Username, config.Password, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}
	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients wires up all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.queues = NewQueuesClient(c.httpClient)
	c.exchanges = NewExchangesClient(c.httpClient)
	c.bindings = NewBindingsClient(c.httpClient)
	c.vhosts = NewVhostsClient(c.httpClient, c.ServerVersion)
	c.connections = NewConnectionsClient(c.httpClient, c.ServerVersion)
	c.channels = NewChannelsClient(c.httpClient)
	c.consumers = NewConsumersClient(c.httpClient)
	c.nodes = NewNodesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.permissions = NewPermissionsClient(c.httpClient)
	c.topicPermissions = NewTopicPermissionsClient(c.httpClient, c.ServerVersion)
	c.policies = NewPoliciesClient(c.httpClient, "policies")
	c.operatorPolicies = NewPoliciesClient(c.httpClient, "operator-policies")
	c.parameters = NewParametersClient(c.httpClient)
	c.shovels = NewShovelsClient(c.httpClient)
	c.federation = NewFederationClient(c.httpClient)
}

// Overview implements hop.Client.Overview.
func (c *Client) Overview(ctx context.Context) (*hop.Overview, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("overview"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting overview: %w", err)
	}

	var overview hop.Overview

	err = unmarshal(resp.Body, &overview, "overview")
	if err != nil {
		return nil, err
	}

	return &overview, nil
}

// ServerVersion implements hop.Client.ServerVersion with a fetch-if-absent
// cache. A failed fetch yields the UnknownVersion sentinel together with
// the error; the sentinel is not cached, so a later call retries.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	if c.serverVersion != "" {
		return c.serverVersion, nil
	}

	overview, err := c.Overview(ctx)
	if err != nil {
		return hop.UnknownVersion, fmt.Errorf("fetching server version: %w", err)
	}

	if overview.RabbitMQVersion == "" {
		return hop.UnknownVersion, nil
	}

	c.serverVersion = overview.RabbitMQVersion

	return c.serverVersion, nil
}

// Supports implements hop.Client.Supports.
func (c *Client) Supports(ctx context.Context, capability hop.Capability) (bool, error) {
	version, err := c.ServerVersion(ctx)
	if err != nil {
		return false, err
	}

	return hop.SupportsCapability(version, capability), nil
}

// Whoami implements hop.Client.Whoami.
func (c *Client) Whoami(ctx context.Context) (*hop.WhoamiInfo, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("whoami"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting whoami: %w", err)
	}

	var whoami hop.WhoamiInfo

	err = unmarshal(resp.Body, &whoami, "whoami")
	if err != nil {
		return nil, err
	}

	return &whoami, nil
}

// AlivenessTest implements hop.Client.AlivenessTest.
func (c *Client) AlivenessTest(ctx context.Context, vhost string) (*hop.AlivenessTestResult, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("aliveness-test", vhost), nil)
	if err != nil {
		return nil, fmt.Errorf("running aliveness test: %w", err)
	}

	var result hop.AlivenessTestResult

	err = unmarshal(resp.Body, &result, "aliveness test")
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ExportDefinitions implements hop.Client.ExportDefinitions.
func (c *Client) ExportDefinitions(ctx context.Context) (*hop.DefinitionsExport, error) {
	resp, err := c.httpClient.Get(ctx, apiPath("definitions"), nil)
	if err != nil {
		return nil, fmt.Errorf("exporting definitions: %w", err)
	}

	var definitions hop.DefinitionsExport

	err = unmarshal(resp.Body, &definitions, "definitions")
	if err != nil {
		return nil, err
	}

	return &definitions, nil
}

// AwaitDefaults returns the library's default polling bounds.
func AwaitDefaults() (timeout, interval time.Duration) {
	return constants.DefaultAwaitTimeout, constants.DefaultAwaitInterval
}

// Resource client accessors.

// Queues implements hop.Client.Queues.
func (c *Client) Queues() hop.QueuesClient {
	return c.queues
}

// Exchanges implements hop.Client.Exchanges.
func (c *Client) Exchanges() hop.ExchangesClient {
	return c.exchanges
}

// Bindings implements hop.Client.Bindings.
func (c *Client) Bindings() hop.BindingsClient {
	return c.bindings
}

// Vhosts implements hop.Client.Vhosts.
func (c *Client) Vhosts() hop.VhostsClient {
	return c.vhosts
}

// Connections implements hop.Client.Connections.
func (c *Client) Connections() hop.ConnectionsClient {
	return c.connections
}

// Channels implements hop.Client.Channels.
func (c *Client) Channels() hop.ChannelsClient {
	return c.channels
}

// Consumers implements hop.Client.Consumers.
func (c *Client) Consumers() hop.ConsumersClient {
	return c.consumers
}

// Nodes implements hop.Client.Nodes.
func (c *Client) Nodes() hop.NodesClient {
	return c.nodes
}

// Users implements hop.Client.Users.
func (c *Client) Users() hop.UsersClient {
	return c.users
}

// Permissions implements hop.Client.Permissions.
func (c *Client) Permissions() hop.PermissionsClient {
	return c.permissions
}

// TopicPermissions implements hop.Client.TopicPermissions.
func (c *Client) TopicPermissions() hop.TopicPermissionsClient {
	return c.topicPermissions
}

// Policies implements hop.Client.Policies.
func (c *Client) Policies() hop.PoliciesClient {
	return c.policies
}

// OperatorPolicies implements hop.Client.OperatorPolicies.
func (c *Client) OperatorPolicies() hop.PoliciesClient {
	return c.operatorPolicies
}

// Parameters implements hop.Client.Parameters.
func (c *Client) Parameters() hop.ParametersClient {
	return c.parameters
}

// Shovels implements hop.Client.Shovels.
func (c *Client) Shovels() hop.ShovelsClient {
	return c.shovels
}

// Federation implements hop.Client.Federation.
func (c *Client) Federation() hop.FederationClient {
	return c.federation
}
