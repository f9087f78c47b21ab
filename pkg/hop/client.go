package hop

import (
	"context"
	"time"
)

// TopologyClients provides access to topology resource clients.
type TopologyClients interface {
	Queues() QueuesClient
	Exchanges() ExchangesClient
	Bindings() BindingsClient
	Vhosts() VhostsClient
}

// RuntimeClients provides access to live-state resource clients.
type RuntimeClients interface {
	Connections() ConnectionsClient
	Channels() ChannelsClient
	Consumers() ConsumersClient
	Nodes() NodesClient
}

// AccessClients provides access to user and permission clients.
type AccessClients interface {
	Users() UsersClient
	Permissions() PermissionsClient
	TopicPermissions() TopicPermissionsClient
}

// ConfigurationClients provides access to policy and parameter clients.
type ConfigurationClients interface {
	Policies() PoliciesClient
	OperatorPolicies() PoliciesClient
	Parameters() ParametersClient
	Shovels() ShovelsClient
	Federation() FederationClient
}

// Client is the full management API surface.
type Client interface {
	TopologyClients
	RuntimeClients
	AccessClients
	ConfigurationClients

	// Overview returns the broker-wide summary.
	Overview(ctx context.Context) (*Overview, error)
	// ServerVersion returns the broker version reported by the overview,
	// fetched once and cached for the client's lifetime. When the fetch
	// fails it returns the UnknownVersion sentinel.
	ServerVersion(ctx context.Context) (string, error)
	// Supports reports whether the connected broker satisfies the
	// capability's minimum version.
	Supports(ctx context.Context, capability Capability) (bool, error)
	// Whoami identifies the authenticated user.
	Whoami(ctx context.Context) (*WhoamiInfo, error)
	// AlivenessTest declares, publishes to, and consumes from a test
	// queue in the vhost.
	AlivenessTest(ctx context.Context, vhost string) (*AlivenessTestResult, error)
	// ExportDefinitions returns the broker topology snapshot.
	ExportDefinitions(ctx context.Context) (*DefinitionsExport, error)
}

// QueuesClient exposes queue operations. Get returns (nil, nil) when the
// queue or its vhost does not exist.
type QueuesClient interface {
	List(ctx context.Context, params *QueryParams) ([]QueueInfo, error)
	ListPaged(ctx context.Context, params *QueryParams, details *DetailsParams) (*Page[QueueInfo], error)
	ListIn(ctx context.Context, vhost string, params *QueryParams) ([]QueueInfo, error)
	ListInPaged(ctx context.Context, vhost string, params *QueryParams, details *DetailsParams) (*Page[QueueInfo], error)
	Get(ctx context.Context, vhost, name string) (*QueueInfo, error)
	Declare(ctx context.Context, vhost, name string, settings QueueSettings) error
	Delete(ctx context.Context, vhost, name string) error
	Purge(ctx context.Context, vhost, name string) error
	ListBindings(ctx context.Context, vhost, name string) ([]BindingInfo, error)
}

// ExchangesClient exposes exchange operations.
type ExchangesClient interface {
	List(ctx context.Context, params *QueryParams) ([]ExchangeInfo, error)
	ListPaged(ctx context.Context, params *QueryParams) (*Page[ExchangeInfo], error)
	ListIn(ctx context.Context, vhost string, params *QueryParams) ([]ExchangeInfo, error)
	Get(ctx context.Context, vhost, name string) (*ExchangeInfo, error)
	Declare(ctx context.Context, vhost, name string, settings ExchangeSettings) error
	Delete(ctx context.Context, vhost, name string) error
	ListBindingsWithSource(ctx context.Context, vhost, name string) ([]BindingInfo, error)
	ListBindingsWithDestination(ctx context.Context, vhost, name string) ([]BindingInfo, error)
}

// BindingsClient exposes binding operations.
type BindingsClient interface {
	List(ctx context.Context) ([]BindingInfo, error)
	ListIn(ctx context.Context, vhost string) ([]BindingInfo, error)
	ListQueueBindings(ctx context.Context, vhost, exchange, queue string) ([]BindingInfo, error)
	DeclareQueueBinding(ctx context.Context, vhost, exchange, queue, routingKey string, arguments map[string]interface{}) error
	DeleteQueueBinding(ctx context.Context, vhost, exchange, queue, propertiesKey string) error
	DeclareExchangeBinding(ctx context.Context, vhost, source, destination, routingKey string, arguments map[string]interface{}) error
	ListExchangeBindings(ctx context.Context, vhost, source, destination string) ([]BindingInfo, error)
	DeleteExchangeBinding(ctx context.Context, vhost, source, destination, propertiesKey string) error
}

// VhostsClient exposes vhost operations.
type VhostsClient interface {
	List(ctx context.Context, params *QueryParams) ([]VhostInfo, error)
	Get(ctx context.Context, name string) (*VhostInfo, error)
	Put(ctx context.Context, name string, settings VhostSettings) error
	Delete(ctx context.Context, name string) error
}

// ConnectionsClient exposes connection operations. ListOfUser requires a
// broker with per-user connection listing and returns (nil, nil) below
// that.
type ConnectionsClient interface {
	List(ctx context.Context, params *QueryParams) ([]ConnectionInfo, error)
	ListPaged(ctx context.Context, params *QueryParams) (*Page[ConnectionInfo], error)
	Get(ctx context.Context, name string) (*ConnectionInfo, error)
	Close(ctx context.Context, name, reason string) error
	ListOfUser(ctx context.Context, username string) ([]ConnectionInfo, error)
}

// ChannelsClient exposes channel operations.
type ChannelsClient interface {
	List(ctx context.Context, params *QueryParams) ([]ChannelInfo, error)
	ListOfConnection(ctx context.Context, connectionName string) ([]ChannelInfo, error)
	Get(ctx context.Context, name string) (*ChannelInfo, error)
}

// ConsumersClient exposes consumer listings.
type ConsumersClient interface {
	List(ctx context.Context) ([]ConsumerInfo, error)
	ListIn(ctx context.Context, vhost string) ([]ConsumerInfo, error)
}

// NodesClient exposes cluster node listings.
type NodesClient interface {
	List(ctx context.Context) ([]NodeInfo, error)
	Get(ctx context.Context, name string) (*NodeInfo, error)
}

// UsersClient exposes user operations.
type UsersClient interface {
	List(ctx context.Context) ([]UserInfo, error)
	Get(ctx context.Context, name string) (*UserInfo, error)
	Put(ctx context.Context, name string, settings UserSettings) error
	Delete(ctx context.Context, name string) error
}

// PermissionsClient exposes vhost permission operations.
type PermissionsClient interface {
	List(ctx context.Context) ([]Permissions, error)
	Get(ctx context.Context, vhost, user string) (*Permissions, error)
	Update(ctx context.Context, vhost, user string, permissions Permissions) error
	Clear(ctx context.Context, vhost, user string) error
}

// TopicPermissionsClient exposes topic permission operations. On brokers
// without topic-permissions support every method returns absent results and
// mutations are skipped.
type TopicPermissionsClient interface {
	List(ctx context.Context) ([]TopicPermissions, error)
	Get(ctx context.Context, vhost, user string) ([]TopicPermissions, error)
	Update(ctx context.Context, vhost, user string, permissions TopicPermissions) error
	Clear(ctx context.Context, vhost, user string) error
}

// PoliciesClient exposes policy operations; the same interface serves
// operator policies.
type PoliciesClient interface {
	List(ctx context.Context) ([]Policy, error)
	ListIn(ctx context.Context, vhost string) ([]Policy, error)
	Get(ctx context.Context, vhost, name string) (*Policy, error)
	Put(ctx context.Context, vhost, name string, policy Policy) error
	Delete(ctx context.Context, vhost, name string) error
}

// ParametersClient exposes runtime and global parameter operations.
type ParametersClient interface {
	List(ctx context.Context) ([]RuntimeParameter, error)
	ListFor(ctx context.Context, component string) ([]RuntimeParameter, error)
	ListForIn(ctx context.Context, component, vhost string) ([]RuntimeParameter, error)
	Get(ctx context.Context, component, vhost, name string) (*RuntimeParameter, error)
	Put(ctx context.Context, parameter RuntimeParameter) error
	Delete(ctx context.Context, component, vhost, name string) error

	ListGlobal(ctx context.Context) ([]GlobalParameter, error)
	GetGlobal(ctx context.Context, name string) (*GlobalParameter, error)
	PutGlobal(ctx context.Context, name string, value interface{}) error
	DeleteGlobal(ctx context.Context, name string) error
}

// ShovelsClient exposes shovel operations.
type ShovelsClient interface {
	List(ctx context.Context) ([]ShovelInfo, error)
	ListIn(ctx context.Context, vhost string) ([]ShovelInfo, error)
	Get(ctx context.Context, vhost, name string) (*ShovelInfo, error)
	Declare(ctx context.Context, vhost, name string, definition ShovelDefinition) error
	Delete(ctx context.Context, vhost, name string) error
	ListStatus(ctx context.Context) ([]ShovelStatus, error)
}

// FederationClient exposes federation upstream and link operations.
type FederationClient interface {
	ListUpstreams(ctx context.Context) ([]FederationUpstream, error)
	ListUpstreamsIn(ctx context.Context, vhost string) ([]FederationUpstream, error)
	GetUpstream(ctx context.Context, vhost, name string) (*FederationUpstream, error)
	DeclareUpstream(ctx context.Context, vhost, name string, definition FederationDefinition) error
	DeleteUpstream(ctx context.Context, vhost, name string) error
	ListUpstreamSets(ctx context.Context) ([]FederationUpstreamSetInfo, error)
	DeclareUpstreamSet(ctx context.Context, vhost, name string, set FederationUpstreamSet) error
	DeleteUpstreamSet(ctx context.Context, vhost, name string) error
	ListLinks(ctx context.Context) ([]FederationLink, error)
}

// Logger is the structured logging interface the transport reports through.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config carries everything needed to build a Client.
type Config struct {
	// Endpoint is the base URL of the management API, e.g.
	// "http://localhost:15672". hopclient.New normalizes it by trimming a
	// trailing slash and adding "http://" when no scheme is present.
	Endpoint string
	// Username and Password are sent as basic credentials on every
	// request.
	Username string
	Password string

	// HTTPTimeout bounds each request; zero means a library default.
	HTTPTimeout time.Duration
	// RetryMax caps transport-level retries (connection errors, 5xx,
	// 429). Mapped API errors are never retried.
	RetryMax int
	// RetryWaitMin/RetryWaitMax bound the backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request/response logging through Logger.
	Debug bool
	// Logger receives transport logs; nil disables them.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// SkipTLSVerify disables certificate verification. Development only.
	SkipTLSVerify bool
}
