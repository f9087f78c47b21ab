package hop

// RateDetails carries the current rate of a counter and, when a sampling
// window was requested, the observed samples.
type RateDetails struct {
	Rate    float64      `json:"rate"`
	Samples []RateSample `json:"samples,omitempty"`
	AvgRate float64      `json:"avg_rate,omitempty"`
}

// RateSample is one point of a sampled time series.
type RateSample struct {
	Sample    int64 `json:"sample"`
	Timestamp int64 `json:"timestamp"`
}

// MessageStats aggregates message throughput counters.
type MessageStats struct {
	Publish           int64        `json:"publish,omitempty"`
	PublishDetails    *RateDetails `json:"publish_details,omitempty"`
	Confirm           int64        `json:"confirm,omitempty"`
	ConfirmDetails    *RateDetails `json:"confirm_details,omitempty"`
	Deliver           int64        `json:"deliver,omitempty"`
	DeliverDetails    *RateDetails `json:"deliver_details,omitempty"`
	DeliverGet        int64        `json:"deliver_get,omitempty"`
	DeliverGetDetails *RateDetails `json:"deliver_get_details,omitempty"`
	DeliverNoAck      int64        `json:"deliver_no_ack,omitempty"`
	Get               int64        `json:"get,omitempty"`
	GetNoAck          int64        `json:"get_no_ack,omitempty"`
	Ack               int64        `json:"ack,omitempty"`
	AckDetails        *RateDetails `json:"ack_details,omitempty"`
	Redeliver         int64        `json:"redeliver,omitempty"`
	RedeliverDetails  *RateDetails `json:"redeliver_details,omitempty"`
	ReturnUnroutable  int64        `json:"return_unroutable,omitempty"`
}

// Overview is the broker-wide summary returned by GET /api/overview.
type Overview struct {
	ManagementVersion string `json:"management_version"`
	RabbitMQVersion   string `json:"rabbitmq_version"`
	ErlangVersion     string `json:"erlang_version"`
	ClusterName       string `json:"cluster_name"`
	Node              string `json:"node"`

	MessageStats MessageStats    `json:"message_stats"`
	QueueTotals  QueueTotals     `json:"queue_totals"`
	ObjectTotals ObjectTotals    `json:"object_totals"`
	Listeners    []Listener      `json:"listeners"`
	Contexts     []BrokerContext `json:"contexts"`

	StatisticsDBEventQueue int64 `json:"statistics_db_event_queue"`
}

// QueueTotals sums message counts across all queues.
type QueueTotals struct {
	Messages               int64 `json:"messages"`
	MessagesReady          int64 `json:"messages_ready"`
	MessagesUnacknowledged int64 `json:"messages_unacknowledged"`
}

// ObjectTotals counts topology objects cluster-wide.
type ObjectTotals struct {
	Connections int64 `json:"connections"`
	Channels    int64 `json:"channels"`
	Exchanges   int64 `json:"exchanges"`
	Queues      int64 `json:"queues"`
	Consumers   int64 `json:"consumers"`
}

// Listener describes one protocol listener on a node.
type Listener struct {
	Node      string `json:"node"`
	Protocol  string `json:"protocol"`
	IPAddress string `json:"ip_address"`
	Port      int    `json:"port"`
}

// BrokerContext describes one embedded web context on a node.
type BrokerContext struct {
	Node        string `json:"node,omitempty"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Port        string `json:"port"`
}

// NodeInfo describes one cluster node.
type NodeInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Running    bool   `json:"running"`
	Uptime     int64  `json:"uptime"`
	Processors int    `json:"processors"`

	MemoryUsed  int64 `json:"mem_used"`
	MemoryLimit int64 `json:"mem_limit"`
	MemoryAlarm bool  `json:"mem_alarm"`

	DiskFree      int64 `json:"disk_free"`
	DiskFreeLimit int64 `json:"disk_free_limit"`
	DiskFreeAlarm bool  `json:"disk_free_alarm"`

	FDUsed       int64 `json:"fd_used"`
	FDTotal      int64 `json:"fd_total"`
	SocketsUsed  int64 `json:"sockets_used"`
	SocketsTotal int64 `json:"sockets_total"`

	Partitions []string `json:"partitions"`
}

// ConnectionInfo describes one client connection.
type ConnectionInfo struct {
	Name     string `json:"name"`
	Node     string `json:"node"`
	Vhost    string `json:"vhost"`
	User     string `json:"user"`
	State    string `json:"state"`
	Protocol string `json:"protocol"`

	Channels    int    `json:"channels"`
	ChannelMax  int    `json:"channel_max"`
	FrameMax    int    `json:"frame_max"`
	Timeout     int    `json:"timeout"`
	UsesTLS     bool   `json:"ssl"`
	PeerHost    string `json:"peer_host"`
	PeerPort    int    `json:"peer_port"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	ConnectedAt int64  `json:"connected_at"`

	ClientProperties map[string]interface{} `json:"client_properties"`
}

// ConnectionDetails is the abbreviated connection reference embedded in
// channel listings.
type ConnectionDetails struct {
	Name     string `json:"name"`
	PeerHost string `json:"peer_host"`
	PeerPort int    `json:"peer_port"`
}

// ChannelInfo describes one channel.
type ChannelInfo struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	Node   string `json:"node"`
	Vhost  string `json:"vhost"`
	User   string `json:"user"`
	State  string `json:"state"`

	ConsumerCount          int  `json:"consumer_count"`
	MessagesUnacknowledged int  `json:"messages_unacknowledged"`
	MessagesUnconfirmed    int  `json:"messages_unconfirmed"`
	PrefetchCount          int  `json:"prefetch_count"`
	Transactional          bool `json:"transactional"`
	Confirm                bool `json:"confirm"`

	ConnectionDetails ConnectionDetails `json:"connection_details"`
	MessageStats      *MessageStats     `json:"message_stats,omitempty"`
}

// ChannelDetails is the abbreviated channel reference embedded in consumer
// listings.
type ChannelDetails struct {
	Name           string `json:"name"`
	Number         int    `json:"number"`
	Node           string `json:"node"`
	ConnectionName string `json:"connection_name"`
	PeerHost       string `json:"peer_host"`
	PeerPort       int    `json:"peer_port"`
	User           string `json:"user"`
}

// QueueDetails is the abbreviated queue reference embedded in consumer
// listings.
type QueueDetails struct {
	Name  string `json:"name"`
	Vhost string `json:"vhost"`
}

// ConsumerInfo describes one registered consumer.
type ConsumerInfo struct {
	ConsumerTag     string                 `json:"consumer_tag"`
	PrefetchCount   int                    `json:"prefetch_count"`
	Exclusive       bool                   `json:"exclusive"`
	AckRequired     bool                   `json:"ack_required"`
	Active          bool                   `json:"active"`
	ActivityStatus  string                 `json:"activity_status"`
	ConsumerTimeout int                    `json:"consumer_timeout"`
	Arguments       map[string]interface{} `json:"arguments"`

	ChannelDetails ChannelDetails `json:"channel_details"`
	Queue          QueueDetails   `json:"queue"`
}

// GarbageCollection describes per-queue GC settings as reported by the
// server.
type GarbageCollection struct {
	FullSweepAfter  int `json:"fullsweep_after"`
	MinHeapSize     int `json:"min_heap_size"`
	MinBinVheapSize int `json:"min_bin_vheap_size"`
	MinorGCs        int `json:"minor_gcs"`
}

// QueueInfo describes one queue.
type QueueInfo struct {
	Name       string `json:"name"`
	Vhost      string `json:"vhost"`
	Node       string `json:"node"`
	Type       string `json:"type,omitempty"`
	State      string `json:"state,omitempty"`
	Durable    bool   `json:"durable"`
	AutoDelete bool   `json:"auto_delete"`
	Exclusive  bool   `json:"exclusive"`

	Arguments map[string]interface{} `json:"arguments"`
	Policy    string                 `json:"policy,omitempty"`

	Messages                      int64        `json:"messages"`
	MessagesDetails               *RateDetails `json:"messages_details,omitempty"`
	MessagesReady                 int64        `json:"messages_ready"`
	MessagesReadyDetails          *RateDetails `json:"messages_ready_details,omitempty"`
	MessagesUnacknowledged        int64        `json:"messages_unacknowledged"`
	MessagesUnacknowledgedDetails *RateDetails `json:"messages_unacknowledged_details,omitempty"`

	Consumers    int64              `json:"consumers"`
	Memory       int64              `json:"memory"`
	MessageStats *MessageStats      `json:"message_stats,omitempty"`
	GC           *GarbageCollection `json:"garbage_collection,omitempty"`
}

// QueueSettings are the arguments of a queue declare.
type QueueSettings struct {
	Type       string                 `json:"type,omitempty"`
	Durable    bool                   `json:"durable"`
	AutoDelete bool                   `json:"auto_delete"`
	Arguments  map[string]interface{} `json:"arguments,omitempty"`
}

// ExchangeInfo describes one exchange.
type ExchangeInfo struct {
	Name       string `json:"name"`
	Vhost      string `json:"vhost"`
	Type       string `json:"type"`
	Durable    bool   `json:"durable"`
	AutoDelete bool   `json:"auto_delete"`
	Internal   bool   `json:"internal"`

	Arguments    map[string]interface{} `json:"arguments"`
	MessageStats *MessageStats          `json:"message_stats,omitempty"`
}

// ExchangeSettings are the arguments of an exchange declare.
type ExchangeSettings struct {
	Type       string                 `json:"type"`
	Durable    bool                   `json:"durable"`
	AutoDelete bool                   `json:"auto_delete"`
	Internal   bool                   `json:"internal,omitempty"`
	Arguments  map[string]interface{} `json:"arguments,omitempty"`
}

// BindingInfo describes one binding between an exchange and a queue or
// another exchange.
type BindingInfo struct {
	Source          string                 `json:"source"`
	Vhost           string                 `json:"vhost"`
	Destination     string                 `json:"destination"`
	DestinationType string                 `json:"destination_type"`
	RoutingKey      string                 `json:"routing_key"`
	Arguments       map[string]interface{} `json:"arguments"`
	PropertiesKey   string                 `json:"properties_key,omitempty"`
}

// VhostInfo describes one virtual host. Description and Tags are only
// reported (and only accepted on update) by brokers with vhost metadata
// support.
type VhostInfo struct {
	Name    string `json:"name"`
	Tracing bool   `json:"tracing"`

	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	Messages               int64 `json:"messages,omitempty"`
	MessagesReady          int64 `json:"messages_ready,omitempty"`
	MessagesUnacknowledged int64 `json:"messages_unacknowledged,omitempty"`
}

// VhostSettings are the arguments of a vhost update.
type VhostSettings struct {
	Tracing     bool     `json:"tracing"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UserInfo describes one user as reported by the server. Passwords are
// never reported, only the salted hash.
type UserInfo struct {
	Name             string   `json:"name"`
	PasswordHash     string   `json:"password_hash"`
	HashingAlgorithm string   `json:"hashing_algorithm,omitempty"`
	Tags             UserTags `json:"tags"`
}

// UserSettings are the arguments of a user upsert. Provide either Password
// or PasswordHash, not both.
type UserSettings struct {
	Password         string   `json:"password,omitempty"`
	PasswordHash     string   `json:"password_hash,omitempty"`
	HashingAlgorithm string   `json:"hashing_algorithm,omitempty"`
	Tags             UserTags `json:"tags"`
}

// WhoamiInfo identifies the authenticated user.
type WhoamiInfo struct {
	Name        string   `json:"name"`
	Tags        UserTags `json:"tags"`
	AuthBackend string   `json:"auth_backend,omitempty"`
}

// Permissions grants a user regexp-scoped rights in a vhost.
type Permissions struct {
	User      string `json:"user"`
	Vhost     string `json:"vhost"`
	Configure string `json:"configure"`
	Write     string `json:"write"`
	Read      string `json:"read"`
}

// TopicPermissions grants a user per-exchange topic rights in a vhost.
// Requires a broker with topic-permissions support.
type TopicPermissions struct {
	User     string `json:"user"`
	Vhost    string `json:"vhost"`
	Exchange string `json:"exchange"`
	Write    string `json:"write"`
	Read     string `json:"read"`
}

// Policy is a pattern-matched configuration override applied to matching
// queues/exchanges in a vhost. Definition is an open map: the set of valid
// keys grows with the broker.
type Policy struct {
	Name       string       `json:"name"`
	Vhost      string       `json:"vhost"`
	Pattern    string       `json:"pattern"`
	ApplyTo    string       `json:"apply-to"`
	Priority   int          `json:"priority"`
	Definition GenericValue `json:"definition"`
}

// ShovelInfo is a declared shovel read back from the runtime parameter
// store.
type ShovelInfo struct {
	Name       string           `json:"name"`
	Vhost      string           `json:"vhost"`
	Component  string           `json:"component"`
	Definition ShovelDefinition `json:"value"`
}

// ShovelStatus is the operational state of one shovel as reported by the
// shovel management plugin.
type ShovelStatus struct {
	Name      string `json:"name"`
	Vhost     string `json:"vhost"`
	Type      string `json:"type"`
	State     string `json:"state"`
	Timestamp string `json:"timestamp,omitempty"`
}

// FederationUpstream is a declared upstream read back from the runtime
// parameter store.
type FederationUpstream struct {
	Name       string               `json:"name"`
	Vhost      string               `json:"vhost"`
	Component  string               `json:"component"`
	Definition FederationDefinition `json:"value"`
}

// FederationUpstreamSetInfo is a declared upstream set as reported by the
// server.
type FederationUpstreamSetInfo struct {
	Name      string                `json:"name"`
	Vhost     string                `json:"vhost"`
	Component string                `json:"component"`
	Members   FederationUpstreamSet `json:"value"`
}

// FederationLink is the operational state of one federation link.
type FederationLink struct {
	Node            string `json:"node"`
	Vhost           string `json:"vhost"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	Upstream        string `json:"upstream"`
	UpstreamSet     string `json:"upstream_set,omitempty"`
	Exchange        string `json:"exchange,omitempty"`
	Queue           string `json:"queue,omitempty"`
	UpstreamQueue   string `json:"upstream_queue,omitempty"`
	LocalConnection string `json:"local_connection,omitempty"`
}

// GlobalParameter is a cluster-wide parameter such as "cluster_name" or
// "internal_cluster_id". Value is open-shaped.
type GlobalParameter struct {
	Name  string         `json:"name"`
	Value ParameterValue `json:"value"`
}

// DefinitionsExport is the broker topology snapshot returned by
// GET /api/definitions.
type DefinitionsExport struct {
	RabbitVersion string `json:"rabbit_version"`

	Vhosts           []VhostInfo        `json:"vhosts"`
	Users            []UserInfo         `json:"users"`
	Permissions      []Permissions      `json:"permissions"`
	Queues           []QueueInfo        `json:"queues"`
	Exchanges        []ExchangeInfo     `json:"exchanges"`
	Bindings         []BindingInfo      `json:"bindings"`
	Policies         []Policy           `json:"policies"`
	Parameters       []RuntimeParameter `json:"parameters"`
	GlobalParameters []GlobalParameter  `json:"global_parameters"`
}

// AlivenessTestResult is the outcome of the per-vhost aliveness check.
type AlivenessTestResult struct {
	Status string `json:"status"`
}
