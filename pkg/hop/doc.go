// Package hop provides a typed client for the RabbitMQ management HTTP
// API: inspecting and configuring broker topology (connections, channels,
// queues, exchanges, bindings, users, policies, federation, shovels) and
// decoding the API's heterogeneous JSON responses into strongly-shaped
// results.
//
// Construct a client with pkg/hopclient:
//
//	client, err := hopclient.New(&hop.Config{
//		Endpoint: "http://localhost:15672",
//		Username: "guest",
//		Password: "guest",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := client.Queues().ListPaged(ctx,
//		hop.NewQueryParams().WithNameRegex("^orders\\.").WithPage(1).WithPageSize(50),
//		nil)
//
// List endpoints accept QueryParams (name filter, pagination, sorting,
// column selection) and, where the server keeps time series, DetailsParams
// (sampling windows for rates and queue lengths). Paginated responses
// decode into Page values with consistent counters.
//
// The management API's view of connections, channels, consumers, and
// statistics lags real broker state. Await wraps a read in a bounded
// synchronous polling loop for callers that need to observe an action they
// just performed:
//
//	conns, err := hop.Await(ctx,
//		func(ctx context.Context) ([]hop.ConnectionInfo, error) {
//			return client.Connections().List(ctx, nil)
//		},
//		hop.ListNonEmpty,
//		hop.AwaitOptions{Timeout: 10 * time.Second, Interval: 500 * time.Millisecond})
//
// Endpoints and fields that newer brokers added are gated on the server
// version reported by the overview: Client.Supports answers whether a
// Capability is available, and gated operations return absent results
// instead of failing on older brokers.
package hop
