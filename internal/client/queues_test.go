package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/ifyun/hop/internal/client"
	"github.com/ifyun/hop/pkg/hop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) hop.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(&hop.Config{Endpoint: server.URL, Username: "guest", Password: "guest"})
	require.NoError(t, err)

	return c
}

func TestQueuesClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/queues", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		_ = json.NewEncoder(writer).Encode([]hop.QueueInfo{
			{Name: "orders", Vhost: "/", Durable: true, Messages: 7},
			{Name: "audit", Vhost: "/", Durable: true},
		})
	})

	queues, err := c.Queues().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, queues, 2)
	assert.Equal(t, "orders", queues[0].Name)
	assert.Equal(t, int64(7), queues[0].Messages)
}

func TestQueuesClient_DeclareThenFilteredPage(t *testing.T) {
	t.Parallel()

	declared := false

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case http.MethodPut:
			assert.Equal(t, "/api/queues/%2F/hop.test", request.URL.EscapedPath())

			var settings hop.QueueSettings

			require.NoError(t, json.NewDecoder(request.Body).Decode(&settings))
			assert.False(t, settings.Durable)

			declared = true

			writer.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			assert.Equal(t, "/api/queues", request.URL.Path)

			query := request.URL.Query()
			assert.Equal(t, `^hop\.test$`, query.Get("name"))
			assert.Equal(t, "true", query.Get("use_regex"))
			assert.Equal(t, "1", query.Get("page"))
			assert.Equal(t, "10", query.Get("page_size"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"items":          []hop.QueueInfo{{Name: "hop.test", Vhost: "/", Durable: false}},
				"page":           1,
				"page_count":     1,
				"item_count":     1,
				"filtered_count": 1,
				"total_count":    64,
			})
		}
	})

	ctx := context.Background()

	err := c.Queues().Declare(ctx, "/", "hop.test", hop.QueueSettings{Durable: false})
	require.NoError(t, err)
	assert.True(t, declared)

	params := hop.NewQueryParams().
		WithNameRegex(`^hop\.test$`).
		WithPage(1).
		WithPageSize(10)

	page, err := c.Queues().ListPaged(ctx, params, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, page.FilteredCount)
	assert.Equal(t, 1, page.ItemCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "hop.test", page.Items[0].Name)
	assert.False(t, page.Items[0].Durable)
	assert.False(t, page.HasNext())
}

func TestQueuesClient_ListPagedDefaultsPage(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		// Paged listings always carry a page number so the server
		// returns the counted envelope.
		assert.Equal(t, "1", request.URL.Query().Get("page"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"items":          []hop.QueueInfo{},
			"page":           1,
			"page_count":     1,
			"item_count":     0,
			"filtered_count": 0,
			"total_count":    0,
		})
	})

	page, err := c.Queues().ListPaged(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestQueuesClient_ListPagedLeavesParamsUntouched(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "1", request.URL.Query().Get("page"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"items":          []hop.QueueInfo{},
			"page":           1,
			"page_count":     1,
			"item_count":     0,
			"filtered_count": 0,
			"total_count":    0,
		})
	})

	params := hop.NewQueryParams().WithName("orders")

	_, err := c.Queues().ListPaged(context.Background(), params, nil)
	require.NoError(t, err)
	assert.Zero(t, params.Page)
}

func TestQueuesClient_ListPagedWithDetails(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		assert.Equal(t, "60", query.Get("msg_rates_age"))
		assert.Equal(t, "5", query.Get("msg_rates_incr"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"items":          []hop.QueueInfo{},
			"page":           1,
			"page_count":     1,
			"item_count":     0,
			"filtered_count": 0,
			"total_count":    0,
		})
	})

	details := (&hop.DetailsParams{}).WithMessageRates(60, 5)

	_, err := c.Queues().ListPaged(context.Background(), nil, details)
	require.NoError(t, err)
}

func TestQueuesClient_ListIn(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/queues/prod", request.URL.EscapedPath())
		_ = json.NewEncoder(writer).Encode([]hop.QueueInfo{{Name: "orders", Vhost: "prod"}})
	})

	queues, err := c.Queues().ListIn(context.Background(), "prod", nil)
	require.NoError(t, err)
	require.Len(t, queues, 1)
	assert.Equal(t, "prod", queues[0].Vhost)
}

func TestQueuesClient_ListInMissingVhost(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"error": "Object Not Found", "reason": "vhost ghost not found"}`))
	})

	queues, err := c.Queues().ListIn(context.Background(), "ghost", nil)
	require.NoError(t, err)
	assert.Nil(t, queues)
}

func TestQueuesClient_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/queues/%2F/orders", request.URL.EscapedPath())
		_ = json.NewEncoder(writer).Encode(hop.QueueInfo{Name: "orders", Vhost: "/", Consumers: 2})
	})

	queue, err := c.Queues().Get(context.Background(), "/", "orders")
	require.NoError(t, err)
	assert.Equal(t, int64(2), queue.Consumers)
}

func TestQueuesClient_GetAbsent(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	queue, err := c.Queues().Get(context.Background(), "/", "ghost")
	require.NoError(t, err)
	assert.Nil(t, queue)
}

func TestQueuesClient_DeleteAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNotFound)
	})

	err := c.Queues().Delete(context.Background(), "/", "ghost")
	require.NoError(t, err)
}

func TestQueuesClient_Purge(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/api/queues/%2F/orders/contents", request.URL.EscapedPath())
		writer.WriteHeader(http.StatusNoContent)
	})

	err := c.Queues().Purge(context.Background(), "/", "orders")
	require.NoError(t, err)
}

func TestQueuesClient_ListBindings(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/queues/%2F/orders/bindings", request.URL.EscapedPath())
		_ = json.NewEncoder(writer).Encode([]hop.BindingInfo{
			{Source: "", Destination: "orders", DestinationType: "queue", RoutingKey: "orders"},
			{Source: "events", Destination: "orders", DestinationType: "queue", RoutingKey: "order.*"},
		})
	})

	bindings, err := c.Queues().ListBindings(context.Background(), "/", "orders")
	require.NoError(t, err)
	require.Len(t, bindings, 2)
	assert.Equal(t, "events", bindings[1].Source)
}
