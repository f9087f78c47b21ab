package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ifyun/hop/pkg/hop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangesClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/exchanges", request.URL.Path)

		_ = json.NewEncoder(writer).Encode([]hop.ExchangeInfo{
			{Name: "", Vhost: "/", Type: "direct", Durable: true},
			{Name: "amq.topic", Vhost: "/", Type: "topic", Durable: true},
		})
	})

	exchanges, err := c.Exchanges().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, exchanges, 2)
	assert.Equal(t, "topic", exchanges[1].Type)
}

func TestExchangesClient_ListPaged(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "5", query.Get("page_size"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"items":          []hop.ExchangeInfo{{Name: "events", Vhost: "/", Type: "fanout"}},
			"page":           2,
			"page_count":     2,
			"item_count":     1,
			"filtered_count": 6,
			"total_count":    11,
		})
	})

	params := hop.NewQueryParams().WithPage(2).WithPageSize(5)

	page, err := c.Exchanges().ListPaged(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 6, page.FilteredCount)
	assert.False(t, page.HasNext())
}

func TestExchangesClient_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/exchanges/%2F/events", request.URL.EscapedPath())
		_ = json.NewEncoder(writer).Encode(hop.ExchangeInfo{Name: "events", Vhost: "/", Type: "fanout"})
	})

	exchange, err := c.Exchanges().Get(context.Background(), "/", "events")
	require.NoError(t, err)
	assert.Equal(t, "fanout", exchange.Type)
}

func TestExchangesClient_GetAbsent(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	exchange, err := c.Exchanges().Get(context.Background(), "/", "ghost")
	require.NoError(t, err)
	assert.Nil(t, exchange)
}

func TestExchangesClient_DeclareRequiresType(t *testing.T) {
	t.Parallel()

	requests := 0

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests++
	})

	err := c.Exchanges().Declare(context.Background(), "/", "events", hop.ExchangeSettings{})
	require.Error(t, err)
	assert.True(t, hop.IsValidation(err))

	// The pre-flight check fails before any request is issued.
	assert.Equal(t, 0, requests)
}

func TestExchangesClient_Declare(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/api/exchanges/%2F/events", request.URL.EscapedPath())

		var settings hop.ExchangeSettings

		require.NoError(t, json.NewDecoder(request.Body).Decode(&settings))
		assert.Equal(t, "topic", settings.Type)

		writer.WriteHeader(http.StatusCreated)
	})

	err := c.Exchanges().Declare(context.Background(), "/", "events",
		hop.ExchangeSettings{Type: "topic", Durable: true})
	require.NoError(t, err)
}

func TestExchangesClient_DeleteAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	err := c.Exchanges().Delete(context.Background(), "/", "ghost")
	require.NoError(t, err)
}

func TestExchangesClient_ListBindings(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.EscapedPath() {
		case "/api/exchanges/%2F/events/bindings/source":
			_ = json.NewEncoder(writer).Encode([]hop.BindingInfo{
				{Source: "events", Destination: "orders", DestinationType: "queue"},
			})
		case "/api/exchanges/%2F/events/bindings/destination":
			_ = json.NewEncoder(writer).Encode([]hop.BindingInfo{
				{Source: "upstream", Destination: "events", DestinationType: "exchange"},
			})
		default:
			t.Errorf("unexpected path %s", request.URL.EscapedPath())
		}
	})

	ctx := context.Background()

	asSource, err := c.Exchanges().ListBindingsWithSource(ctx, "/", "events")
	require.NoError(t, err)
	require.Len(t, asSource, 1)
	assert.Equal(t, "orders", asSource[0].Destination)

	asDestination, err := c.Exchanges().ListBindingsWithDestination(ctx, "/", "events")
	require.NoError(t, err)
	require.Len(t, asDestination, 1)
	assert.Equal(t, "upstream", asDestination[0].Source)
}
