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

func TestConsumersClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/consumers", request.URL.Path)

		_ = json.NewEncoder(writer).Encode([]hop.ConsumerInfo{
			{
				ConsumerTag: "ctag-1",
				AckRequired: true,
				Active:      true,
				Queue:       hop.QueueDetails{Name: "orders", Vhost: "/"},
				ChannelDetails: hop.ChannelDetails{
					ConnectionName: "127.0.0.1:51234 -> 127.0.0.1:5672",
					Number:         1,
				},
			},
		})
	})

	consumers, err := c.Consumers().List(context.Background())
	require.NoError(t, err)
	require.Len(t, consumers, 1)
	assert.Equal(t, "ctag-1", consumers[0].ConsumerTag)
	assert.Equal(t, "orders", consumers[0].Queue.Name)
	assert.Equal(t, 1, consumers[0].ChannelDetails.Number)
}

func TestConsumersClient_ListIn(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/consumers/%2F", request.URL.EscapedPath())

		_ = json.NewEncoder(writer).Encode([]hop.ConsumerInfo{
			{ConsumerTag: "ctag-1", Queue: hop.QueueDetails{Name: "orders", Vhost: "/"}},
		})
	})

	consumers, err := c.Consumers().ListIn(context.Background(), "/")
	require.NoError(t, err)
	require.Len(t, consumers, 1)
	assert.Equal(t, "/", consumers[0].Queue.Vhost)
}

func TestConsumersClient_ListInMissingVhost(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	consumers, err := c.Consumers().ListIn(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, consumers)
}
