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

func TestChannelsClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/channels", request.URL.Path)

		_ = json.NewEncoder(writer).Encode([]hop.ChannelInfo{
			{Name: "127.0.0.1:51234 -> 127.0.0.1:5672 (1)", Number: 1, State: "running", PrefetchCount: 10},
		})
	})

	channels, err := c.Channels().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, 1, channels[0].Number)
	assert.Equal(t, 10, channels[0].PrefetchCount)
}

func TestChannelsClient_ListOfConnection(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/connections/conn-1/channels", request.URL.EscapedPath())

		_ = json.NewEncoder(writer).Encode([]hop.ChannelInfo{
			{Name: "conn-1 (1)", Number: 1},
			{Name: "conn-1 (2)", Number: 2},
		})
	})

	channels, err := c.Channels().ListOfConnection(context.Background(), "conn-1")
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, 2, channels[1].Number)
}

func TestChannelsClient_ListOfConnectionAbsent(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	channels, err := c.Channels().ListOfConnection(context.Background(), "gone")
	require.NoError(t, err)
	assert.Nil(t, channels)
}

func TestChannelsClient_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/channels/conn-1%20%281%29", request.URL.EscapedPath())
		_ = json.NewEncoder(writer).Encode(hop.ChannelInfo{Name: "conn-1 (1)", State: "running", Transactional: true})
	})

	channel, err := c.Channels().Get(context.Background(), "conn-1 (1)")
	require.NoError(t, err)
	assert.True(t, channel.Transactional)
}

func TestChannelsClient_GetAbsent(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	channel, err := c.Channels().Get(context.Background(), "gone")
	require.NoError(t, err)
	assert.Nil(t, channel)
}
