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

func TestNodesClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/nodes", request.URL.Path)

		_ = json.NewEncoder(writer).Encode([]hop.NodeInfo{
			{Name: "rabbit@node-1", Type: "disc", Running: true, MemoryUsed: 1024},
			{Name: "rabbit@node-2", Type: "disc", Running: false},
		})
	})

	nodes, err := c.Nodes().List(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.True(t, nodes[0].Running)
	assert.False(t, nodes[1].Running)
	assert.Equal(t, int64(1024), nodes[0].MemoryUsed)
}

func TestNodesClient_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/nodes/rabbit@node-1", request.URL.EscapedPath())
		_ = json.NewEncoder(writer).Encode(hop.NodeInfo{Name: "rabbit@node-1", Running: true, Processors: 8})
	})

	node, err := c.Nodes().Get(context.Background(), "rabbit@node-1")
	require.NoError(t, err)
	assert.Equal(t, 8, node.Processors)
}

func TestNodesClient_GetAbsent(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	node, err := c.Nodes().Get(context.Background(), "rabbit@gone")
	require.NoError(t, err)
	assert.Nil(t, node)
}
