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

func TestParametersClient_ListFor(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/parameters/shovel", request.URL.EscapedPath())

		_, _ = writer.Write([]byte(`[
			{"name": "s1", "vhost": "/", "component": "shovel",
			 "value": {"src-uri": "amqp://src", "src-queue": "in", "dest-uri": "amqp://dest", "dest-queue": "out"}}
		]`))
	})

	parameters, err := c.Parameters().ListFor(context.Background(), hop.ComponentShovel)
	require.NoError(t, err)
	require.Len(t, parameters, 1)

	def, ok := parameters[0].Value.(hop.ShovelDefinition)
	require.True(t, ok)
	assert.Equal(t, "in", def.SourceQueue)
}

func TestParametersClient_ListForInMissingVhost(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	parameters, err := c.Parameters().ListForIn(context.Background(), hop.ComponentShovel, "ghost")
	require.NoError(t, err)
	assert.Nil(t, parameters)
}

func TestParametersClient_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/parameters/federation-upstream/%2F/origin", request.URL.EscapedPath())

		_, _ = writer.Write([]byte(`{"name": "origin", "vhost": "/", "component": "federation-upstream",
			"value": {"uri": "amqp://origin.example.com"}}`))
	})

	parameter, err := c.Parameters().Get(context.Background(), hop.ComponentFederationUpstream, "/", "origin")
	require.NoError(t, err)

	def, ok := parameter.Value.(hop.FederationDefinition)
	require.True(t, ok)
	assert.Equal(t, hop.URISet{"amqp://origin.example.com"}, def.URI)
}

func TestParametersClient_GetAbsent(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	parameter, err := c.Parameters().Get(context.Background(), hop.ComponentShovel, "/", "ghost")
	require.NoError(t, err)
	assert.Nil(t, parameter)
}

func TestParametersClient_Put(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/api/parameters/federation-upstream/%2F/origin", request.URL.EscapedPath())

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))

		value, ok := body["value"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "amqp://origin", value["uri"])

		writer.WriteHeader(http.StatusCreated)
	})

	err := c.Parameters().Put(context.Background(), hop.RuntimeParameter{
		Name:      "origin",
		Vhost:     "/",
		Component: hop.ComponentFederationUpstream,
		Value:     hop.FederationDefinition{URI: hop.URISet{"amqp://origin"}},
	})
	require.NoError(t, err)
}

func TestParametersClient_PutValidatesKnownShapes(t *testing.T) {
	t.Parallel()

	requests := 0

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests++
	})

	err := c.Parameters().Put(context.Background(), hop.RuntimeParameter{
		Name:      "broken",
		Vhost:     "/",
		Component: hop.ComponentFederationUpstream,
		Value:     hop.FederationDefinition{},
	})
	require.Error(t, err)
	assert.True(t, hop.IsValidation(err))
	assert.Equal(t, 0, requests)
}

func TestParametersClient_DeleteAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	err := c.Parameters().Delete(context.Background(), hop.ComponentShovel, "/", "ghost")
	require.NoError(t, err)
}

func TestParametersClient_ListGlobal(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/global-parameters", request.URL.Path)

		_, _ = writer.Write([]byte(`[
			{"name": "cluster_name", "value": "rabbit@node1"},
			{"name": "cluster_tags", "value": {"region": "eu-west-1"}}
		]`))
	})

	parameters, err := c.Parameters().ListGlobal(context.Background())
	require.NoError(t, err)
	require.Len(t, parameters, 2)

	assert.Equal(t, hop.StringValue("rabbit@node1"), parameters[0].Value)

	tags, ok := parameters[1].Value.(hop.GenericValue)
	require.True(t, ok)
	assert.Equal(t, "eu-west-1", tags["region"])
}

func TestParametersClient_GetGlobal(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/global-parameters/cluster_name", request.URL.EscapedPath())
		_, _ = writer.Write([]byte(`{"name": "cluster_name", "value": "rabbit@node1"}`))
	})

	parameter, err := c.Parameters().GetGlobal(context.Background(), "cluster_name")
	require.NoError(t, err)
	assert.Equal(t, hop.StringValue("rabbit@node1"), parameter.Value)
}

func TestParametersClient_PutGlobal(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "rabbit@renamed", body["value"])

		writer.WriteHeader(http.StatusCreated)
	})

	err := c.Parameters().PutGlobal(context.Background(), "cluster_name", "rabbit@renamed")
	require.NoError(t, err)
}
