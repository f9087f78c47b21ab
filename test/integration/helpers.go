//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/ifyun/hop/pkg/hop"
	"github.com/ifyun/hop/pkg/hopclient"
)

// TestConfig holds connection details for a live broker.
type TestConfig struct {
	Endpoint string
	AMQPURI  string
	Username string
	Password string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	config := &TestConfig{
		Endpoint: os.Getenv("HOP_ENDPOINT"),
		AMQPURI:  os.Getenv("HOP_AMQP_URI"),
		Username: os.Getenv("HOP_USERNAME"),
		Password: os.Getenv("HOP_PASSWORD"),
		Verbose:  os.Getenv("HOP_VERBOSE") == "true",
	}

	if config.Username == "" {
		config.Username = "guest"
	}

	if config.Password == "" {
		config.Password = "guest"
	}

	if config.AMQPURI == "" {
		config.AMQPURI = fmt.Sprintf("amqp://%s:%s@localhost:5672/", config.Username, config.Password)
	}

	return config
}

// SkipIfMissingConfig skips the test when no broker endpoint is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.Endpoint == "" {
		t.Skip("HOP_ENDPOINT not set, skipping integration test")
	}
}

// NewClient builds a management client against the configured broker.
func (config *TestConfig) NewClient(t *testing.T) hop.Client {
	c, err := hopclient.New(&hop.Config{
		Endpoint: config.Endpoint,
		Username: config.Username,
		Password: config.Password,
		Debug:    config.Verbose,
	})
	require.NoError(t, err)

	return c
}

// OpenAMQP dials the broker over AMQP and registers cleanup for the
// connection and a fresh channel.
func (config *TestConfig) OpenAMQP(t *testing.T) (*amqp.Connection, *amqp.Channel) {
	conn, err := amqp.Dial(config.AMQPURI)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	channel, err := conn.Channel()
	require.NoError(t, err)
	t.Cleanup(func() { _ = channel.Close() })

	return conn, channel
}

// PublishN publishes n persistent messages to the default exchange routed
// to queue.
func PublishN(t *testing.T, channel *amqp.Channel, queue string, n int) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := 0; i < n; i++ {
		err := channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "text/plain",
			Body:         []byte(fmt.Sprintf("payload-%d", i)),
		})
		require.NoError(t, err)
	}
}

// GenerateTestName creates a unique resource name so runs do not collide.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// awaitOptions gives the management API's statistics emitter time to catch
// up; stats lag the broker by several seconds.
func awaitOptions() hop.AwaitOptions {
	return hop.AwaitOptions{
		Timeout:  30 * time.Second,
		Interval: time.Second,
	}
}
