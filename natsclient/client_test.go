package natsclient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipi54/flext/pkg/retry"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "flext", opts.Name)
	assert.Equal(t, -1, opts.MaxReconnects)
	assert.NotEmpty(t, opts.URL)
}

func TestConnectFailsWithoutBroker(t *testing.T) {
	opts := DefaultOptions()
	// A port nothing listens on, with a schedule short enough for a test.
	opts.URL = "nats://127.0.0.1:1"
	opts.ConnectRetry = retry.Config{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Multiplier:   1.0,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	nc, err := Connect(ctx, opts)
	require.Error(t, err)
	assert.Nil(t, nc)
}
