// Package natsclient establishes the optional NATS connection used for
// remote log streaming. Plugins live inside hosts without a console, so
// a monitoring tool on the same machine or LAN subscribes to the log
// subjects instead; everything here is best-effort and a missing broker
// never affects the plugin itself.
package natsclient

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mipi54/flext/errors"
	"github.com/mipi54/flext/pkg/retry"
)

// Options tunes the connection.
type Options struct {
	URL           string
	Name          string
	ConnectRetry  retry.Config
	ReconnectWait time.Duration
	MaxReconnects int
}

// DefaultOptions connects to a local broker with persistent retries and
// unlimited reconnects, the right posture for diagnostics plumbing.
func DefaultOptions() Options {
	return Options{
		URL:           nats.DefaultURL,
		Name:          "flext",
		ConnectRetry:  retry.DefaultConfig(),
		ReconnectWait: 2 * time.Second,
		MaxReconnects: -1,
	}
}

// Connect dials the broker with backoff. The returned connection keeps
// reconnecting on its own afterwards; callers hand it to a Logger and
// close it on teardown.
func Connect(ctx context.Context, opts Options) (*nats.Conn, error) {
	natsOpts := []nats.Option{
		nats.Name(opts.Name),
		nats.ReconnectWait(opts.ReconnectWait),
		nats.MaxReconnects(opts.MaxReconnects),
	}

	nc, err := retry.DoWithResult(ctx, opts.ConnectRetry, func() (*nats.Conn, error) {
		return nats.Connect(opts.URL, natsOpts...)
	})
	if err != nil {
		return nil, errors.Wrap(err, "NATSClient", "Connect", "broker connection")
	}
	return nc, nil
}
