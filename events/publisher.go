// Package events publishes order lifecycle events to the configured sink.
package events

import "context"

// Publisher delivers an opaque payload keyed by a partition key. The order
// service does not care which broker sits behind it.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
	Close() error
}

// Noop discards every event. It is the sink when no broker is configured.
type Noop struct{}

func (Noop) Publish(ctx context.Context, key string, payload []byte) error { return nil }

func (Noop) Close() error { return nil }
