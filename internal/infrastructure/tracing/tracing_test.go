package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, Shutdown(shutdown, time.Second))
}

func TestInit_Enabled(t *testing.T) {
	// The exporter connects lazily, so no collector is needed.
	shutdown, err := Init(context.Background(), Config{
		Enabled:     true,
		Endpoint:    "127.0.0.1:4318",
		Insecure:    true,
		ServiceName: "test",
	})
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "test-span")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Flushing to a missing collector fails fast on a cancelled context.
	_ = shutdown(ctx)
}

func TestTracer_NoProvider(t *testing.T) {
	assert.NotNil(t, Tracer())
}
