package tracing

import (
	"bytes"
	"context"
	"testing"

	"reclaim/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledUsesNoop(t *testing.T) {
	cfg := &config.Config{Tracing: &config.TracingConfig{}}

	tp, shutdown, err := Init(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_StdoutExporterFlushesOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Tracing: &config.TracingConfig{Enabled: true, Exporter: "stdout"}}
	cfg.Env.ServiceName = "reclaim-test"

	tp, shutdown, err := Init(cfg, &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "award-tokens")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "award-tokens")
	assert.Contains(t, buf.String(), "reclaim-test")
}

func TestInit_UnknownExporter(t *testing.T) {
	cfg := &config.Config{Tracing: &config.TracingConfig{Enabled: true, Exporter: "zipkin"}}

	_, _, err := Init(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
