package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracingConfig struct {
	disabled bool
}

func (c tracingConfig) ServiceName() string   { return "finance-assistant-test" }
func (c tracingConfig) AgentHostPort() string { return "127.0.0.1:6831" }
func (c tracingConfig) Disabled() bool        { return c.disabled }

func Test_OnDisabledTracing_ShouldInstallNoopTracer(t *testing.T) {
	closer, err := Init(tracingConfig{disabled: true})
	require.NoError(t, err)
	defer closer.Close()

	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}

func Test_OnEnabledTracing_ShouldInstallGlobalTracer(t *testing.T) {
	closer, err := Init(tracingConfig{})
	require.NoError(t, err)
	defer func() {
		_ = closer.Close()
		opentracing.SetGlobalTracer(opentracing.NoopTracer{})
	}()

	assert.True(t, opentracing.IsGlobalTracerRegistered())
}
