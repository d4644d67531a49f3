package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/logger"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
	Disabled() bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs the global jaeger tracer. The returned closer flushes
// buffered spans.
func Init(cfg config) (io.Closer, error) {
	if cfg.Disabled() {
		logger.Info("tracing disabled")
		opentracing.SetGlobalTracer(opentracing.NoopTracer{})
		return nopCloser{}, nil
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	closer, err := jcfg.InitGlobalTracer(cfg.ServiceName())
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	logger.Info("tracing enabled", zap.String("service", cfg.ServiceName()))
	return closer, nil
}
