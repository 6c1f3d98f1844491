package trace

import (
	"context"
	"log"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// DefaultServiceName is reported when Options.ServiceName is empty.
	DefaultServiceName = "offscreen"
	tracerName         = "offscreen/session"
)

// Options configures the OTLP exporter.
type Options struct {
	Endpoint    string // host:port or URL; empty disables export
	ServiceName string
	Insecure    bool
}

// Recorder creates session spans. The zero value and a nil *Recorder record nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider // nil unless we own an exporter
	tracer   oteltrace.Tracer
}

// NewRecorder returns a Recorder exporting over OTLP/HTTP when opts.Endpoint is set,
// otherwise a no-op Recorder.
func NewRecorder(ctx context.Context, opts Options) (*Recorder, error) {
	if opts.Endpoint == "" {
		return NewRecorderWithProvider(noop.NewTracerProvider()), nil
	}

	var clientOpts []otlptracehttp.Option
	if strings.Contains(opts.Endpoint, "://") {
		clientOpts = append(clientOpts, otlptracehttp.WithEndpointURL(opts.Endpoint))
	} else {
		clientOpts = append(clientOpts, otlptracehttp.WithEndpoint(opts.Endpoint))
	}
	if opts.Insecure {
		clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	log.Printf("trace.NewRecorder: exporting to %s as %s", opts.Endpoint, serviceName)

	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}, nil
}

// NewRecorderWithProvider records through tp. Shutdown is left to the caller.
func NewRecorderWithProvider(tp oteltrace.TracerProvider) *Recorder {
	return &Recorder{tracer: tp.Tracer(tracerName)}
}

// Shutdown flushes and closes the exporter, if the Recorder owns one.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
