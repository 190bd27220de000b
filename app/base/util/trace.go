package util

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/warptools/code-review-agent/agentapi"
	"github.com/warptools/code-review-agent/pkg/logging"
)

// The module name used for unique strings, such as tracing identifiers.
const Module = "github.com/warptools/code-review-agent"

const logTag = "trace"

// TracingOptions selects where spans go.  The zero value disables tracing.
type TracingOptions struct {
	File string // pretty-printed JSON spans are written here, if set

	HTTP         bool   // export over OTLP/HTTP
	HTTPInsecure bool   // allow plain http for the OTLP export
	HTTPEndpoint string // host:port of the collector; the exporter's default when empty
}

func (o TracingOptions) enabled() bool {
	return o.File != "" || o.HTTP
}

// tracingOptionsFromFlags reads the global trace.* flags.
func tracingOptionsFromFlags(c *cli.Context) TracingOptions {
	return TracingOptions{
		File:         c.String("trace.file"),
		HTTP:         c.Bool("trace.http.enable"),
		HTTPInsecure: c.Bool("trace.http.insecure"),
		HTTPEndpoint: c.String("trace.http.endpoint"),
	}
}

// mergeResources takes all the open telemetry resources and merges them in order.
// If resources is empty then an an empty resource is returned
func mergeResources(resources ...*resource.Resource) (*resource.Resource, error) {
	result := resource.Empty()
	for _, r := range resources {
		var err error
		result, err = resource.Merge(result, r)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// newResource identifies the process to trace consumers.
func newResource(name string, version string) (*resource.Resource, error) {
	// Schemaless, so it merges with resource.Default whatever semconv version the sdk uses.
	program := resource.NewSchemaless(
		semconv.ServiceNameKey.String(name),
		semconv.ServiceVersionKey.String(version),
	)
	return mergeResources(resource.Default(), program, resource.Environment())
}

// NewTracerProvider builds a tracer provider exporting to every destination opts names.
// A nil provider with a nil error means tracing is disabled.
//
// Errors:
//
//   - code-review-agent-error-internal -- the resource or an exporter could not be set up
func NewTracerProvider(ctx context.Context, name, version string, opts TracingOptions) (*sdktrace.TracerProvider, error) {
	if !opts.enabled() {
		return nil, nil
	}
	log := logging.Ctx(ctx)
	res, err := newResource(name, version)
	if err != nil {
		return nil, agentapi.ErrorInternal("cannot describe tracing resource", err)
	}

	var exporters []sdktrace.SpanExporter
	if opts.File != "" {
		exp, err := newFileSpanExporter(opts.File)
		if err != nil {
			return nil, agentapi.ErrorInternal("cannot open trace file", err)
		}
		log.Info(logTag, "writing spans to %s", opts.File)
		exporters = append(exporters, exp)
	}
	if opts.HTTP {
		exp, err := newHTTPSpanExporter(ctx, opts)
		if err != nil {
			for _, e := range exporters {
				e.Shutdown(ctx)
			}
			return nil, agentapi.ErrorInternal("cannot start OTLP/HTTP exporter", err)
		}
		endpoint := opts.HTTPEndpoint
		if endpoint == "" {
			endpoint = "the default collector endpoint"
		}
		log.Info(logTag, "exporting spans over OTLP/HTTP to %s", endpoint)
		exporters = append(exporters, exp)
	}

	providerOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}
	for _, exp := range exporters {
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exp))
	}
	return sdktrace.NewTracerProvider(providerOpts...), nil
}

func newHTTPSpanExporter(ctx context.Context, opts TracingOptions) (sdktrace.SpanExporter, error) {
	var httpOpts []otlptracehttp.Option
	if opts.HTTPInsecure {
		httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
	}
	if opts.HTTPEndpoint != "" {
		httpOpts = append(httpOpts, otlptracehttp.WithEndpoint(opts.HTTPEndpoint))
	}
	return otlptrace.New(ctx, otlptracehttp.NewClient(httpOpts...))
}

// fileSpanExporter closes its file once the wrapped exporter has shut down.
type fileSpanExporter struct {
	sdktrace.SpanExporter
	io.Closer
}

func (e *fileSpanExporter) Shutdown(ctx context.Context) error {
	defer e.Closer.Close()
	return e.SpanExporter.Shutdown(ctx)
}

// newFileSpanExporter creates or truncates the named file and writes spans to it as pretty JSON.
func newFileSpanExporter(name string) (*fileSpanExporter, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(f),
		stdouttrace.WithPrettyPrint(),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileSpanExporter{exp, f}, nil
}
