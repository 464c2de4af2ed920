// Package tracing wraps OpenTelemetry so scheduling runs can be traced
// without the rest of the code importing the SDK directly.
package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "cpu-scheduler-simulator"

var (
	providerOnce sync.Once
	providerErr  error
	provider     *sdktrace.TracerProvider
	traceFile    *os.File
)

// Init installs a global tracer provider exporting to outputFile, or to
// os.Stdout when outputFile is empty. Only the first call takes effect; later
// calls leave the first output untouched.
func Init(serviceName, serviceVersion, outputFile string) error {
	providerOnce.Do(func() {
		var w io.Writer = os.Stdout
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				providerErr = err
				return
			}
			traceFile, w = f, f
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err == nil {
			err = install(serviceName, serviceVersion, exporter)
		}
		if err != nil {
			closeTraceFile()
			providerErr = err
		}
	})
	return providerErr
}

// InitWithExporter installs a global tracer provider backed by exporter.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	providerOnce.Do(func() {
		providerErr = install(serviceName, serviceVersion, exporter)
	})
	return providerErr
}

// Shutdown flushes pending spans and closes the exporter, including any
// trace file opened by Init.
func Shutdown(ctx context.Context) error {
	var err error
	if provider != nil {
		err = provider.Shutdown(ctx)
	}
	if closeErr := closeTraceFile(); err == nil {
		err = closeErr
	}
	return err
}

func closeTraceFile() error {
	if traceFile == nil {
		return nil
	}
	err := traceFile.Close()
	traceFile = nil
	return err
}

func install(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return err
	}
	provider = sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return nil
}

type Span struct {
	span trace.Span
}

// WithAttributes attaches string attributes to the span.
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kvs = append(kvs, attribute.String(k, v))
	}
	s.span.SetAttributes(kvs...)
	return s
}

func (s *Span) WithInt(key string, value int) *Span {
	if s == nil {
		return s
	}
	s.span.SetAttributes(attribute.Int(key, value))
	return s
}

// StartSpan starts an internal span named name.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan records err, if any, and ends the span.
func EndSpan(s *Span, err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
