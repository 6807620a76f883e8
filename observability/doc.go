// Package observability provides OpenTelemetry tracing and metrics for API
// calls made by the client.
//
// Instrumentation goes through the global otel providers, which are no-ops
// until Init installs OTLP/HTTP exporters. Library code can therefore always
// start spans and record metrics; nothing is exported unless the application
// opts in.
//
//	shutdown, err := observability.Init(ctx, observability.Config{
//	    Enabled:     true,
//	    ServiceName: "assemblyai-cli",
//	    Endpoint:    "localhost:4318",
//	    Insecure:    true,
//	})
//	defer shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest)
//	defer span.End()
package observability
