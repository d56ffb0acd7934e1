// Package trace records what the linter is doing, for diagnosing slow or
// stuck runs. It never carries user-facing output.
//
//	arrowlint check --trace=- --trace-level=detail src/
//
// A run opens one span, each file one span below it and, when fixing, each
// fixer pass one span below the file. Spans travel in the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopeFile, "check", trace.Path(p))
//	defer span.End()
package trace
