// Package trace records what the loom pipeline is doing: which files are
// lexed, parsed and checked, and which module members the parser builds.
//
// Tracing is switched on from the command line:
//
//	loom diag --trace=- --trace-level=detail ./src
//
// Implementations:
//
//   - Nop: tracing disabled, every call is free
//   - StreamTracer: writes each event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events in memory for a dump on failure
//   - MultiTracer: fans events out to several tracers
//
// Levels pick how deep the events go: off, error, phase (driver and passes),
// detail (per file) and debug (per module member).
//
// A tracer travels through the driver in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
