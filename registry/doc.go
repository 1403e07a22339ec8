// Package registry batch-verifies a named collection of checkable values
// (certified maps, universal-property reports) and summarizes the outcome.
//
// A Registry is an explicit object: create one per harness or test with New,
// Register entries, then RunAll or Summarize. Nothing is process-global.
//
//	reg := registry.New(registry.WithLogger(logger))
//	reg.Register("identity", idMap)
//	reg.Register("pairing", fz.Report)
//	sum, _ := reg.Summarize(ctx)
//	fmt.Println(sum.Table())
//
// Ambient concerns:
//
//   - Logging: log/slog, discarded unless WithLogger is given.
//   - Metrics: Prometheus counters and a duration histogram, registered on the
//     Registerer passed with WithRegisterer (unregistered otherwise).
//   - Tracing: one OpenTelemetry span per RunAll and one child span per entry,
//     using the global tracer unless WithTracer is given.
//
// Thread Safety:
//
//	All methods are safe for concurrent use; entries are checked sequentially.
package registry
