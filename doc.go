// Package resilient assembles the data access core: a retrying request executor,
// a bounded content cache, a readiness gate and a durable key value store.
//
// The package exposes Options, which can be populated from YAML, environment
// variables or CLI flags, and New, which wires explicitly constructed instances
// into a Service. No component is a process wide singleton.
//
// Example:
//
//	options, _ := resilient.LoadOptions(ctx, "config.yaml")
//	srv, _ := resilient.New(ctx, options)
//	data, _ := srv.Cache.Load(ctx, "https://example.com/poster.jpg")
package resilient
