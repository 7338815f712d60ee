// Package metrics records fan-out runs as Prometheus metrics and samples the
// Go runtime's memory statistics.
package metrics
