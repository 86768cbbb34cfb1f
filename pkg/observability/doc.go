/*
Package observability provides tools for monitoring the Collage coordinator.

Metrics exposes Prometheus collectors fed by coordinator hooks, LoggingHooks
turns the same events into structured log records, and Combine chains several
hook sets so both can be installed at once.
*/
package observability
