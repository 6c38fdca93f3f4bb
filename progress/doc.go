// Package progress implements the progress-sink design note of spec
// §5 and §9: a handle with a Notify(tag, current, total) operation
// that the core calls frequently, decoupling it from whatever
// transport (WebSocket, stdout, null) a driver wires up. LogSink
// rate-limits internally, at most one event per 300ms per distinct
// tag (a notification with current >= total always passes), via a
// keyed mutex so unrelated tags never serialize on one global lock.
// Null and MetricsSink do not rate-limit.
package progress
