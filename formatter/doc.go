// Package formatter turns a core.Event into renderable bytes.
//
// Targets hold a non-owning reference to a Formatter and call it exactly
// once per received event, while holding the target's own receive lock.
// Formatters must therefore be safe for concurrent use from multiple
// targets.
//
// The package maintains a process-wide default formatter, created on
// first use. Targets constructed without an explicit formatter pick up
// the default at construction time; replacing the default later via
// SetDefault does not affect already-constructed targets.
package formatter
