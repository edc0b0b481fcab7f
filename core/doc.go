// Package core defines the shared types used across logtap.
//
// It provides the Level type for severity filtering, the Event type that
// represents a single log occurrence, and the Field type for simple
// key-value annotations.
//
// Event objects are pooled via sync.Pool to keep the emit path
// allocation-free. Callers get an Event with GetEvent and must return it
// with PutEvent once every target has consumed it. The pool pre-allocates
// the Fields slice with capacity 8, which covers most log calls without
// triggering a slice growth.
package core
