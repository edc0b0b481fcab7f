// Package logger is the public entry point of logtap. Most callers only
// need this package plus one target constructor.
//
// A Logger binds a severity floor and default fields to a filter; every
// logging call builds an event and publishes it through that filter to
// all subscribed targets. Loggers are immutable after construction and
// safe for concurrent use without locking — all synchronization lives in
// the targets.
//
// The package keeps a default instance, created on first use, whose
// filter every subsequently-constructed target subscribes to:
//
//	logger.Init()                               // ensure the default filter exists
//	target.NewConsole(target.ConsoleConfig{})   // subscribes itself
//	logger.Info("ready", core.Int("port", 8080))
//
// Logging calls return the combined delivery error of all targets; a
// failing sink is reported to the call site, never swallowed.
package logger
