// Package filter routes published events to subscribed receivers.
//
// A Filter owns a locked set of subscribers and a minimum severity.
// Publish fans an event out to every subscriber at or above that
// severity. Targets subscribe themselves to every live filter when they
// are constructed and unsubscribe on Close, so a filter never holds a
// reference to a torn-down receiver.
//
// The package tracks all live filters in a process-wide set so that
// newly-constructed targets can discover them. Filters created after
// targets already exist do not pick up those targets automatically; the
// creator attaches them explicitly (see target.Registry.SubscribeAll).
package filter
