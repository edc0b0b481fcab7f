package filter

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/mkarpels/logtap/core"
)

// Subscriber receives events routed by a Filter. target.Target is the
// canonical implementation.
type Subscriber interface {
	Receive(e *core.Event) error
}

// Filter matches events against a minimum severity and fans them out to
// its subscribers. All methods are safe for concurrent use.
type Filter struct {
	mu   sync.Mutex
	min  core.Level
	subs map[Subscriber]struct{}
}

// New creates a filter passing events at or above min and adds it to the
// process-wide filter set.
func New(min core.Level) *Filter {
	f := &Filter{
		min:  min,
		subs: make(map[Subscriber]struct{}),
	}

	allMu.Lock()
	all[f] = struct{}{}
	allMu.Unlock()

	return f
}

// Close removes the filter from the process-wide set and drops its
// subscribers. Events published afterwards reach nobody.
func (f *Filter) Close() {
	allMu.Lock()
	delete(all, f)
	allMu.Unlock()

	f.mu.Lock()
	f.subs = make(map[Subscriber]struct{})
	f.mu.Unlock()
}

// Subscribe adds a subscriber. Adding an existing subscriber is a no-op.
func (f *Filter) Subscribe(s Subscriber) {
	f.mu.Lock()
	f.subs[s] = struct{}{}
	f.mu.Unlock()
}

// Unsubscribe removes a subscriber. Removing an absent subscriber is a
// no-op.
func (f *Filter) Unsubscribe(s Subscriber) {
	f.mu.Lock()
	delete(f.subs, s)
	f.mu.Unlock()
}

// Publish delivers the event to every subscriber when it passes the
// severity threshold. Delivery errors are combined, not short-circuited:
// one failing target does not starve the others.
func (f *Filter) Publish(e *core.Event) error {
	if e.Level < f.min {
		return nil
	}

	// Snapshot under the lock; Receive blocks on each target's own lock
	// and must not hold ours while doing so.
	f.mu.Lock()
	subs := make([]Subscriber, 0, len(f.subs))
	for s := range f.subs {
		subs = append(subs, s)
	}
	f.mu.Unlock()

	var err error
	for _, s := range subs {
		err = multierr.Append(err, s.Receive(e))
	}
	return err
}

var (
	allMu sync.Mutex
	all   = make(map[*Filter]struct{})
)

// All returns a snapshot of every live filter.
func All() []*Filter {
	allMu.Lock()
	defer allMu.Unlock()

	fs := make([]*Filter, 0, len(all))
	for f := range all {
		fs = append(fs, f)
	}
	return fs
}

// SubscribeAll subscribes s to every live filter. Called by targets at
// construction time.
func SubscribeAll(s Subscriber) {
	for _, f := range All() {
		f.Subscribe(s)
	}
}

// UnsubscribeAll removes s from every live filter. Called by targets on
// Close, before they leave their registry.
func UnsubscribeAll(s Subscriber) {
	for _, f := range All() {
		f.Unsubscribe(s)
	}
}
