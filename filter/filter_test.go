package filter

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpels/logtap/core"
)

type recordingSub struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (r *recordingSub) Receive(e *core.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, e.Message)
	return r.err
}

func (r *recordingSub) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

func publish(f *Filter, level core.Level, msg string) error {
	e := core.GetEvent()
	defer core.PutEvent(e)
	e.Level = level
	e.Message = msg
	return f.Publish(e)
}

func TestFilterSeverityThreshold(t *testing.T) {
	f := New(core.WarnLevel)
	defer f.Close()

	sub := &recordingSub{}
	f.Subscribe(sub)

	require.NoError(t, publish(f, core.InfoLevel, "below"))
	require.NoError(t, publish(f, core.WarnLevel, "at"))
	require.NoError(t, publish(f, core.ErrorLevel, "above"))

	assert.Equal(t, []string{"at", "above"}, sub.got())
}

func TestFilterUnsubscribeStopsDelivery(t *testing.T) {
	f := New(core.DebugLevel)
	defer f.Close()

	sub := &recordingSub{}
	f.Subscribe(sub)
	require.NoError(t, publish(f, core.InfoLevel, "one"))

	f.Unsubscribe(sub)
	require.NoError(t, publish(f, core.InfoLevel, "two"))

	assert.Equal(t, []string{"one"}, sub.got())
}

func TestFilterPublishCombinesErrors(t *testing.T) {
	f := New(core.DebugLevel)
	defer f.Close()

	failing := &recordingSub{err: errors.New("sink down")}
	ok := &recordingSub{}
	f.Subscribe(failing)
	f.Subscribe(ok)

	err := publish(f, core.InfoLevel, "msg")
	require.Error(t, err)

	// The healthy subscriber still got the event.
	assert.Equal(t, []string{"msg"}, ok.got())
}

func TestAllTracksLiveFilters(t *testing.T) {
	before := len(All())

	f := New(core.InfoLevel)
	assert.Len(t, All(), before+1)

	f.Close()
	assert.Len(t, All(), before)
}

func TestSubscribeAll(t *testing.T) {
	f1 := New(core.DebugLevel)
	defer f1.Close()
	f2 := New(core.DebugLevel)
	defer f2.Close()

	sub := &recordingSub{}
	SubscribeAll(sub)

	require.NoError(t, publish(f1, core.InfoLevel, "a"))
	require.NoError(t, publish(f2, core.InfoLevel, "b"))
	assert.ElementsMatch(t, []string{"a", "b"}, sub.got())

	UnsubscribeAll(sub)
	require.NoError(t, publish(f1, core.InfoLevel, "c"))
	assert.Len(t, sub.got(), 2)
}
