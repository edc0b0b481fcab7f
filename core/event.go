package core

import (
	"sync"
	"time"
)

// Event represents a single log occurrence with all its metadata
type Event struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  []Field
}

// eventPool is a pool of Event objects to reduce allocations
var eventPool = sync.Pool{
	New: func() interface{} {
		return &Event{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetEvent retrieves an Event from the pool
func GetEvent() *Event {
	e := eventPool.Get().(*Event)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	return e
}

// PutEvent returns an Event to the pool
func PutEvent(e *Event) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Message = ""
	eventPool.Put(e)
}
