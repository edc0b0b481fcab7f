package formatter

import (
	"bytes"
	"sync"

	"github.com/mkarpels/logtap/core"
)

// Formatter defines the interface for rendering events
type Formatter interface {
	// Format renders a single event into bytes. The returned slice is
	// owned by the caller.
	Format(e *core.Event) ([]byte, error)
}

var (
	defaultMu sync.RWMutex
	defaultF  Formatter
)

// Default returns the process-wide default formatter, creating a
// TextFormatter on first use.
func Default() Formatter {
	defaultMu.RLock()
	f := defaultF
	defaultMu.RUnlock()
	if f != nil {
		return f
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultF == nil {
		defaultF = NewTextFormatter(Config{})
	}
	return defaultF
}

// SetDefault replaces the process-wide default formatter. Targets that
// already captured the previous default keep using it.
func SetDefault(f Formatter) {
	defaultMu.Lock()
	defaultF = f
	defaultMu.Unlock()
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
