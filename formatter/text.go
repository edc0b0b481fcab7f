package formatter

import (
	"bytes"
	"time"

	"github.com/mkarpels/logtap/core"
)

// TextFormatter renders events as human-readable text lines
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel:    " [DEBUG] ",
	core.InfoLevel:     " [INFO] ",
	core.WarnLevel:     " [WARN] ",
	core.ErrorLevel:    " [ERROR] ",
	core.CriticalLevel: " [CRITICAL] ",
}

// Format renders an event as a single text line
func (f *TextFormatter) Format(e *core.Event) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(e, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// formatToBuffer writes the formatted event into the given buffer
func (f *TextFormatter) formatToBuffer(e *core.Event, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(e.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if int(e.Level) >= 0 && int(e.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[e.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	buf.WriteString(e.Message)

	for _, field := range e.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
