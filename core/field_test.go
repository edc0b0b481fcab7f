package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldStringValue(t *testing.T) {
	assert.Equal(t, "hello", String("k", "hello").StringValue())
	assert.Equal(t, "42", Int("k", 42).StringValue())
	assert.Equal(t, "true", Bool("k", true).StringValue())
	assert.Equal(t, "false", Bool("k", false).StringValue())
	assert.Equal(t, "1.5s", Duration("k", 1500*time.Millisecond).StringValue())
	assert.Equal(t, "boom", Err(errors.New("boom")).StringValue())
	assert.Equal(t, "[1 2]", Any("k", []int{1, 2}).StringValue())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARN", WarnLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "CRITICAL", CriticalLevel.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestEventPoolReset(t *testing.T) {
	e := GetEvent()
	e.Level = ErrorLevel
	e.Message = "msg"
	e.Fields = append(e.Fields, String("k", "v"))
	PutEvent(e)

	e2 := GetEvent()
	assert.Empty(t, e2.Message)
	assert.Empty(t, e2.Fields)
	PutEvent(e2)
}
