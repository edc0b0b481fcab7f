package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	BoolType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair attached to an Event
type Field struct {
	Key   string
	Type  FieldType
	Int64 int64
	Str   string
	Any   interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Type: StringType, Str: value}
}

// Int creates an integer field
func Int(key string, value int) Field {
	return Field{Key: key, Type: Int64Type, Int64: int64(value)}
}

// Bool creates a boolean field
func Bool(key string, value bool) Field {
	f := Field{Key: key, Type: BoolType}
	if value {
		f.Int64 = 1
	}
	return f
}

// Duration creates a duration field
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Type: DurationType, Int64: int64(value)}
}

// Err creates an error field under the key "error"
func Err(err error) Field {
	f := Field{Key: "error", Type: ErrorType}
	if err != nil {
		f.Str = err.Error()
	}
	return f
}

// Any creates a field holding an arbitrary value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Type: AnyType, Any: value}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	case Int64Type:
		return strconv.FormatInt(f.Int64, 10)
	case BoolType:
		return strconv.FormatBool(f.Int64 == 1)
	case DurationType:
		return time.Duration(f.Int64).String()
	case AnyType:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}
