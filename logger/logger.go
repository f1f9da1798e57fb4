package logger

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Logger defines the interface for structured logging
type Logger interface {
	// Info logs an informational message
	Info(msg string, fields ...Field)

	// Error logs an error message
	Error(msg string, err error, fields ...Field)

	// Debug logs a debug message
	Debug(msg string, fields ...Field)

	// WithContext returns a logger carrying the fields stored in ctx
	WithContext(ctx context.Context) Logger

	// WithFields returns a logger with additional fields
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Float creates a float field rendered with two decimals
func Float(key string, value float64) Field {
	return Field{Key: key, Value: fmt.Sprintf("%.2f", value)}
}

// Error creates an error field
func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

type ctxKey struct{}

// ContextWithFields stores fields in ctx for later use by WithContext
func ContextWithFields(ctx context.Context, fields ...Field) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]Field)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

// Level is the minimum severity a logger writes
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

type defaultLogger struct {
	out    io.Writer
	level  Level
	fields []Field
	now    func() time.Time
}

// NewLoggerWithOutput creates a logger writing entries at or above level to w
func NewLoggerWithOutput(w io.Writer, level Level) Logger {
	return &defaultLogger{
		out:   w,
		level: level,
		now:   time.Now,
	}
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return NewLoggerWithOutput(io.Discard, LevelError)
}

func (l *defaultLogger) Info(msg string, fields ...Field) {
	if l.level > LevelInfo {
		return
	}
	l.log("INFO", msg, fields...)
}

func (l *defaultLogger) Error(msg string, err error, fields ...Field) {
	allFields := append([]Field{Error(err)}, fields...)
	l.log("ERROR", msg, allFields...)
}

func (l *defaultLogger) Debug(msg string, fields ...Field) {
	if l.level > LevelDebug {
		return
	}
	l.log("DEBUG", msg, fields...)
}

func (l *defaultLogger) WithContext(ctx context.Context) Logger {
	fields, _ := ctx.Value(ctxKey{}).([]Field)
	if len(fields) == 0 {
		return l
	}
	return l.WithFields(fields...)
}

func (l *defaultLogger) WithFields(fields ...Field) Logger {
	newFields := make([]Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &defaultLogger{
		out:    l.out,
		level:  l.level,
		fields: newFields,
		now:    l.now,
	}
}

func (l *defaultLogger) log(level, msg string, fields ...Field) {
	allFields := make([]Field, 0, len(l.fields)+len(fields))
	allFields = append(allFields, l.fields...)
	allFields = append(allFields, fields...)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", l.now().Format(time.RFC3339), level, msg)

	if len(allFields) > 0 {
		b.WriteString(" {")
		for i, field := range allFields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", field.Key, field.Value)
		}
		b.WriteString("}")
	}
	b.WriteString("\n")

	// Log output is best effort.
	_, _ = io.WriteString(l.out, b.String())
}
