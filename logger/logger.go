package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents logging severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelOff
)

var levelNames = map[Level]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarning: "WARNING",
	LevelError:   "ERROR",
	LevelOff:     "OFF",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel returns level for the supplied name, unknown names map to info
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "off", "none":
		return LevelOff
	}
	return LevelInfo
}

// Logger is a named, leveled logger
type Logger interface {
	// Logger creates a child logger with a name
	Logger(name string) Logger
	Debug(ctx context.Context, data interface{})
	Info(ctx context.Context, data interface{})
	Warning(ctx context.Context, data interface{})
	Error(ctx context.Context, data interface{})
}

// Log writes leveled entries to a standard library logger
type Log struct {
	name  string
	level Level
	out   *log.Logger
}

// Logger creates a new logger with a name
func (l *Log) Logger(name string) Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &Log{
		name:  name,
		level: l.level,
		out:   l.out,
	}
}

func (l *Log) log(_ context.Context, level Level, data interface{}) {
	if l.out == nil || l.level > level {
		//skip logging since level is too verbose
		return
	}
	_ = l.out.Output(3, fmt.Sprintf("%s [%s] %s", level, l.name, format(data)))
}

func (l *Log) Debug(ctx context.Context, data interface{}) {
	l.log(ctx, LevelDebug, data)
}

func (l *Log) Info(ctx context.Context, data interface{}) {
	l.log(ctx, LevelInfo, data)
}

func (l *Log) Warning(ctx context.Context, data interface{}) {
	l.log(ctx, LevelWarning, data)
}

func (l *Log) Error(ctx context.Context, data interface{}) {
	l.log(ctx, LevelError, data)
}

func format(data interface{}) string {
	switch actual := data.(type) {
	case string:
		return actual
	case error:
		return actual.Error()
	case fmt.Stringer:
		return actual.String()
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(encoded)
}

// New creates a logger writing to w; a nil writer means stderr
func New(name string, level Level, w io.Writer) *Log {
	if w == nil {
		w = os.Stderr
	}
	return &Log{
		name:  name,
		level: level,
		out:   log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return &Log{level: LevelOff}
}
