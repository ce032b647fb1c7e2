// Package logger is the structured console logger of the filelike command.
// The library packages never log; they report through returned errors.
package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

type FieldKey string

const (
	FieldError     FieldKey = "error"
	FieldDriver    FieldKey = "driver"
	FieldSource    FieldKey = "source"
	FieldDest      FieldKey = "destination"
	FieldBytes     FieldKey = "bytes"
	FieldDuration  FieldKey = "duration"
	FieldAlgorithm FieldKey = "algorithm"
	FieldChecksum  FieldKey = "checksum"
	FieldBlockSize FieldKey = "block_size"
	FieldHighWater FieldKey = "high_water_mark"
)

type Fields map[FieldKey]any

type Level = pterm.LogLevel

const (
	LevelTrace Level = pterm.LogLevelTrace
	LevelDebug Level = pterm.LogLevelDebug
	LevelInfo  Level = pterm.LogLevelInfo
	LevelWarn  Level = pterm.LogLevelWarn
	LevelError Level = pterm.LogLevelError
)

var (
	levelNames = map[string]Level{
		"trace":   LevelTrace,
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	}

	mu   sync.RWMutex
	base = pterm.DefaultLogger.
		WithTime(true).
		WithTimeFormat(time.RFC3339).
		WithCaller(false).
		AppendKeyStyles(map[string]pterm.Style{
			string(FieldError): *pterm.NewStyle(pterm.FgRed, pterm.Bold),
		})
)

// ConfigureLogger sets the level by name. An unknown name falls back to
// info and is reported as an error.
func ConfigureLogger(level string) error {
	lvl, ok := levelNames[strings.TrimSpace(strings.ToLower(level))]
	if !ok {
		SetLogLevel(LevelInfo)
		if strings.TrimSpace(level) == "" {
			return nil
		}
		return fmt.Errorf("unknown log level %q", level)
	}
	SetLogLevel(lvl)
	return nil
}

func SetLogLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	base.Level = level
}

// SetOutput redirects log output, e.g. to the command's stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base.Writer = w
}

func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return base.Level
}

func emit(level Level, msg string, fields Fields) {
	mu.RLock()
	l := *base
	mu.RUnlock()
	if level < l.Level {
		return
	}

	args := sortedArgs(fields)
	switch level {
	case LevelTrace:
		l.Trace(msg, args)
	case LevelDebug:
		l.Debug(msg, args)
	case LevelWarn:
		l.Warn(msg, args)
	case LevelError:
		l.Error(msg, args)
	default:
		l.Info(msg, args)
	}
}

// sortedArgs orders fields by key so log lines are stable.
func sortedArgs(fields Fields) []pterm.LoggerArgument {
	if len(fields) == 0 {
		return nil
	}
	args := make([]pterm.LoggerArgument, 0, len(fields))
	for k, v := range fields {
		args = append(args, pterm.LoggerArgument{Key: string(k), Value: v})
	}
	sort.Slice(args, func(i, j int) bool { return args[i].Key < args[j].Key })
	return args
}

func Trace(msg string, fields Fields) { emit(LevelTrace, msg, fields) }
func Debug(msg string, fields Fields) { emit(LevelDebug, msg, fields) }
func Info(msg string, fields Fields)  { emit(LevelInfo, msg, fields) }
func Warn(msg string, fields Fields)  { emit(LevelWarn, msg, fields) }
func Error(msg string, fields Fields) { emit(LevelError, msg, fields) }
