package dali

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Log is the global log object. The default level is LevelNone
var Log = &Logger{level: LevelNone, logger: log.New(os.Stderr, "", log.LstdFlags)}

// LogLevel indicates verbosity of logging
type LogLevel int

// Log levels are None, Info, Debug and Trace. Trace logging should only
// be used to display frames and gateway packets as they are received or
// sent
const (
	LevelNone = iota
	LevelInfo
	LevelDebug
	LevelTrace
)

func (ll LogLevel) String() string {
	switch ll {
	case LevelNone:
		return "NONE"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	}
	return ""
}

// Set satisfies the flag.Value interface
func (ll *LogLevel) Set(s string) (err error) {
	switch s {
	case "none":
		*ll = LevelNone
	case "info":
		*ll = LevelInfo
	case "debug":
		*ll = LevelDebug
	case "trace":
		*ll = LevelTrace
	default:
		err = fmt.Errorf("valid values {none|info|debug|trace}")
	}
	return err
}

// Get satisfies the flag.Getter interface
func (ll *LogLevel) Get() interface{} {
	return LogLevel(*ll)
}

// SetLogLevel replaces the global log object with one writing messages of
// the given level or lower to out
func SetLogLevel(level LogLevel, out io.Writer) {
	Log = &Logger{level: level, logger: log.New(out, "", log.LstdFlags)}
}

// Logger is a struct that keeps track of a log level and only
// prints messages of that level or lower
type Logger struct {
	level  LogLevel
	logger *log.Logger
}

// Level sets the Loggers log level
func (s *Logger) Level(level LogLevel) {
	s.level = level
}

func (s *Logger) logf(level LogLevel, format string, v ...interface{}) {
	if s.level >= level {
		format = fmt.Sprintf("%5s %s", level, format)
		s.logger.Printf(format, v...)
	}
}

// Infof will print a message at the Info level
func (s *Logger) Infof(format string, v ...interface{}) {
	s.logf(LevelInfo, format, v...)
}

// Debugf will print a message at the Debug level
func (s *Logger) Debugf(format string, v ...interface{}) {
	s.logf(LevelDebug, format, v...)
}

// Tracef will print a message at the Trace level
func (s *Logger) Tracef(format string, v ...interface{}) {
	s.logf(LevelTrace, format, v...)
}
