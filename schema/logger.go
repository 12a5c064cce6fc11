package schema

import (
	"fmt"
	"io"
	"os"
)

const (
	DebugLevel = iota
	InfoLevel
	ErrorLevel
)

var (
	LogLevel int          = InfoLevel // level of DefaultLogger
	Logger   SchemaLogger = &DefaultLogger{}

	logOutput io.Writer = os.Stderr
)

type (
	// SchemaLogger receives schema loading and indexing diagnostics
	SchemaLogger interface {
		Debugf(format string, v ...interface{})
		Infof(format string, v ...interface{})
		Errorf(format string, v ...interface{})
	}

	// DefaultLogger prints to stderr with fmt
	DefaultLogger struct {
	}
)

func LogDebugIf(condition bool, format string, v ...interface{}) {
	if condition {
		Logger.Debugf(format, v...)
	}
}

func LogInfo(format string, v ...interface{}) {
	Logger.Infof(format, v...)
}

func LogDebug(format string, v ...interface{}) {
	Logger.Debugf(format, v...)
}

func (l *DefaultLogger) Debugf(format string, v ...interface{}) {
	if LogLevel > DebugLevel {
		return
	}
	fmt.Fprintf(logOutput, format+"\n", v...)
}

func (l *DefaultLogger) Infof(format string, v ...interface{}) {
	if LogLevel > InfoLevel {
		return
	}
	fmt.Fprintf(logOutput, format+"\n", v...)
}

func (l *DefaultLogger) Errorf(format string, v ...interface{}) {
	if LogLevel > ErrorLevel {
		return
	}
	fmt.Fprintf(logOutput, format+"\n", v...)
}
