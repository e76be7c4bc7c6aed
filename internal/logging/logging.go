package logging

import (
	"io"
	"log"
	"os"
)

var (
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
	debugLogger *log.Logger
)

// Setup points both loggers at w. Debug output is dropped unless debug is set.
func Setup(w io.Writer, debug bool) {
	errorLogger = log.New(w, "", log.LstdFlags)
	log.SetOutput(w)
	SetDebug(w, debug)
}

// SetDebug toggles debug logging at runtime
func SetDebug(w io.Writer, enabled bool) {
	if !enabled {
		debugLogger = nil
		return
	}
	debugLogger = log.New(w, "debug: ", log.LstdFlags|log.Lmicroseconds)
}

func Errorf(format string, v ...interface{}) {
	errorLogger.Printf(format, v...)
}

func Debugf(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}

// DebugEnabled is used to skip building expensive debug messages
func DebugEnabled() bool {
	return debugLogger != nil
}
