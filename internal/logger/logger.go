package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Logger provides structured logging across the application
type Logger struct {
	component string
	out       *log.Logger
}

var output = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects every component logger, e.g. to silence the CLI in tests.
func SetOutput(w io.Writer) {
	output.SetOutput(w)
}

// New creates a new logger for a specific component
func New(component string) *Logger {
	return &Logger{component: component, out: output}
}

// GenerateID creates a short unique identifier for operation tracing
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Log writes a structured log message with fixed-width formatting
func (l *Logger) Log(id, level, message string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(message, args...)
	l.out.Printf("[%s] [%-5s] [%-8s] %s", id, level, l.component, formattedMsg)
}

func (l *Logger) Debug(id, message string, args ...interface{}) {
	l.Log(id, "DEBUG", message, args...)
}

func (l *Logger) Info(id, message string, args ...interface{}) {
	l.Log(id, "INFO", message, args...)
}

func (l *Logger) Warn(id, message string, args ...interface{}) {
	l.Log(id, "WARN", message, args...)
}

func (l *Logger) Error(id, message string, args ...interface{}) {
	l.Log(id, "ERROR", message, args...)
}
