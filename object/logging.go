package object

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// LogLevel represents the severity level of a log entry.
type LogLevel string

const (
	// LogLevelDebug represents debug-level logs
	LogLevelDebug LogLevel = "DEBUG"
	// LogLevelInfo represents informational logs
	LogLevelInfo LogLevel = "INFO"
	// LogLevelWarn represents warning logs
	LogLevelWarn LogLevel = "WARN"
	// LogLevelError represents error logs
	LogLevelError LogLevel = "ERROR"
)

// LogEntry is one structured log record as published for remote
// consumption. Plugins run inside hosts with no console of their own, so
// entries can additionally be streamed over NATS to a monitoring tool.
type LogEntry struct {
	Timestamp string   `json:"timestamp"` // RFC3339 format
	Level     LogLevel `json:"level"`
	Object    string   `json:"object"`
	Instance  string   `json:"instance"`
	Message   string   `json:"message"`
	Stack     string   `json:"stack,omitempty"`
}

// Logger provides structured per-object logging. It wraps a standard
// slog.Logger for local output while optionally publishing every entry
// to NATS for remote streaming; with a nil connection it logs locally
// only.
type Logger struct {
	objectName string
	instanceID string
	nc         *nats.Conn
	logger     *slog.Logger
	enabled    bool
}

func newLogger(objectName, instanceID string, nc *nats.Conn, logger *slog.Logger) *Logger {
	return &Logger{
		objectName: objectName,
		instanceID: instanceID,
		nc:         nc,
		logger:     logger,
		enabled:    nc != nil,
	}
}

// NewLogger creates a per-object logger. Pass a nil NATS connection for
// local-only logging.
func NewLogger(objectName, instanceID string, nc *nats.Conn, logger *slog.Logger) *Logger {
	return newLogger(objectName, instanceID, nc, logger)
}

// SetRemote attaches or detaches the NATS connection used for remote
// streaming.
func (ol *Logger) SetRemote(nc *nats.Conn) {
	ol.nc = nc
	ol.enabled = nc != nil
}

// Debug logs a debug-level message.
func (ol *Logger) Debug(msg string) {
	ol.publish(LogLevelDebug, msg, "")
	if ol.logger != nil {
		ol.logger.Debug(msg, "object", ol.objectName, "instance", ol.instanceID)
	}
}

// Info logs an info-level message.
func (ol *Logger) Info(msg string) {
	ol.publish(LogLevelInfo, msg, "")
	if ol.logger != nil {
		ol.logger.Info(msg, "object", ol.objectName, "instance", ol.instanceID)
	}
}

// Warn logs a warning message.
func (ol *Logger) Warn(msg string) {
	ol.publish(LogLevelWarn, msg, "")
	if ol.logger != nil {
		ol.logger.Warn(msg, "object", ol.objectName, "instance", ol.instanceID)
	}
}

// Error logs an error-level message with optional error details.
func (ol *Logger) Error(msg string, errs ...error) {
	var err error
	if len(errs) > 0 {
		err = errs[0]
	}
	stack := ""
	if err != nil {
		stack = fmt.Sprintf("%+v", err)
	}
	ol.publish(LogLevelError, msg, stack)
	if ol.logger != nil {
		ol.logger.Error(msg, "object", ol.objectName, "instance", ol.instanceID, "error", err)
	}
}

// publish sends an entry to NATS when remote streaming is enabled.
// Failures fall back to local logging and never propagate to the caller;
// logging must not be able to break the object.
func (ol *Logger) publish(level LogLevel, message, stack string) {
	if !ol.enabled {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Object:    ol.objectName,
		Instance:  ol.instanceID,
		Message:   message,
		Stack:     stack,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		if ol.logger != nil {
			ol.logger.Error("Failed to marshal log entry", "error", err)
		}
		return
	}

	nc := ol.nc
	if nc == nil {
		return
	}

	subject := fmt.Sprintf("flext.logs.%s.%s", ol.objectName, ol.instanceID)
	if err := nc.Publish(subject, data); err != nil {
		if ol.logger != nil {
			ol.logger.Error("Failed to publish log entry", "error", err)
		}
	}
}
