// Package logger is a standardized event logging framework for the shell.
//
// Every dispatched input line produces one LogEntry describing what the
// shell did with it: handled a builtin, resolved an alias, or executed an
// external program.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// LogEntry is a single recorded shell event.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	// Exactly one of the following is set.
	Builtin       *Builtin       `json:"builtin,omitempty"`
	AliasResolved *AliasResolved `json:"alias_resolved,omitempty"`
	Exec          *Exec          `json:"exec,omitempty"`
}

// Builtin records a handled builtin directive.
type Builtin struct {
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
}

// AliasResolved records an alias lookup that replaced the input line.
type AliasResolved struct {
	Alias   string `json:"alias"`
	Command string `json:"command"`
}

// Exec records an external program invocation and its outcome.
type Exec struct {
	Name  string   `json:"name"`
	Args  []string `json:"args,omitempty"`
	Error string   `json:"error,omitempty"`
}

// LogRecorder is a callback that stores entries in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures shell interaction events.
type Logger struct {
	Record LogRecorder
}

// NewJSONLinesLogRecorder creates a Logger that exports entries in newline
// delimited JSON object format.
func NewJSONLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewNopLogRecorder creates a Logger that discards entries, used when no
// session log is configured.
func NewNopLogRecorder() *Logger {
	return &Logger{
		Record: func(le *LogEntry) error { return nil },
	}
}

// NewSession creates a logger with an attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger logs entries with a shared session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

func (l *SessionLogger) record(le *LogEntry) error {
	le.TimestampMicros = time.Now().UnixNano() / int64(time.Microsecond)
	le.SessionID = l.sessionID
	return l.logger.Record(le)
}

// RecordBuiltin logs a handled builtin directive.
func (l *SessionLogger) RecordBuiltin(name string, args []string) error {
	return l.record(&LogEntry{Builtin: &Builtin{Name: name, Args: args}})
}

// RecordAliasResolved logs an alias expansion.
func (l *SessionLogger) RecordAliasResolved(alias, command string) error {
	return l.record(&LogEntry{AliasResolved: &AliasResolved{Alias: alias, Command: command}})
}

// RecordExec logs an external program invocation. runErr may be nil.
func (l *SessionLogger) RecordExec(name string, args []string, runErr error) error {
	e := &Exec{Name: name, Args: args}
	if runErr != nil {
		e.Error = runErr.Error()
	}
	return l.record(&LogEntry{Exec: e})
}
