// SPDX-License-Identifier: Apache-2.0

// Package audit provides the append-only event recorder invoked by the
// credential and vault stores on every mutating or security-relevant
// operation.
//
// The sink records who did what and when; it must never receive derived
// keys or decrypted entry secrets.
package audit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Level classifies the severity of an audit event.
type Level int

const (
	Debug Level = iota + 1
	Info
	Warning
	Error
)

// String returns the canonical upper-case name of the level as it appears
// in the audit log.
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Sink is the audit trail contract. Implementations append events and never
// reorder, rewrite, or drop them.
type Sink interface {
	// Log records an event with no associated account.
	Log(msg string, lvl Level)

	// LogWithUser records an event attributed to the given account name.
	LogWithUser(msg, username string, lvl Level)
}

// fileSink appends one JSON line per event to a local file via zerolog.
type fileSink struct {
	log zerolog.Logger
}

// NewFileSink opens (creating if absent) the append-only audit file at path
// and returns a [Sink] writing to it. Events carry a timestamp, the level
// and, when attributed, the account name.
func NewFileSink(path string) (Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create audit log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	log := zerolog.New(f).With().Timestamp().Logger()
	return &fileSink{log: log}, nil
}

func (s *fileSink) Log(msg string, lvl Level) {
	s.log.Log().Str("level", lvl.String()).Msg(msg)
}

func (s *fileSink) LogWithUser(msg, username string, lvl Level) {
	s.log.Log().Str("level", lvl.String()).Str("user", username).Msg(msg)
}

// nopSink discards all events. For tests.
type nopSink struct{}

// Nop returns a [Sink] that drops every event.
func Nop() Sink {
	return nopSink{}
}

func (nopSink) Log(string, Level)                 {}
func (nopSink) LogWithUser(string, string, Level) {}
