// Package msglog is the player-facing message log.
package msglog

import (
	"slices"

	"go.uber.org/zap"
)

// Log is an append-only sequence of messages kept in call order.
type Log struct {
	logger   *zap.Logger
	messages []string
}

// New creates an empty Log. Each message is mirrored to logger at Debug.
//
// Precondition: logger must be non-nil.
func New(logger *zap.Logger) *Log {
	if logger == nil {
		panic("msglog.New: logger must not be nil")
	}
	return &Log{logger: logger}
}

// Add appends msg.
func (l *Log) Add(msg string) {
	l.messages = append(l.messages, msg)
	l.logger.Debug("message", zap.Int("index", len(l.messages)-1), zap.String("text", msg))
}

// Len returns the number of messages added so far.
func (l *Log) Len() int { return len(l.messages) }

// Messages returns every message in call order.
func (l *Log) Messages() []string { return slices.Clone(l.messages) }

// Recent returns up to the last n messages, oldest first.
func (l *Log) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	return slices.Clone(l.messages[max(0, len(l.messages)-n):])
}

// Since returns the messages added at or after index i. A driver records Len
// before a tick and calls Since afterwards to print only what is new.
func (l *Log) Since(i int) []string {
	if i < 0 || i >= len(l.messages) {
		return nil
	}
	return slices.Clone(l.messages[i:])
}
