// Package chat holds the framework-independent state behind the chat panel:
// the append-only message log, the draft composer, and the one-shot
// scroll-follow flag the panel drains on each render pass.
package chat

import "time"

// Sender identity stamped on every message composed locally.
const (
	SelfID   = "me"
	SelfName = "You"
)

// Message is a single chat entry. Messages are immutable once appended.
type Message struct {
	ID         string
	SenderID   string
	SenderName string
	Content    string
	SentAt     time.Time
}

// IsOwn reports whether the message was composed by the local user.
func (m Message) IsOwn() bool {
	return m.SenderID == SelfID
}

// Log is an append-only, insertion-ordered sequence of messages.
type Log struct {
	messages []Message
}

// NewLog creates a log seeded with the given messages (copied).
func NewLog(seed ...Message) *Log {
	l := &Log{messages: make([]Message, 0, len(seed))}
	l.messages = append(l.messages, seed...)
	return l
}

// Append adds a message to the end of the log.
func (l *Log) Append(msg Message) {
	l.messages = append(l.messages, msg)
}

// Len returns the number of messages in the log.
func (l *Log) Len() int {
	return len(l.messages)
}

// Messages returns a copy of the log contents in insertion order.
func (l *Log) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Last returns the most recent message, or false when the log is empty.
func (l *Log) Last() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}
