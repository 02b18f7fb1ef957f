package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubmitKey is the key name that submits the draft when pressed without shift.
const SubmitKey = "enter"

// Composer owns the draft text and the message log it appends to.
type Composer struct {
	draft    string
	log      *Log
	follower *Follower
	onChange func()

	// Now and NewID are replaceable for deterministic tests.
	Now   func() time.Time
	NewID func() string
}

// NewComposer creates a composer appending to log and marking follower on
// every successful submit. A nil log or follower is replaced with a fresh one.
func NewComposer(log *Log, follower *Follower) *Composer {
	if log == nil {
		log = NewLog()
	}
	if follower == nil {
		follower = &Follower{}
	}
	return &Composer{
		log:      log,
		follower: follower,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// OnChange binds the observer notified after every draft or log mutation.
// Only one observer is kept; binding again replaces it.
func (c *Composer) OnChange(fn func()) {
	c.onChange = fn
}

func (c *Composer) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Draft returns the current draft text, untrimmed.
func (c *Composer) Draft() string {
	return c.draft
}

// SetDraft replaces the draft verbatim.
func (c *Composer) SetDraft(text string) {
	c.draft = text
	c.notify()
}

// Log returns the message log the composer appends to.
func (c *Composer) Log() *Log {
	return c.log
}

// Follower returns the scroll-follow flag the composer marks.
func (c *Composer) Follower() *Follower {
	return c.follower
}

// Seed appends an initial batch of messages without touching the draft or
// the follower. It is used to load mocked history into a fresh panel.
func (c *Composer) Seed(msgs []Message) {
	if len(msgs) == 0 {
		return
	}
	for _, m := range msgs {
		c.log.Append(m)
	}
	c.notify()
}

// Submit appends the trimmed draft as a new message. A blank draft is left
// untouched and nothing is appended.
func (c *Composer) Submit() (Message, bool) {
	trimmed := strings.TrimSpace(c.draft)
	if trimmed == "" {
		return Message{}, false
	}

	msg := Message{
		ID:         c.NewID(),
		SenderID:   SelfID,
		SenderName: SelfName,
		Content:    trimmed,
		SentAt:     c.Now(),
	}
	c.log.Append(msg)
	c.draft = ""
	c.follower.Mark()
	c.notify()
	return msg, true
}

// HandleSubmitKey submits on a bare Enter. It returns true when the key was
// consumed, in which case the caller must suppress the key's default action
// (inserting a newline). Shift+Enter and all other keys are left alone.
func (c *Composer) HandleSubmitKey(key string, shift bool) bool {
	if shift || !strings.EqualFold(key, SubmitKey) {
		return false
	}
	c.Submit()
	return true
}
