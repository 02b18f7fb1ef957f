package chat

import (
	"fmt"
	"testing"
	"time"
)

func newTestComposer() *Composer {
	c := NewComposer(nil, nil)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	c.Now = func() time.Time { return fixed }
	c.NewID = func() string {
		n++
		return fmt.Sprintf("msg-%d", n)
	}
	return c
}

func TestComposer_SubmitOnlyNonBlank(t *testing.T) {
	tests := []struct {
		draft   string
		appends bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n ", false},
		{"hi", true},
		{"  padded  ", true},
		{"line one\nline two", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.draft), func(t *testing.T) {
			c := newTestComposer()
			c.SetDraft(tt.draft)
			_, ok := c.Submit()

			if ok != tt.appends {
				t.Errorf("Submit() ok = %v, want %v", ok, tt.appends)
			}
			wantLen := 0
			if tt.appends {
				wantLen = 1
			}
			if c.Log().Len() != wantLen {
				t.Errorf("log length = %d, want %d", c.Log().Len(), wantLen)
			}
			if !tt.appends && c.Draft() != tt.draft {
				t.Errorf("rejected draft changed to %q, want %q", c.Draft(), tt.draft)
			}
			if c.Follower().Pending() != tt.appends {
				t.Errorf("follower pending = %v, want %v", c.Follower().Pending(), tt.appends)
			}
		})
	}
}

func TestComposer_SubmitBuildsMessage(t *testing.T) {
	c := newTestComposer()
	c.SetDraft("  Check the mesh density near the weld  ")

	msg, ok := c.Submit()
	if !ok {
		t.Fatal("expected submit to succeed")
	}
	if msg.Content != "Check the mesh density near the weld" {
		t.Errorf("content = %q, want trimmed text", msg.Content)
	}
	if msg.SenderID != "me" || msg.SenderName != "You" {
		t.Errorf("sender = %q/%q, want me/You", msg.SenderID, msg.SenderName)
	}
	if msg.ID != "msg-1" {
		t.Errorf("ID = %q, want msg-1", msg.ID)
	}
	if !msg.SentAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("SentAt = %v", msg.SentAt)
	}
	if c.Draft() != "" {
		t.Errorf("draft after submit = %q, want empty", c.Draft())
	}
	last, _ := c.Log().Last()
	if last != msg {
		t.Errorf("last message = %+v, want %+v", last, msg)
	}
}

func TestComposer_UniqueIDs(t *testing.T) {
	c := NewComposer(nil, nil)
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		c.SetDraft("msg")
		msg, _ := c.Submit()
		if seen[msg.ID] {
			t.Fatalf("duplicate id %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestComposer_AppendsAfterSeed(t *testing.T) {
	seed := []Message{
		{ID: "a", SenderID: "u1", SenderName: "Ada", Content: "first"},
		{ID: "b", SenderID: "u2", SenderName: "Ben", Content: "second"},
	}
	c := NewComposer(NewLog(seed...), nil)
	c.SetDraft("third")
	c.Submit()

	msgs := c.Log().Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if msgs[i].Content != want {
			t.Errorf("msgs[%d] = %q, want %q", i, msgs[i].Content, want)
		}
	}
}

func TestComposer_HandleSubmitKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		shift   bool
		handled bool
	}{
		{"enter", "enter", false, true},
		{"Enter capitalized", "Enter", false, true},
		{"shift enter", "enter", true, false},
		{"other key", "a", false, false},
		{"other key with shift", "tab", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestComposer()
			c.SetDraft("hello")
			handled := c.HandleSubmitKey(tt.key, tt.shift)

			if handled != tt.handled {
				t.Errorf("HandleSubmitKey(%q, %v) = %v, want %v", tt.key, tt.shift, handled, tt.handled)
			}
			wantLen := 0
			if tt.handled {
				wantLen = 1
			}
			if c.Log().Len() != wantLen {
				t.Errorf("log length = %d, want %d", c.Log().Len(), wantLen)
			}
		})
	}
}

func TestComposer_HandleSubmitKeyBlankDraftStillConsumed(t *testing.T) {
	c := newTestComposer()
	c.SetDraft("   ")
	if !c.HandleSubmitKey("enter", false) {
		t.Error("bare enter should be consumed even when the draft is blank")
	}
	if c.Log().Len() != 0 {
		t.Errorf("blank draft appended: log length %d", c.Log().Len())
	}
}

func TestComposer_OnChange(t *testing.T) {
	c := newTestComposer()
	calls := 0
	c.OnChange(func() { calls++ })

	c.SetDraft("x")
	if calls != 1 {
		t.Errorf("calls after SetDraft = %d, want 1", calls)
	}
	c.Submit()
	if calls != 2 {
		t.Errorf("calls after Submit = %d, want 2", calls)
	}
	c.SetDraft(" ")
	c.Submit()
	if calls != 3 {
		t.Errorf("rejected submit should not notify: calls = %d, want 3", calls)
	}
}

func TestComposer_EndToEnd(t *testing.T) {
	c := newTestComposer()

	c.SetDraft("  ")
	c.Submit()
	if c.Log().Len() != 0 {
		t.Fatalf("log should still be empty, got %d", c.Log().Len())
	}

	c.SetDraft("Hello world")
	c.Submit()
	if c.Log().Len() != 1 {
		t.Fatalf("expected 1 message, got %d", c.Log().Len())
	}
	if got := c.Log().Messages()[0].Content; got != "Hello world" {
		t.Errorf("content = %q, want %q", got, "Hello world")
	}
	if c.Draft() != "" {
		t.Errorf("draft = %q, want empty", c.Draft())
	}
}

func TestComposer_Seed(t *testing.T) {
	c := newTestComposer()
	changes := 0
	c.OnChange(func() { changes++ })
	c.SetDraft("keep me")
	changes = 0

	c.Seed([]Message{
		{ID: "s1", SenderID: "f1", SenderName: "Ada", Content: "first"},
		{ID: "s2", SenderID: "f2", SenderName: "Lin", Content: "second"},
	})
	c.Seed(nil)

	if c.Log().Len() != 2 {
		t.Fatalf("log length = %d, want 2", c.Log().Len())
	}
	if c.Draft() != "keep me" {
		t.Errorf("draft = %q, seeding must not touch it", c.Draft())
	}
	if c.Follower().Pending() {
		t.Error("seeding must not mark the follower")
	}
	if changes != 1 {
		t.Errorf("OnChange fired %d times, want 1", changes)
	}
}
