package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/simshare/internal/chat"
	"github.com/zhubert/simshare/internal/keys"
)

var testNow = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestPanel(t *testing.T, seed ...chat.Message) (*ChatPanel, *chat.Composer) {
	t.Helper()
	composer := chat.NewComposer(chat.NewLog(seed...), nil)
	n := 0
	composer.Now = func() time.Time { return testNow }
	composer.NewID = func() string {
		n++
		return fmt.Sprintf("sent-%d", n)
	}

	panel := NewChatPanel()
	panel.Now = func() time.Time { return testNow }
	panel.Bind(composer)
	panel.SetSize(80, 24)
	panel.SetFocused(true)
	return panel, composer
}

func typeText(p *ChatPanel, text string) *ChatPanel {
	for _, r := range text {
		p, _ = p.Update(keys.Press(string(r)))
	}
	return p
}

func TestWrapText(t *testing.T) {
	if got := wrapText("hello world", 0); got != "hello world" {
		t.Errorf("zero width should return original, got %q", got)
	}
	if got := wrapText("", 20); got != "" {
		t.Errorf("empty string should stay empty, got %q", got)
	}

	wrapped := wrapText("this is a longer text that needs wrapping", 20)
	for _, line := range strings.Split(wrapped, "\n") {
		if ansi.StringWidth(line) > 20 {
			t.Errorf("line %q exceeds width 20", line)
		}
	}
	if strings.Join(strings.Fields(wrapped), " ") != "this is a longer text that needs wrapping" {
		t.Errorf("wrapping lost words: %q", wrapped)
	}
}

func TestRenderInlineMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "peak **187 MPa** here", "peak 187 MPa here"},
		{"italic", "this is _very_ stiff", "this is very stiff"},
		{"identifier untouched", "see load_case_1 output", "see load_case_1 output"},
		{"inline code", "run `solve --modal`", "run solve --modal"},
		{"bold inside code untouched", "`**x**`", "**x**"},
		{"link", "[docs](https://simshare.app)", "docs (https://simshare.app)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(renderInlineMarkdown(tt.in)); got != tt.want {
				t.Errorf("renderInlineMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderMarkdownLine(t *testing.T) {
	tests := []struct {
		in       string
		contains string
	}{
		{"# Results", "Results"},
		{"## Loads", "Loads"},
		{"- dead load", "• dead load"},
		{"2. live load", "2. live load"},
		{"> quoted", "quoted"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ansi.Strip(renderMarkdownLine(tt.in, 60))
			if !strings.Contains(got, tt.contains) {
				t.Errorf("renderMarkdownLine(%q) = %q, want it to contain %q", tt.in, got, tt.contains)
			}
			if strings.HasPrefix(strings.TrimSpace(got), "#") {
				t.Errorf("header marker should be stripped: %q", got)
			}
		})
	}
}

func TestRenderMarkdown_CodeBlock(t *testing.T) {
	content := "Combination:\n```python\nULS = 1.35 * G + 1.5 * Q\n```\nDone."
	got := ansi.Strip(renderMarkdown(content, 60))

	if strings.Contains(got, "```") {
		t.Errorf("fences should be removed: %q", got)
	}
	for _, want := range []string{"Combination:", "ULS = 1.35 * G + 1.5 * Q", "Done."} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestRenderMarkdown_UnterminatedFence(t *testing.T) {
	got := ansi.Strip(renderMarkdown("```\nnodes = 18420", 60))
	if !strings.Contains(got, "nodes = 18420") {
		t.Errorf("unterminated block content should be kept: %q", got)
	}
}

func TestRenderMessage(t *testing.T) {
	own := chat.Message{ID: "1", SenderID: chat.SelfID, SenderName: chat.SelfName, Content: "hi", SentAt: testNow.Add(-5 * time.Minute)}
	got := ansi.Strip(renderMessage(own, 60, testNow))
	if !strings.HasPrefix(got, "You · 5m ago\n") {
		t.Errorf("unexpected header: %q", got)
	}

	undated := chat.Message{ID: "2", SenderID: "f1", SenderName: "Ada", Content: "hello"}
	got = ansi.Strip(renderMessage(undated, 60, testNow))
	if strings.Contains(got, "·") {
		t.Errorf("messages without a timestamp should not show one: %q", got)
	}
}

func TestChatPanel_EnterSubmits(t *testing.T) {
	panel, composer := newTestPanel(t)

	panel = typeText(panel, "Hello world")
	if composer.Draft() != "Hello world" {
		t.Fatalf("draft = %q, want typed text", composer.Draft())
	}

	panel, cmd := panel.Update(keys.Press(keys.Enter))

	if composer.Log().Len() != 1 {
		t.Fatalf("log length = %d, want 1", composer.Log().Len())
	}
	if panel.Input() != "" {
		t.Errorf("textarea should be cleared, got %q", panel.Input())
	}
	if composer.Draft() != "" {
		t.Errorf("draft should be cleared, got %q", composer.Draft())
	}
	if cmd == nil || !panel.IsFlashing() {
		t.Error("expected the sent message to flash")
	}
	if !strings.Contains(ansi.Strip(panel.View()), "Hello world") {
		t.Error("sent message should be rendered")
	}
}

func TestChatPanel_BlankEnterDoesNothing(t *testing.T) {
	panel, composer := newTestPanel(t)

	panel = typeText(panel, "   ")
	panel, cmd := panel.Update(keys.Press(keys.Enter))

	if composer.Log().Len() != 0 {
		t.Errorf("blank draft should not be sent")
	}
	if cmd != nil {
		t.Error("no flash expected for a blank draft")
	}
	if panel.Input() != "   " {
		t.Errorf("blank draft should stay in the textarea, got %q", panel.Input())
	}
}

func TestChatPanel_ShiftEnterInsertsNewline(t *testing.T) {
	panel, composer := newTestPanel(t)

	panel = typeText(panel, "line one")
	panel, _ = panel.Update(keys.Press(keys.ShiftEnter))
	panel = typeText(panel, "line two")

	if composer.Log().Len() != 0 {
		t.Fatal("shift+enter must not submit")
	}
	if composer.Draft() != "line one\nline two" {
		t.Errorf("draft = %q, want a two-line draft", composer.Draft())
	}

	panel.Update(keys.Press(keys.Enter))
	last, _ := composer.Log().Last()
	if last.Content != "line one\nline two" {
		t.Errorf("sent content = %q", last.Content)
	}
}

func TestChatPanel_ScrollFollowsSubmit(t *testing.T) {
	var seed []chat.Message
	for i := 0; i < 40; i++ {
		seed = append(seed, chat.Message{
			ID: fmt.Sprintf("seed-%d", i), SenderID: "f1", SenderName: "Ada",
			Content: fmt.Sprintf("message %d", i), SentAt: testNow.Add(-time.Hour),
		})
	}
	panel, composer := newTestPanel(t, seed...)

	if !panel.viewport.AtBottom() {
		t.Error("history should open scrolled to the end")
	}

	panel.viewport.GotoTop()
	panel = typeText(panel, "newest")
	panel, _ = panel.Update(keys.Press(keys.Enter))

	if !panel.viewport.AtBottom() {
		t.Error("viewport should follow to the end after a send")
	}
	if composer.Follower().Pending() {
		t.Error("follower should be drained by the render pass")
	}
}

func TestChatPanel_FlashFollowsScroll(t *testing.T) {
	var seed []chat.Message
	for i := 0; i < 40; i++ {
		seed = append(seed, chat.Message{
			ID: fmt.Sprintf("seed-%d", i), SenderID: "f1", SenderName: "Ada",
			Content: fmt.Sprintf("message %d", i), SentAt: testNow.Add(-time.Hour),
		})
	}
	panel, _ := newTestPanel(t, seed...)
	panel = typeText(panel, "newest")
	panel, _ = panel.Update(keys.Press(keys.Enter))
	if !panel.IsFlashing() {
		t.Fatal("expected the sent message to flash")
	}

	height := panel.viewport.Height()
	start, end := panel.visibleFlashRows()
	if start >= end || end != height {
		t.Fatalf("at bottom: flash rows [%d,%d), want a range ending at %d", start, end, height)
	}

	panel.viewport.SetYOffset(panel.viewport.YOffset() - 1)
	s1, e1 := panel.visibleFlashRows()
	if s1 != start+1 || e1 != height {
		t.Errorf("one row up: flash rows [%d,%d), want [%d,%d)", s1, e1, start+1, height)
	}

	panel.viewport.SetYOffset(panel.viewport.YOffset() - height)
	if s2, e2 := panel.visibleFlashRows(); s2 != e2 {
		t.Errorf("scrolled past the message: flash rows [%d,%d), want none", s2, e2)
	}
	if got := panel.flashView("x"); got != "x" {
		t.Errorf("flashView should leave the view alone when the message is off screen")
	}
}

func TestChatPanel_UnsizedKeepsScrollPending(t *testing.T) {
	composer := chat.NewComposer(nil, nil)
	panel := NewChatPanel()
	panel.Bind(composer)

	composer.SetDraft("before layout")
	composer.Submit()

	if !composer.Follower().Pending() {
		t.Fatal("scroll should wait until the panel has a size")
	}

	panel.SetSize(60, 20)
	if composer.Follower().Pending() {
		t.Error("sizing the panel should run the pending scroll")
	}
}

func TestChatPanel_FlashDone(t *testing.T) {
	panel, _ := newTestPanel(t)
	panel = typeText(panel, "ping")
	panel, _ = panel.Update(keys.Press(keys.Enter))

	panel, _ = panel.Update(ChatFlashDoneMsg{MessageID: "other"})
	if !panel.IsFlashing() {
		t.Error("a stale flash message must not end the current flash")
	}

	panel, _ = panel.Update(ChatFlashDoneMsg{MessageID: "sent-1"})
	if panel.IsFlashing() {
		t.Error("flash should end")
	}
}

func TestChatPanel_UnfocusedIgnoresKeys(t *testing.T) {
	panel, composer := newTestPanel(t)
	panel.SetFocused(false)

	panel = typeText(panel, "abc")
	panel.Update(keys.Press(keys.Enter))

	if composer.Draft() != "" || composer.Log().Len() != 0 {
		t.Error("unfocused panel should not edit or send")
	}
}

func TestChatPanel_PasteUpdatesDraft(t *testing.T) {
	panel, composer := newTestPanel(t)

	panel.Update(tea.PasteMsg{Content: "pasted text"})

	if composer.Draft() != "pasted text" {
		t.Errorf("draft = %q, want pasted text", composer.Draft())
	}
}

func TestChatPanel_BindLoadsDraft(t *testing.T) {
	composer := chat.NewComposer(nil, nil)
	composer.SetDraft("half written")

	panel := NewChatPanel()
	panel.Bind(composer)

	if panel.Input() != "half written" {
		t.Errorf("Input() = %q, want the composer's draft", panel.Input())
	}

	panel.Unbind()
	if panel.Composer() != nil || panel.Input() != "" {
		t.Error("Unbind should clear the panel")
	}
	composer.SetDraft("after unbind")
	if panel.Input() != "" {
		t.Error("unbound panel must not follow the composer")
	}
}

func TestChatPanel_EmptyPlaceholder(t *testing.T) {
	panel, _ := newTestPanel(t)
	if !strings.Contains(ansi.Strip(panel.View()), "No messages yet") {
		t.Error("empty log should show the placeholder")
	}
}
