package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/simshare/internal/chat"
	"github.com/zhubert/simshare/internal/logger"
)

// ChatFlashDoneMsg ends the highlight on a freshly sent message
type ChatFlashDoneMsg struct {
	MessageID string
}

// ChatPanel renders a chat.Composer's log in a scrolling viewport with an
// input textarea below it. Enter submits through the composer;
// Shift+Enter and Ctrl+J insert a newline.
type ChatPanel struct {
	viewport viewport.Model
	input    textarea.Model
	composer *chat.Composer
	width    int
	height   int
	focused  bool

	// Now is the clock used for relative timestamps
	Now func() time.Time

	// renderedLen is the log length the viewport content was built from
	renderedLen int

	// flash covers content lines [flashStart, flashEnd) of the newest message
	flashID    string
	flashStart int
	flashEnd   int
}

// NewChatPanel creates an unbound chat panel
func NewChatPanel() *ChatPanel {
	ti := textarea.New()
	ti.Placeholder = "Write a message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	// Bare enter belongs to the composer
	ti.KeyMap.InsertNewline.SetKeys("shift+enter", "ctrl+j")

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &ChatPanel{
		viewport: vp,
		input:    ti,
		Now:      time.Now,
	}
}

// Bind attaches the panel to a composer. The textarea is loaded with the
// composer's draft and the panel re-renders on every composer change.
// The history opens scrolled to the end.
func (c *ChatPanel) Bind(composer *chat.Composer) {
	c.composer = composer
	c.flashID = ""
	c.renderedLen = -1
	c.input.SetValue(composer.Draft())
	composer.OnChange(c.onComposerChange)
	composer.Follower().Mark()
	c.updateContent()
}

// Unbind detaches the panel from its composer
func (c *ChatPanel) Unbind() {
	if c.composer != nil {
		c.composer.OnChange(nil)
	}
	c.composer = nil
	c.flashID = ""
	c.input.Reset()
	c.updateContent()
}

// Composer returns the bound composer, or nil
func (c *ChatPanel) Composer() *chat.Composer {
	return c.composer
}

// onComposerChange keeps the textarea and viewport in step with the composer
func (c *ChatPanel) onComposerChange() {
	if c.composer == nil {
		return
	}
	if c.input.Value() != c.composer.Draft() {
		c.input.SetValue(c.composer.Draft())
	}
	if c.composer.Log().Len() != c.renderedLen || c.composer.Follower().Pending() {
		c.updateContent()
	}
}

// SetSize sets the chat panel dimensions
func (c *ChatPanel) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	// Chat history panel height, excluding the input area
	chatPanelHeight := height - InputTotalHeight
	viewportHeight := ctx.InnerHeight(chatPanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	c.input.SetWidth(ctx.InnerWidth(width) - InputPaddingWidth)

	logger.WithComponent("ui").Debug("ChatPanel.SetSize",
		"width", width, "height", height,
		"viewportWidth", c.viewport.Width(), "viewportHeight", c.viewport.Height())

	// Wrap width changed, and a pending scroll can now run
	c.updateContent()
}

// SetFocused sets the focus state
func (c *ChatPanel) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *ChatPanel) IsFocused() bool {
	return c.focused
}

// Input returns the current textarea contents
func (c *ChatPanel) Input() string {
	return c.input.Value()
}

// IsFlashing reports whether a sent message is highlighted
func (c *ChatPanel) IsFlashing() bool {
	return c.flashID != ""
}

// updateContent re-renders the log into the viewport and drains the
// follower. The scroll runs only once the viewport has a size; until then
// the flag stays set for the next pass.
func (c *ChatPanel) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if c.composer == nil {
		c.renderedLen = 0
		c.viewport.SetContent(renderEmptyChat())
		return
	}

	msgs := c.composer.Log().Messages()
	c.renderedLen = len(msgs)
	if len(msgs) == 0 {
		c.viewport.SetContent(renderEmptyChat())
		return
	}

	now := c.Now()
	var sb strings.Builder
	lines := 0
	for i, msg := range msgs {
		if i > 0 {
			sb.WriteString("\n\n")
			lines += 2
		}
		rendered := renderMessage(msg, wrapWidth, now)
		if msg.ID == c.flashID {
			c.flashStart = lines
			c.flashEnd = lines + strings.Count(rendered, "\n") + 1
		}
		lines += strings.Count(rendered, "\n")
		sb.WriteString(rendered)
	}
	c.viewport.SetContent(sb.String())

	if c.viewport.Height() <= 0 || c.viewport.Width() <= 0 {
		return
	}
	if c.composer.Follower().Drain() {
		c.viewport.GotoBottom()
	}
}

// startFlash highlights the newest message and schedules its end
func (c *ChatPanel) startFlash() tea.Cmd {
	last, ok := c.composer.Log().Last()
	if !ok {
		return nil
	}
	c.flashID = last.ID
	c.updateContent()
	id := last.ID
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return ChatFlashDoneMsg{MessageID: id}
	})
}

// splitShift separates a "shift+" modifier from a key name
func splitShift(key string) (string, bool) {
	if rest, ok := strings.CutPrefix(key, "shift+"); ok {
		return rest, true
	}
	return key, false
}

// Update handles messages
func (c *ChatPanel) Update(msg tea.Msg) (*ChatPanel, tea.Cmd) {
	if done, ok := msg.(ChatFlashDoneMsg); ok {
		if done.MessageID == c.flashID {
			c.flashID = ""
		}
		return c, nil
	}

	if c.focused && c.composer != nil {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			key := keyMsg.String()
			switch key {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end", "ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}

			name, shift := splitShift(key)
			before := c.composer.Log().Len()
			if c.composer.HandleSubmitKey(name, shift) {
				if c.composer.Log().Len() > before {
					return c, c.startFlash()
				}
				return c, nil
			}

			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			if c.input.Value() != c.composer.Draft() {
				c.composer.SetDraft(c.input.Value())
			}
			// Keys never scroll the viewport while typing
			return c, cmd
		}

		if _, isPaste := msg.(tea.PasteMsg); isPaste {
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			c.composer.SetDraft(c.input.Value())
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// visibleFlashRows returns the flashed message's rows relative to the top of
// the viewport, clipped to what is on screen.
func (c *ChatPanel) visibleFlashRows() (start, end int) {
	offset := c.viewport.YOffset()
	start = max(0, c.flashStart-offset)
	end = min(c.viewport.Height(), c.flashEnd-offset)
	return start, max(start, end)
}

// flashView highlights the flashed message's visible rows using ultraviolet
func (c *ChatPanel) flashView(view string) string {
	if c.flashID == "" {
		return view
	}

	width := c.viewport.Width()
	height := c.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	start, end := c.visibleFlashRows()
	if start >= end {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	bg := FlashStyle.GetBackground()
	fg := FlashStyle.GetForeground()
	for y := start; y < end; y++ {
		for x := 0; x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Bg = bg
			cell.Style.Fg = fg
			scr.SetCell(x, y, cell)
		}
	}

	return scr.Render()
}

// View renders the chat panel
func (c *ChatPanel) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	chatPanelHeight := c.height - InputTotalHeight
	if chatPanelHeight < BorderSize+1 {
		chatPanelHeight = BorderSize + 1
	}
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.flashView(c.viewport.View()))

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
