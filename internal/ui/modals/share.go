package modals

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/simshare/internal/keys"
	"github.com/zhubert/simshare/internal/share"
)

// Share modal focus targets.
const (
	ShareFocusFriends = iota
	ShareFocusMessage
)

// ShareState is the state for the "share simulation" modal. Selection and
// message draft live on the bound dialog; the modal only adds cursor and
// focus state.
type ShareState struct {
	Dialog         *share.ShareDialog
	SimulationName string
	Friends        []FriendItem
	SelectedIndex  int
	ScrollOffset   int
	Focus          int
	MessageInput   textarea.Model
}

func (*ShareState) modalState() {}

func (s *ShareState) PreferredWidth() int { return ModalWidthWide }

func (s *ShareState) Title() string { return "Share " + s.SimulationName }

func (s *ShareState) Help() string {
	if s.Focus == ShareFocusFriends {
		return "Space: toggle  Tab: message  Enter: share  Esc: cancel"
	}
	return "Tab: friends  Enter: share  Esc: cancel"
}

func (s *ShareState) Render() string {
	title := ModalTitleStyle.Render(TruncateString(s.Title(), ModalWidthWide-8))

	label := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Share with:")

	var friendList string
	if len(s.Friends) == 0 {
		friendList = mutedLine("No accepted friends yet. Invite someone with 'i'.")
	} else {
		friendList = s.renderFriendList()
	}

	count := mutedLine("(" + strconv.Itoa(s.Dialog.Selection.Len()) + " selected)")

	messageView := focusFrame(s.MessageInput.View(), s.Focus == ShareFocusMessage)

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		label,
		count,
		friendList,
		fieldLabel("Message (optional):"),
		messageView,
		help,
	)
}

func (s *ShareState) renderFriendList() string {
	var lines []string

	startIdx := s.ScrollOffset
	endIdx := min(startIdx+ShareMaxVisible, len(s.Friends))

	if startIdx > 0 {
		lines = append(lines, scrollIndicator(startIdx, "above"))
	}

	for i := startIdx; i < endIdx; i++ {
		friend := s.Friends[i]
		style := ListItemStyle
		prefix := "  "
		if i == s.SelectedIndex && s.Focus == ShareFocusFriends {
			style = ListSelectedStyle
			prefix = "> "
		}

		checkbox := "[ ]"
		if s.Dialog.Selection.IsSelected(friend.ID) {
			checkbox = "[x]"
		}

		lines = append(lines, style.Render(prefix+checkbox+" "+friend.Name))
	}

	if endIdx < len(s.Friends) {
		lines = append(lines, scrollIndicator(len(s.Friends)-endIdx, "below"))
	}

	return strings.Join(lines, "\n")
}

func (s *ShareState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		key := keyMsg.String()

		if s.Focus == ShareFocusFriends {
			switch key {
			case keys.Up, "k":
				if s.SelectedIndex > 0 {
					s.SelectedIndex--
					if s.SelectedIndex < s.ScrollOffset {
						s.ScrollOffset = s.SelectedIndex
					}
				}
				return s, nil
			case keys.Down, "j":
				if s.SelectedIndex < len(s.Friends)-1 {
					s.SelectedIndex++
					if s.SelectedIndex >= s.ScrollOffset+ShareMaxVisible {
						s.ScrollOffset = s.SelectedIndex - ShareMaxVisible + 1
					}
				}
				return s, nil
			case keys.Space:
				if s.SelectedIndex < len(s.Friends) {
					s.Dialog.Selection.Toggle(s.Friends[s.SelectedIndex].ID)
				}
				return s, nil
			case keys.Tab:
				s.Focus = ShareFocusMessage
				return s, s.MessageInput.Focus()
			}
			return s, nil
		}

		if key == keys.Tab || key == keys.ShiftTab {
			s.Focus = ShareFocusFriends
			s.MessageInput.Blur()
			return s, nil
		}
	}

	if s.Focus == ShareFocusMessage {
		var cmd tea.Cmd
		s.MessageInput, cmd = s.MessageInput.Update(msg)
		s.Dialog.Message = s.MessageInput.Value()
		return s, cmd
	}

	return s, nil
}

// NewShareState opens dialog and builds the modal over it. Opening resets the
// dialog's selection and message.
func NewShareState(dialog *share.ShareDialog, simulationName string, friends []FriendItem) *ShareState {
	dialog.Open()

	input := textarea.New()
	input.Placeholder = "Add a note for your friends..."
	input.CharLimit = ShareMessageMaxChars
	input.ShowLineNumbers = false
	input.Prompt = ""
	input.SetWidth(ModalWidthWide - 8)
	input.SetHeight(ShareMessageHeight)
	ApplyTextareaStyles(&input)
	input.SetValue(dialog.Message)

	return &ShareState{
		Dialog:         dialog,
		SimulationName: simulationName,
		Friends:        friends,
		Focus:          ShareFocusFriends,
		MessageInput:   input,
	}
}
