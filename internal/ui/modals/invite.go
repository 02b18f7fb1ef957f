package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/simshare/internal/share"
)

// InviteState is the state for the "invite by email" modal.
type InviteState struct {
	Dialog     *share.InviteDialog
	EmailInput textinput.Model
}

func (*InviteState) modalState() {}

func (s *InviteState) Title() string { return "Invite a Friend" }

func (s *InviteState) Help() string {
	return "Enter: send invite  Esc: cancel"
}

func (s *InviteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	hint := mutedLine("They will get a link to join and view shared simulations.")
	input := focusFrame(s.EmailInput.View(), true)
	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		hint,
		fieldLabel("Email:"),
		input,
		help,
	)
}

func (s *InviteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.EmailInput, cmd = s.EmailInput.Update(msg)
	s.Dialog.Email = s.EmailInput.Value()
	return s, cmd
}

// NewInviteState opens dialog and builds the modal over it. Opening clears
// the email draft.
func NewInviteState(dialog *share.InviteDialog) *InviteState {
	dialog.Open()

	ti := textinput.New()
	ti.Placeholder = "friend@example.com"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.SetValue(dialog.Email)
	ti.Focus()

	return &InviteState{
		Dialog:     dialog,
		EmailInput: ti,
	}
}
