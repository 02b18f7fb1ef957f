package share

import (
	"strconv"
	"strings"
)

// Notice is an informational event emitted when a share or invite goes out.
type Notice interface {
	notice()
	Summary() string
}

// ShareNotice records a simulation shared with a set of friends.
type ShareNotice struct {
	SimulationID string
	FriendIDs    []string
	Message      string
}

func (ShareNotice) notice() {}

// Summary returns a one-line human readable description.
func (n ShareNotice) Summary() string {
	if len(n.FriendIDs) == 1 {
		return "Shared with 1 friend"
	}
	return "Shared with " + strconv.Itoa(len(n.FriendIDs)) + " friends"
}

// InviteNotice records an invitation sent to an email address.
type InviteNotice struct {
	Email string
}

func (InviteNotice) notice() {}

// Summary returns a one-line human readable description.
func (n InviteNotice) Summary() string {
	return "Invite sent to " + n.Email
}

// Notifier receives notices. Delivery is best effort and never affects the
// outcome of a submission.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) { f(n) }

// ShareDialog holds the state of the "share simulation" dialog.
type ShareDialog struct {
	*Lifecycle
	SimulationID string
	Selection    *SelectionSet
	Message      string

	notifier Notifier
}

// NewShareDialog creates a closed share dialog for the given simulation.
func NewShareDialog(simulationID string, notifier Notifier) *ShareDialog {
	d := &ShareDialog{
		SimulationID: simulationID,
		Selection:    NewSelectionSet(),
		notifier:     notifier,
	}
	d.Lifecycle = NewLifecycle(func() {
		d.Selection.Clear()
		d.Message = ""
	})
	return d
}

// Submit shares with the selected friends and closes the dialog. It does
// nothing when no friend is selected.
func (d *ShareDialog) Submit() bool {
	if d.Selection.Len() == 0 {
		return false
	}
	if d.notifier != nil {
		d.notifier.Notify(ShareNotice{
			SimulationID: d.SimulationID,
			FriendIDs:    d.Selection.IDs(),
			Message:      strings.TrimSpace(d.Message),
		})
	}
	d.Close()
	return true
}

// InviteDialog holds the state of the "invite by email" dialog.
type InviteDialog struct {
	*Lifecycle
	Email string

	notifier Notifier
}

// NewInviteDialog creates a closed invite dialog.
func NewInviteDialog(notifier Notifier) *InviteDialog {
	d := &InviteDialog{notifier: notifier}
	d.Lifecycle = NewLifecycle(func() {
		d.Email = ""
	})
	return d
}

// Submit sends the invite and closes the dialog. It does nothing when the
// email is blank.
func (d *InviteDialog) Submit() bool {
	email := strings.TrimSpace(d.Email)
	if email == "" {
		return false
	}
	if d.notifier != nil {
		d.notifier.Notify(InviteNotice{Email: email})
	}
	d.Close()
	return true
}
