package share

// Lifecycle is the open/closed state of an auxiliary dialog. The reset
// function clears the dialog's draft fields and runs on every Open; Close
// leaves the drafts as they are.
type Lifecycle struct {
	open  bool
	reset func()
}

// NewLifecycle creates a closed lifecycle with the given reset function.
func NewLifecycle(reset func()) *Lifecycle {
	return &Lifecycle{reset: reset}
}

// Open marks the dialog open and resets its draft fields.
func (l *Lifecycle) Open() {
	l.open = true
	if l.reset != nil {
		l.reset()
	}
}

// Close marks the dialog closed.
func (l *Lifecycle) Close() {
	l.open = false
}

// IsOpen reports whether the dialog is open.
func (l *Lifecycle) IsOpen() bool {
	return l.open
}
