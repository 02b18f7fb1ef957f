package chat

// Follower is a one-shot dirty flag that requests a scroll to the end of the
// conversation. The composer marks it after an append; the render pass drains
// it. Repeated marks before a drain collapse into a single scroll.
type Follower struct {
	pending bool
}

// Mark requests a scroll on the next drain.
func (f *Follower) Mark() {
	f.pending = true
}

// Pending reports whether a scroll has been requested and not yet drained.
func (f *Follower) Pending() bool {
	return f.pending
}

// Drain returns true if a scroll was pending and resets the flag.
func (f *Follower) Drain() bool {
	if !f.pending {
		return false
	}
	f.pending = false
	return true
}
