package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/simshare/internal/catalog"
	"github.com/zhubert/simshare/internal/keys"
)

func newTestDetail(t *testing.T) *Detail {
	t.Helper()
	c := catalog.Default()
	sim, err := c.Simulation("bridge-deck-a")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDetail()
	d.SetSize(50, 30)
	d.SetSimulation(sim, c.Friends())
	return d
}

func TestDetail_View(t *testing.T) {
	d := newTestDetail(t)
	view := ansi.Strip(d.View())

	for _, want := range []string{
		"Pedestrian bridge deck",
		"18,420 nodes",
		"12.4 mm",
		"187.5 MPa",
		"Friends (6)",
		"MO", // Maya Okafor
		"李小",
		"accepted",
		"pending",
		"blocked",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in detail view:\n%s", want, view)
		}
	}
}

func TestDetail_FailedRunHidesResults(t *testing.T) {
	c := catalog.Default()
	sim, _ := c.Simulation("warehouse-snow")
	d := NewDetail()
	d.SetSize(50, 30)
	d.SetSimulation(sim, nil)

	view := ansi.Strip(d.View())
	if strings.Contains(view, "Max stress") {
		t.Error("results should be hidden for a failed run")
	}
	if !strings.Contains(view, "No friends yet") {
		t.Error("expected the empty friends placeholder")
	}
}

func TestDetail_FriendNavigation(t *testing.T) {
	d := newTestDetail(t)

	d.Update(keys.Press(keys.Down))
	if f, _ := d.SelectedFriend(); f.ID != "f-maya" {
		t.Error("unfocused detail should ignore keys")
	}

	d.SetFocused(true)
	d.Update(keys.Press(keys.Down))
	d.Update(keys.Press(keys.Down))
	if f, _ := d.SelectedFriend(); f.ID != "f-li" {
		t.Errorf("expected f-li, got %s", f.ID)
	}
	d.Update(keys.Press("k"))
	if f, _ := d.SelectedFriend(); f.ID != "f-jonas" {
		t.Errorf("expected f-jonas, got %s", f.ID)
	}
}

func TestStatusBadge(t *testing.T) {
	tests := []struct {
		status string
		label  string
	}{
		{"ACCEPTED", "accepted"},
		{"PENDING", "pending"},
		{"BLOCKED", "blocked"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		if got := strings.TrimSpace(ansi.Strip(StatusBadge(tt.status))); got != tt.label {
			t.Errorf("StatusBadge(%q) = %q, want %q", tt.status, got, tt.label)
		}
	}
}

func TestAvatar(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John Middle Doe", "JM"},
		{"john doe", "JD"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := strings.TrimSpace(ansi.Strip(Avatar(tt.name))); got != tt.want {
			t.Errorf("Avatar(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
