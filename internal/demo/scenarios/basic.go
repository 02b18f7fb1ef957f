// Package scenarios contains built-in demo scenarios for simshare.
package scenarios

import (
	"time"

	"github.com/zhubert/simshare/internal/demo"
	perrors "github.com/zhubert/simshare/internal/errors"
)

// Basic walks through discussing and sharing a simulation:
// - Opening the bridge deck results from the home list
// - Posting a chat message
// - Sharing the simulation with two friends
// - Inviting a new colleague by email
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Discuss a simulation, share it, invite a colleague",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Recent: []string{"bridge-deck-a"},
	},
	Steps: []demo.Step{
		demo.Annotate("Simulations shared with you and your own runs"),
		demo.Wait(1500 * time.Millisecond),

		demo.KeyWithDesc("enter", "Open the bridge deck results"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Discuss results in the chat panel"),
		demo.TypeWithDesc("Checked the bearing stiffener, agreed on S355.", "Write a message"),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("enter", "Send it"),
		demo.Wait(1 * time.Second),

		// Leave the chat so single-letter shortcuts apply
		demo.Key("tab"),
		demo.KeyWithDesc("s", "Open the share dialog"),
		demo.Wait(800 * time.Millisecond),

		demo.Key("space"),
		demo.Key("down"),
		demo.Key("space"),
		demo.Annotate("Pick friends to share with"),
		demo.Wait(1 * time.Second),

		demo.Key("tab"),
		demo.Type("Final deck run, please review before Monday"),
		demo.Wait(800 * time.Millisecond),
		demo.KeyWithDesc("enter", "Share"),
		demo.Annotate("Shared"),
		demo.Wait(1500 * time.Millisecond),

		demo.KeyWithDesc("i", "Invite a colleague"),
		demo.Type("ana@framework.eng"),
		demo.Wait(800 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(1500 * time.Millisecond),

		demo.Capture(),
		demo.Wait(3 * time.Second),
	},
}

// Tour finds a simulation with the filter and shows search and the help overlay.
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Search the catalog and browse the keyboard shortcuts",
	Width:       120,
	Height:      40,
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc("/", "Search simulations"),
		demo.Type("tower"),
		demo.Annotate("Filter as you type"),
		demo.Wait(1 * time.Second),
		demo.KeyWithDesc("enter", "Open the match"),
		demo.Annotate("Modal analysis of the tower"),
		demo.Wait(1500 * time.Millisecond),

		demo.Key("tab"),
		demo.KeyWithDesc("?", "Show keyboard shortcuts"),
		demo.Wait(1500 * time.Millisecond),
		demo.Key("esc"),

		demo.Key("esc"),
		demo.Wait(1 * time.Second),
		demo.Capture(),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Tour,
	}
}

// Get returns a scenario by name.
func Get(name string) (*demo.Scenario, error) {
	for _, s := range All() {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, perrors.ScenarioNotFound(name)
}
