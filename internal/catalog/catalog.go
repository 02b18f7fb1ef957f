// Package catalog holds the in-memory mock data the application browses:
// simulations, the user's friends and a seeded chat history per simulation.
package catalog

import (
	"time"

	"github.com/zhubert/simshare/internal/chat"
	perrors "github.com/zhubert/simshare/internal/errors"
	"github.com/zhubert/simshare/internal/format"
)

// Analysis run states.
const (
	RunCompleted = "COMPLETED"
	RunRunning   = "RUNNING"
	RunFailed    = "FAILED"
)

// Friend status values beyond the two format.StatusColor knows.
const StatusBlocked = "BLOCKED"

// ShareBaseURL prefixes every share link.
const ShareBaseURL = "https://simshare.app/s/"

// Simulation is a finished or in-flight structural analysis.
type Simulation struct {
	ID                string
	Name              string
	AnalysisType      string
	RunStatus         string
	Owner             string
	Nodes             int
	Elements          int
	MaxDisplacementMM float64
	MaxStressMPa      float64
	CreatedAt         time.Time
}

// ShareLink returns the public link for the simulation.
func (s Simulation) ShareLink() string {
	return ShareBaseURL + s.ID
}

// Friend is a contact the user can share simulations with.
type Friend struct {
	ID     string
	Name   string
	Email  string
	Status string
}

// seedMessage is a history entry with its age relative to load time.
type seedMessage struct {
	senderID string
	ago      time.Duration
	content  string
}

// Catalog is a read-only set of mocked data.
type Catalog struct {
	simulations []Simulation
	friends     []Friend
	history     map[string][]seedMessage
}

// Simulations returns all simulations in display order.
func (c *Catalog) Simulations() []Simulation {
	out := make([]Simulation, len(c.simulations))
	copy(out, c.simulations)
	return out
}

// Simulation looks up a simulation by id.
func (c *Catalog) Simulation(id string) (Simulation, error) {
	for _, s := range c.simulations {
		if s.ID == id {
			return s, nil
		}
	}
	return Simulation{}, perrors.SimulationNotFound(id)
}

// Friends returns every friend in display order.
func (c *Catalog) Friends() []Friend {
	out := make([]Friend, len(c.friends))
	copy(out, c.friends)
	return out
}

// Friend looks up a friend by id.
func (c *Catalog) Friend(id string) (Friend, bool) {
	for _, f := range c.friends {
		if f.ID == id {
			return f, true
		}
	}
	return Friend{}, false
}

// ShareableFriends returns the friends a simulation can be shared with.
// Only accepted friends qualify.
func (c *Catalog) ShareableFriends() []Friend {
	var out []Friend
	for _, f := range c.friends {
		if f.Status == format.StatusAccepted {
			out = append(out, f)
		}
	}
	return out
}

// History returns the seeded chat for a simulation with timestamps
// relative to now. Unknown ids have no history.
func (c *Catalog) History(simulationID string, now time.Time) []chat.Message {
	seeds := c.history[simulationID]
	out := make([]chat.Message, 0, len(seeds))
	for i, s := range seeds {
		name := chat.SelfName
		if s.senderID != chat.SelfID {
			// A sender missing from the friend list shows as its raw id
			name = s.senderID
			if f, ok := c.Friend(s.senderID); ok {
				name = f.Name
			}
		}
		out = append(out, chat.Message{
			ID:         simulationID + "-seed-" + string(rune('a'+i)),
			SenderID:   s.senderID,
			SenderName: name,
			Content:    s.content,
			SentAt:     now.Add(-s.ago),
		})
	}
	return out
}
