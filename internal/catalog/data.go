package catalog

import (
	"time"

	"github.com/zhubert/simshare/internal/chat"
	"github.com/zhubert/simshare/internal/format"
)

var epoch = time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)

// Default returns the built-in mock catalog.
func Default() *Catalog {
	return &Catalog{
		simulations: []Simulation{
			{
				ID:                "bridge-deck-a",
				Name:              "Pedestrian bridge deck",
				AnalysisType:      "Static linear",
				RunStatus:         RunCompleted,
				Owner:             "Maya Okafor",
				Nodes:             18420,
				Elements:          16233,
				MaxDisplacementMM: 12.4,
				MaxStressMPa:      187.5,
				CreatedAt:         epoch,
			},
			{
				ID:                "tower-modal",
				Name:              "Office tower modal analysis",
				AnalysisType:      "Modal",
				RunStatus:         RunCompleted,
				Owner:             "Jonas Weber",
				Nodes:             96310,
				Elements:          88102,
				MaxDisplacementMM: 41.9,
				MaxStressMPa:      212.0,
				CreatedAt:         epoch.Add(26 * time.Hour),
			},
			{
				ID:                "cantilever-fatigue",
				Name:              "Crane cantilever fatigue",
				AnalysisType:      "Transient",
				RunStatus:         RunRunning,
				Owner:             "Maya Okafor",
				Nodes:             5120,
				Elements:          4870,
				MaxDisplacementMM: 3.2,
				MaxStressMPa:      96.3,
				CreatedAt:         epoch.Add(50 * time.Hour),
			},
			{
				ID:                "warehouse-snow",
				Name:              "Warehouse roof snow load",
				AnalysisType:      "Nonlinear buckling",
				RunStatus:         RunFailed,
				Owner:             "Li Xiaolong",
				Nodes:             30877,
				Elements:          29004,
				CreatedAt:         epoch.Add(75 * time.Hour),
			},
		},
		friends: []Friend{
			{ID: "f-maya", Name: "Maya Okafor", Email: "maya@okafor.eng", Status: format.StatusAccepted},
			{ID: "f-jonas", Name: "Jonas Weber", Email: "jonas.weber@statik.de", Status: format.StatusAccepted},
			{ID: "f-li", Name: "李 小龙", Email: "li@structures.cn", Status: format.StatusAccepted},
			{ID: "f-emile", Name: "Émile Zola", Email: "emile@beton.fr", Status: format.StatusPending},
			{ID: "f-priya", Name: "Priya Raman Iyer", Email: "priya@loadpath.io", Status: format.StatusPending},
			{ID: "f-sam", Name: "sam", Email: "sam@example.com", Status: StatusBlocked},
		},
		history: map[string][]seedMessage{
			"bridge-deck-a": {
				{senderID: "f-maya", ago: 3 * time.Hour, content: "Deck results are in. Midspan deflection is 12.4 mm under the crowd load case."},
				{senderID: "f-jonas", ago: 2*time.Hour + 10*time.Minute, content: "That's within L/360. Did you include the handrail dead load?"},
				{senderID: chat.SelfID, ago: 95 * time.Minute, content: "Yes, combination below:\n```python\nULS = 1.35 * G + 1.5 * Q_crowd\nSLS = G + Q_crowd\n```"},
				{senderID: "f-maya", ago: 12 * time.Minute, content: "Peak stress is at the bearing stiffener. 187 MPa, fine for S355."},
			},
			"tower-modal": {
				{senderID: "f-jonas", ago: 5 * time.Hour, content: "First mode at 0.31 Hz, mostly sway in Y."},
				{senderID: "f-li", ago: 40 * time.Minute, content: "Torsional mode comes third. Core looks stiff enough."},
			},
			"cantilever-fatigue": {
				{senderID: "f-maya", ago: 30 * time.Second, content: "Run started, 2e6 cycles. ETA tomorrow morning."},
			},
		},
	}
}
