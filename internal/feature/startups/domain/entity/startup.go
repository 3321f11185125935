// Package entity defines the domain models for the startups feature.
package entity

// Signal score weights. Hiring is weighted heaviest because it is the
// least gameable of the three mock inputs; each recorded event adds a
// flat bonus on top.
const (
	hiringWeight = 0.6
	buzzWeight   = 0.4
	eventBonus   = 2.5
	maxScore     = 100
)

// Startup represents one tracked private company in the catalog.
// Records are loaded once at service start and never mutated afterwards.
type Startup struct {
	ID       string          // Unique identifier (e.g., "airship-ml")
	Name     string          // Company display name
	Sector   string          // Sector display name
	Stage    string          // Funding stage display string (e.g., "Seed", "Series A")
	Country  string          // Country display name
	Overview string          // One-paragraph description
	Momentum []MomentumPoint // Monthly signal history, oldest first
}

// MomentumPoint is one month of mock hiring/buzz/event signals.
// Hiring and Buzz are 0-100 indexes.
type MomentumPoint struct {
	Month  string   // e.g., "2026-05"
	Hiring int
	Buzz   int
	Events []string // Notable events recorded that month, if any
}

// SignalScore derives the mock composite signal from the momentum history:
// a weighted blend of the latest hiring and buzz indexes plus a flat bonus
// per recorded event, clamped to [0, 100]. A startup with no momentum
// history scores zero.
func (s Startup) SignalScore() float64 {
	if len(s.Momentum) == 0 {
		return 0
	}
	latest := s.Momentum[len(s.Momentum)-1]

	events := 0
	for _, m := range s.Momentum {
		events += len(m.Events)
	}

	score := hiringWeight*float64(latest.Hiring) +
		buzzWeight*float64(latest.Buzz) +
		eventBonus*float64(events)
	if score > maxScore {
		return maxScore
	}
	if score < 0 {
		return 0
	}
	return score
}
