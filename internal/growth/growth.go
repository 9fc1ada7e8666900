// Package growth implements the pet leveling layer: a linear transform
// of committed scores into points and levels.
package growth

import "math"

// DefaultPointsPerLevel is the level step applied when none is configured.
const DefaultPointsPerLevel = 100

// State is the persisted growth record.
type State struct {
	Points  int `json:"points"`
	Commits int `json:"commits"`
}

// Tracker accumulates points from committed analyses.
type Tracker struct {
	state    State
	perLevel int
}

// NewTracker resumes from a persisted state. pointsPerLevel at or below
// zero falls back to DefaultPointsPerLevel.
func NewTracker(state State, pointsPerLevel int) *Tracker {
	if pointsPerLevel <= 0 {
		pointsPerLevel = DefaultPointsPerLevel
	}
	return &Tracker{state: state, perLevel: pointsPerLevel}
}

// Record awards points for one committed analysis and returns how many
// were awarded. Points scale linearly with the total normalized score,
// one point per full hundred.
func (t *Tracker) Record(normalized [5]float64) int {
	sum := 0.0
	for _, v := range normalized {
		sum += v
	}
	awarded := int(math.Round(sum / 100))
	if awarded < 0 {
		awarded = 0
	}
	t.state.Points += awarded
	t.state.Commits++
	return awarded
}

// Level returns the current level, starting at 1.
func (t *Tracker) Level() int {
	return 1 + t.state.Points/t.perLevel
}

// Progress returns points earned toward the next level and the step size.
func (t *Tracker) Progress() (into, step int) {
	return t.state.Points % t.perLevel, t.perLevel
}

// State returns the persistable snapshot.
func (t *Tracker) State() State {
	return t.state
}
