// Package stage defines the ordered launch preparation stages and their
// level thresholds.
package stage

import "strings"

// Stage identifies one of the three ordered launch preparation tracks.
type Stage int

const (
	// Unspecified represents an invalid stage.
	Unspecified Stage = iota
	// Fuel is the first stage, driven by document sync counters.
	Fuel
	// Boosters is the second stage, driven by discrete setup actions.
	Boosters
	// Guidance is the third stage, driven by discrete setup actions.
	Guidance
)

// MaxLevel is the highest level a stage can reach.
const MaxLevel = 5

// All returns the stages in their canonical unlock order.
func All() []Stage {
	return []Stage{Fuel, Boosters, Guidance}
}

// Valid reports whether the stage is one of the known tracks.
func (s Stage) Valid() bool {
	switch s {
	case Fuel, Boosters, Guidance:
		return true
	default:
		return false
	}
}

// Label returns the string label for a stage.
func (s Stage) Label() string {
	switch s {
	case Fuel:
		return "fuel"
	case Boosters:
		return "boosters"
	case Guidance:
		return "guidance"
	default:
		return "unspecified"
	}
}

// FromLabel converts a stage label to a Stage value.
func FromLabel(label string) Stage {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "fuel":
		return Fuel
	case "boosters":
		return Boosters
	case "guidance":
		return Guidance
	default:
		return Unspecified
	}
}

// Unlocked reports whether the stage is navigable given the current level of
// every stage. Fuel is always open; each later stage requires every earlier
// stage to have reached at least level 1.
func Unlocked(s Stage, fuelLevel, boostersLevel int) bool {
	switch s {
	case Fuel:
		return true
	case Boosters:
		return fuelLevel >= 1
	case Guidance:
		return fuelLevel >= 1 && boostersLevel >= 1
	default:
		return false
	}
}
