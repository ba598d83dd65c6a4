package fuel

import (
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
)

// DimensionProgress reports how far one counter dimension has moved toward
// the next level threshold.
type DimensionProgress struct {
	Current  int
	Required int
	Percent  int
}

// LevelProgress is the computed fuel level with per-dimension progress toward
// the next unattained level. NextLevel is 0 once the stage is capped.
type LevelProgress struct {
	CurrentLevel int
	NextLevel    int
	Documents    DimensionProgress
	Categories   DimensionProgress
}

// ComputeLevel walks the fuel thresholds from level 1 upward and returns the
// highest level whose document and category requirements are both satisfied.
func ComputeLevel(c Counters) int {
	level := 0
	for _, t := range stage.StageThresholds(stage.Fuel) {
		if c.FullySyncedDocuments >= t.DocumentsRequired && c.CategoryCount >= t.CategoriesRequired {
			level = t.Level
			continue
		}
		break
	}
	return level
}

// Progress computes the current level and the remaining per-dimension deltas
// for the next level. A dimension that does not gate the next level (its
// required delta is zero) reports 100%.
func Progress(c Counters) LevelProgress {
	current := ComputeLevel(c)
	result := LevelProgress{CurrentLevel: current}
	if current >= stage.MaxLevel {
		result.Documents = DimensionProgress{Current: c.FullySyncedDocuments, Percent: 100}
		result.Categories = DimensionProgress{Current: c.CategoryCount, Percent: 100}
		return result
	}

	next, ok := stage.LookupThreshold(stage.Fuel, current+1)
	if !ok {
		return result
	}
	result.NextLevel = next.Level

	prevDocs, prevCats := 0, 0
	if prev, ok := stage.LookupThreshold(stage.Fuel, current); ok {
		prevDocs = prev.DocumentsRequired
		prevCats = prev.CategoriesRequired
	}

	result.Documents = dimensionProgress(c.FullySyncedDocuments, prevDocs, next.DocumentsRequired)
	result.Categories = dimensionProgress(c.CategoryCount, prevCats, next.CategoriesRequired)
	return result
}

// dimensionProgress computes clamp(0,100, (current-prev)/(next-prev)*100),
// with 100% whenever the dimension's required delta is zero.
func dimensionProgress(current, prev, next int) DimensionProgress {
	dp := DimensionProgress{Current: current, Required: next}
	delta := next - prev
	if delta <= 0 {
		dp.Percent = 100
		return dp
	}
	percent := (current - prev) * 100 / delta
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	dp.Percent = percent
	return dp
}
