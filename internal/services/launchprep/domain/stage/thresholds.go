package stage

// Threshold describes the requirements and point reward for one stage level.
// Fuel levels are gated by document and category counters; boosters and
// guidance levels are gated by a fixed number of discrete setup actions.
type Threshold struct {
	Stage              Stage
	Level              int
	Description        string
	DocumentsRequired  int
	CategoriesRequired int
	ActionsRequired    int
	Points             int
}

// thresholds is the immutable level table. Loaded once, never mutated.
var thresholds = []Threshold{
	{Stage: Fuel, Level: 1, Description: "Connect a drive and sync the first document", DocumentsRequired: 1, CategoriesRequired: 0, Points: 10},
	{Stage: Fuel, Level: 2, Description: "Sync a handful of documents across categories", DocumentsRequired: 5, CategoriesRequired: 2, Points: 15},
	{Stage: Fuel, Level: 3, Description: "Build a working document base", DocumentsRequired: 25, CategoriesRequired: 4, Points: 20},
	{Stage: Fuel, Level: 4, Description: "Cover the team's main document categories", DocumentsRequired: 100, CategoriesRequired: 6, Points: 25},
	{Stage: Fuel, Level: 5, Description: "Reach a fully fueled document base", DocumentsRequired: 500, CategoriesRequired: 8, Points: 30},

	{Stage: Boosters, Level: 1, Description: "Invite the first teammate", ActionsRequired: 1, Points: 10},
	{Stage: Boosters, Level: 2, Description: "Configure team roles", ActionsRequired: 1, Points: 15},
	{Stage: Boosters, Level: 3, Description: "Set up the category review workflow", ActionsRequired: 1, Points: 20},
	{Stage: Boosters, Level: 4, Description: "Complete the team workspace checklist", ActionsRequired: 1, Points: 25},
	{Stage: Boosters, Level: 5, Description: "Finish every booster task", ActionsRequired: 1, Points: 30},

	{Stage: Guidance, Level: 1, Description: "Take the product tour", ActionsRequired: 1, Points: 10},
	{Stage: Guidance, Level: 2, Description: "Complete the guided first search", ActionsRequired: 1, Points: 15},
	{Stage: Guidance, Level: 3, Description: "Save the first shared view", ActionsRequired: 1, Points: 20},
	{Stage: Guidance, Level: 4, Description: "Configure guidance notifications", ActionsRequired: 1, Points: 25},
	{Stage: Guidance, Level: 5, Description: "Finish the guidance track", ActionsRequired: 1, Points: 30},
}

// LookupThreshold returns the threshold for (stage, level).
// Level 0 and levels above MaxLevel have no threshold.
func LookupThreshold(s Stage, level int) (Threshold, bool) {
	if !s.Valid() || level < 1 || level > MaxLevel {
		return Threshold{}, false
	}
	for _, t := range thresholds {
		if t.Stage == s && t.Level == level {
			return t, true
		}
	}
	return Threshold{}, false
}

// StageThresholds returns the ordered thresholds for one stage, level 1 first.
func StageThresholds(s Stage) []Threshold {
	out := make([]Threshold, 0, MaxLevel)
	for _, t := range thresholds {
		if t.Stage == s {
			out = append(out, t)
		}
	}
	return out
}

// PointsThrough returns the total points awarded for reaching the given
// level: the sum of the point values of every threshold up to and including
// that level.
func PointsThrough(s Stage, level int) int {
	if level > MaxLevel {
		level = MaxLevel
	}
	total := 0
	for l := 1; l <= level; l++ {
		t, ok := LookupThreshold(s, l)
		if !ok {
			break
		}
		total += t.Points
	}
	return total
}
