package stage

import "testing"

func TestLabelRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range All() {
		if got := FromLabel(s.Label()); got != s {
			t.Fatalf("round trip for %v = %v", s, got)
		}
	}
	if FromLabel("warp-drive") != Unspecified {
		t.Fatal("expected unspecified for unknown label")
	}
	if FromLabel(" Fuel ") != Fuel {
		t.Fatal("expected label parsing to trim and lowercase")
	}
}

func TestUnlockedOrdering(t *testing.T) {
	t.Parallel()

	if !Unlocked(Fuel, 0, 0) {
		t.Fatal("fuel must always be unlocked")
	}
	if Unlocked(Boosters, 0, 0) {
		t.Fatal("boosters locked until fuel reaches level 1")
	}
	if !Unlocked(Boosters, 1, 0) {
		t.Fatal("boosters unlocks at fuel level 1")
	}
	if Unlocked(Guidance, 1, 0) {
		t.Fatal("guidance locked until boosters reaches level 1")
	}
	if Unlocked(Guidance, 0, 3) {
		t.Fatal("guidance locked whenever fuel is below level 1")
	}
	if !Unlocked(Guidance, 1, 1) {
		t.Fatal("guidance unlocks at fuel 1 and boosters 1")
	}
	if Unlocked(Unspecified, 5, 5) {
		t.Fatal("unspecified stage is never unlocked")
	}
}

func TestLookupThresholdBounds(t *testing.T) {
	t.Parallel()

	if _, ok := LookupThreshold(Fuel, 0); ok {
		t.Fatal("level 0 has no threshold")
	}
	if _, ok := LookupThreshold(Fuel, MaxLevel+1); ok {
		t.Fatal("levels above max have no threshold")
	}
	if _, ok := LookupThreshold(Unspecified, 1); ok {
		t.Fatal("unspecified stage has no thresholds")
	}
	for _, s := range All() {
		for level := 1; level <= MaxLevel; level++ {
			got, ok := LookupThreshold(s, level)
			if !ok {
				t.Fatalf("missing threshold for %s level %d", s.Label(), level)
			}
			if got.Stage != s || got.Level != level {
				t.Fatalf("threshold mismatch for %s level %d: %+v", s.Label(), level, got)
			}
			if got.Points <= 0 {
				t.Fatalf("threshold %s level %d has no points", s.Label(), level)
			}
		}
	}
}

func TestFuelThresholdsAreMonotone(t *testing.T) {
	t.Parallel()

	levels := StageThresholds(Fuel)
	if len(levels) != MaxLevel {
		t.Fatalf("expected %d fuel thresholds, got %d", MaxLevel, len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].DocumentsRequired <= levels[i-1].DocumentsRequired {
			t.Fatalf("fuel documents requirement must grow: level %d", levels[i].Level)
		}
		if levels[i].CategoriesRequired < levels[i-1].CategoriesRequired {
			t.Fatalf("fuel categories requirement must not shrink: level %d", levels[i].Level)
		}
	}
}

func TestPointsThroughSumsThresholds(t *testing.T) {
	t.Parallel()

	if got := PointsThrough(Fuel, 0); got != 0 {
		t.Fatalf("points through level 0 = %d, want 0", got)
	}

	want := 0
	for level := 1; level <= MaxLevel; level++ {
		threshold, ok := LookupThreshold(Boosters, level)
		if !ok {
			t.Fatalf("missing boosters threshold %d", level)
		}
		want += threshold.Points
		if got := PointsThrough(Boosters, level); got != want {
			t.Fatalf("points through boosters level %d = %d, want %d", level, got, want)
		}
	}

	// Levels past the cap contribute nothing further.
	if got := PointsThrough(Boosters, MaxLevel+3); got != want {
		t.Fatalf("points past cap = %d, want %d", got, want)
	}
}
