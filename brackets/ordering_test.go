package brackets

import (
	"testing"

	"github.com/Dosada05/fixture-planner/models"
)

func TestOrderForBroadcastStages(t *testing.T) {
	matches, err := Special(zonedTeams(3, 3, 3, 3, 3, 3, 3, 3), false)
	if err != nil {
		t.Fatal(err)
	}
	ids := make(map[string]bool, len(matches))
	for _, m := range matches {
		ids[m.ID] = true
	}

	ordered := OrderForBroadcast(matches)
	if len(ordered) != len(matches) {
		t.Fatalf("ordering changed match count: %d -> %d", len(matches), len(ordered))
	}
	for _, m := range ordered {
		if !ids[m.ID] {
			t.Fatalf("unknown match %s after ordering", m.ID)
		}
	}

	rank := map[models.Stage]int{
		models.StageZonesDay1: 0,
		models.StageZonesDay2: 1,
		models.StageOpeners:   2,
		models.StageLater:     3,
		models.StageFinals:    4,
	}
	counts := make(map[models.Stage]int)
	prev := -1
	for i, m := range ordered {
		r, ok := rank[m.Stage]
		if !ok {
			t.Fatalf("match %d has no stage", i)
		}
		if r < prev {
			t.Fatalf("stage %s at position %d comes after a later stage", m.Stage, i)
		}
		prev = r
		counts[m.Stage]++
	}

	if counts[models.StageZonesDay1] != 12 || counts[models.StageZonesDay2] != 12 {
		t.Errorf("zone split %d/%d, want 12/12", counts[models.StageZonesDay1], counts[models.StageZonesDay2])
	}
	// 8 cross-group (rounds 1-2) + 4 + 4 bracket openers
	if counts[models.StageOpeners] != 16 {
		t.Errorf("got %d openers, want 16", counts[models.StageOpeners])
	}
	if counts[models.StageLater] != 20 {
		t.Errorf("got %d later matches, want 20", counts[models.StageLater])
	}
	if counts[models.StageFinals] != 4 {
		t.Errorf("got %d finals, want 4", counts[models.StageFinals])
	}
}

func TestOrderZoneMatchesInterleavesOddAndEvenZones(t *testing.T) {
	matches, err := Special(zonedTeams(3, 3, 3, 3, 3, 3, 3, 3), false)
	if err != nil {
		t.Fatal(err)
	}
	ordered := OrderForBroadcast(matches)

	wantZones := []string{"Z1", "Z3", "Z5", "Z7", "Z2", "Z4", "Z6", "Z8"}
	for i, z := range wantZones {
		if ordered[i].Zone != z || ordered[i].Round != 1 {
			t.Errorf("position %d = %s R%d, want %s R1", i, ordered[i].Zone, ordered[i].Round, z)
		}
	}
	for i := 8; i < 12; i++ {
		if ordered[i].Round != 2 || ordered[i].Zone != wantZones[i-8] {
			t.Errorf("position %d = %s R%d, want %s R2", i, ordered[i].Zone, ordered[i].Round, wantZones[i-8])
		}
	}
}

func TestOrderZoneMatchesFallback(t *testing.T) {
	// two zones: matches grouped by zone then round
	ms := []*models.Match{
		{Zone: "B", Round: 2, Phase: PhaseSpecialZones},
		{Zone: "A", Round: 2, Phase: PhaseSpecialZones},
		{Zone: "B", Round: 1, Phase: PhaseSpecialZones},
		{Zone: "A", Round: 1, Phase: PhaseSpecialZones},
	}
	got := orderZoneMatches(ms)
	want := []string{"A1", "A2", "B1", "B2"}
	for i, m := range got {
		if key := m.Zone + string(rune('0'+m.Round)); key != want[i] {
			t.Errorf("position %d = %s, want %s", i, key, want[i])
		}
	}
}
