package party

import (
	"testing"

	"election-dashboard-go/internal/testutil"
	"election-dashboard-go/pkg/model"
)

func TestUpdatePartyTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	id := testutil.CreateTestParty(t, db, "الحزب الديمقراطي الكردستاني", "PDK", 0)
	other := testutil.CreateTestParty(t, db, "دولة القانون", "SOL", 111)

	if err := svc.UpdatePartyTotals(id, 50000, 12); err != nil {
		t.Fatalf("UpdatePartyTotals: %v", err)
	}

	parties, err := svc.ListParties()
	if err != nil {
		t.Fatalf("ListParties: %v", err)
	}
	if len(parties) != 2 {
		t.Fatalf("Expected 2 parties, got %d", len(parties))
	}

	for _, p := range parties {
		switch p.ID {
		case id:
			if p.NumberOfVoting != 50000 || p.ThisElecChairs != 12 {
				t.Errorf("PDK counters = (%d, %d), want (50000, 12)", p.NumberOfVoting, p.ThisElecChairs)
			}
			if p.Abbr != "PDK" || p.LastElecChairs != 0 {
				t.Errorf("Update touched fields it should not have: %+v", p)
			}
		case other:
			if p.NumberOfVoting != 111 {
				t.Errorf("Other party changed by unrelated update: %+v", p)
			}
		}
	}
}

func TestUpdatePartyTotalsNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	err := svc.UpdatePartyTotals(999, 1, 1)
	if err == nil || err.Error() != "party not found" {
		t.Fatalf("Expected party not found, got %v", err)
	}
}

func TestListPartiesOrderedByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	testutil.CreateTestParty(t, db, "ب", "B", 10)
	testutil.CreateTestParty(t, db, "أ", "A", 99)

	parties, err := svc.ListParties()
	if err != nil {
		t.Fatalf("ListParties: %v", err)
	}
	for i := 1; i < len(parties); i++ {
		if parties[i].ID < parties[i-1].ID {
			t.Fatalf("Parties not ordered by id: %+v", parties)
		}
	}
}

func TestUpsertPartyRegionCreateThenUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)
	id := testutil.CreateTestParty(t, db, "PDK", "PDK", 0)

	// First write creates the row; hyphen form canonicalizes on the way in.
	code, err := svc.UpsertPartyRegion(id, "IQ-AR", 8000, 3)
	if err != nil {
		t.Fatalf("UpsertPartyRegion create: %v", err)
	}
	if code != "IQ_AR" {
		t.Fatalf("Expected canonical code IQ_AR, got %s", code)
	}

	// Second write updates in place.
	if _, err := svc.UpsertPartyRegion(id, "IQ_AR", 9000, 4); err != nil {
		t.Fatalf("UpsertPartyRegion update: %v", err)
	}

	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM locations WHERE party_id = $1", id); err != nil {
		t.Fatalf("count locations: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected a single location row, got %d", count)
	}

	counters, err := svc.LoadPartyRegion(id, "IQ-AR")
	if err != nil {
		t.Fatalf("LoadPartyRegion: %v", err)
	}
	if !counters.Exists || counters.NumberOfVoting != 9000 || counters.ThisElecChairs != 4 {
		t.Errorf("Lookup after update = %+v, want (9000, 4, exists)", counters)
	}
}

func TestUpsertPartyRegionPartyNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	_, err := svc.UpsertPartyRegion(42, "IQ_AR", 1, 1)
	if err == nil || err.Error() != "party not found" {
		t.Fatalf("Expected party not found, got %v", err)
	}
}

func TestLoadPartyRegionBothConventions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)
	id := testutil.CreateTestParty(t, db, "PDK", "PDK", 0)
	testutil.CreateTestLocation(t, db, id, "IQ_AR", 8000, 3)

	for _, code := range []string{"IQ_AR", "IQ-AR", "iq-ar"} {
		counters, err := svc.LoadPartyRegion(id, code)
		if err != nil {
			t.Fatalf("LoadPartyRegion(%q): %v", code, err)
		}
		if !counters.Exists || counters.NumberOfVoting != 8000 || counters.ThisElecChairs != 3 {
			t.Errorf("LoadPartyRegion(%q) = %+v, want (8000, 3, exists)", code, counters)
		}
	}
}

func TestLoadPartyRegionLegacyHyphenRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)
	id := testutil.CreateTestParty(t, db, "PDK", "PDK", 0)

	// Row persisted before canonicalization, under the hyphen form.
	testutil.CreateTestLocation(t, db, id, "IQ-AR", 1234, 1)

	counters, err := svc.LoadPartyRegion(id, "IQ_AR")
	if err != nil {
		t.Fatalf("LoadPartyRegion: %v", err)
	}
	if !counters.Exists || counters.NumberOfVoting != 1234 {
		t.Errorf("Legacy row not found via canonical code: %+v", counters)
	}
}

func TestLoadPartyRegionMissingPair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)
	id := testutil.CreateTestParty(t, db, "PDK", "PDK", 0)

	counters, err := svc.LoadPartyRegion(id, "IQ_BG")
	if err != nil {
		t.Fatalf("LoadPartyRegion: %v", err)
	}
	if counters.Exists {
		t.Error("Expected Exists false for missing pair")
	}
	if counters.NumberOfVoting != 0 || counters.ThisElecChairs != 0 {
		t.Errorf("Expected zero counters, got %+v", counters)
	}
}

func TestLoadPartyRegionValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	if _, err := svc.LoadPartyRegion(0, "IQ_AR"); err == nil {
		t.Error("Expected error for missing party id")
	}
	if _, err := svc.LoadPartyRegion(1, "  "); err == nil {
		t.Error("Expected error for blank region code")
	}
}

func TestTopPartiesByVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	votes := []int{500, 100, 900, 300, 700, 200, 400, 800}
	for i, v := range votes {
		testutil.CreateTestParty(t, db, "حزب", string(rune('A'+i)), v)
	}

	top, err := svc.TopPartiesByVotes()
	if err != nil {
		t.Fatalf("TopPartiesByVotes: %v", err)
	}
	if len(top) != TOP_PARTIES_LIMIT {
		t.Fatalf("Expected %d parties, got %d", TOP_PARTIES_LIMIT, len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].NumberOfVoting > top[i-1].NumberOfVoting {
			t.Fatalf("Top parties not in descending order: %+v", top)
		}
	}
	if top[0].NumberOfVoting != 900 {
		t.Errorf("Expected top vote count 900, got %d", top[0].NumberOfVoting)
	}
	if top[0].NumberOfVotingDisplay != "900" {
		t.Errorf("Unexpected display value %q", top[0].NumberOfVotingDisplay)
	}
}

func TestTopPartiesByRegion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	// High aggregate but no location row for the region: must be excluded.
	testutil.CreateTestParty(t, db, "غائب", "ABS", 1000000)

	regional := make([]int, 0, 8)
	for i := 0; i < 8; i++ {
		id := testutil.CreateTestParty(t, db, "حزب", "P"+string(rune('A'+i)), 0)
		v := (i + 1) * 100
		testutil.CreateTestLocation(t, db, id, "IQ_BG", v, 0)
		regional = append(regional, v)
	}

	standings, err := svc.TopPartiesByRegion("IQ-BG")
	if err != nil {
		t.Fatalf("TopPartiesByRegion: %v", err)
	}
	if len(standings) != TOP_PARTIES_LIMIT {
		t.Fatalf("Expected %d standings, got %d", TOP_PARTIES_LIMIT, len(standings))
	}
	for _, s := range standings {
		if s.Abbr == "ABS" {
			t.Error("Party without a location row must not appear in region standings")
		}
	}
	if standings[0].NumberOfVoting != 800 {
		t.Errorf("Expected top regional count 800, got %d", standings[0].NumberOfVoting)
	}
	for i := 1; i < len(standings); i++ {
		if standings[i].NumberOfVoting > standings[i-1].NumberOfVoting {
			t.Fatalf("Standings not in descending order: %+v", standings)
		}
	}
}

func TestTopPartiesByRegionRequiresCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	if _, err := svc.TopPartiesByRegion(" "); err == nil {
		t.Error("Expected error for blank region code")
	}
}

func TestListPartiesWithLocations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPartyService(db)

	a := testutil.CreateTestParty(t, db, "أ", "A", 0)
	b := testutil.CreateTestParty(t, db, "ب", "B", 0)
	testutil.CreateTestLocation(t, db, a, "IQ_BG", 10, 1)
	testutil.CreateTestLocation(t, db, a, "IQ_AR", 20, 2)

	parties, err := svc.ListPartiesWithLocations()
	if err != nil {
		t.Fatalf("ListPartiesWithLocations: %v", err)
	}
	if len(parties) != 2 {
		t.Fatalf("Expected 2 parties, got %d", len(parties))
	}

	byID := make(map[int]model.PartyWithLocations)
	for _, p := range parties {
		byID[p.ID] = p
	}
	if len(byID[a].Locations) != 2 {
		t.Errorf("Expected 2 locations for party A, got %d", len(byID[a].Locations))
	}
	if len(byID[b].Locations) != 0 {
		t.Errorf("Expected no locations for party B, got %d", len(byID[b].Locations))
	}
}
