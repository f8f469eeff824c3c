package party

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"election-dashboard-go/pkg/model"

	"github.com/jmoiron/sqlx"
)

// PartyService handles party queries and mutations. Queries use strictly
// ascending $n placeholders, which bind the same way under lib/pq and the
// sqlite driver the tests run on.
type PartyService struct {
	db *sqlx.DB
}

// NewPartyService creates a new party service
func NewPartyService(db *sqlx.DB) *PartyService {
	return &PartyService{db: db}
}

// TOP_PARTIES_LIMIT caps both leaderboard queries
const TOP_PARTIES_LIMIT = 6

// ListParties returns every party ordered by identifier
func (s *PartyService) ListParties() ([]model.Party, error) {
	parties := []model.Party{}
	err := s.db.Select(&parties, `
        SELECT id, arabic_name, abbr, color, number_of_voting, last_elec_chairs, this_elec_chairs
        FROM parties
        ORDER BY id ASC
    `)
	return parties, err
}

// ListPartiesWithLocations returns every party joined with its full
// regional breakdown, for clients that build per-region views themselves.
func (s *PartyService) ListPartiesWithLocations() ([]model.PartyWithLocations, error) {
	parties, err := s.ListParties()
	if err != nil {
		return nil, err
	}

	locations := []model.Location{}
	err = s.db.Select(&locations, `
        SELECT id, party_id, region_code, number_of_voting, this_elec_chairs
        FROM locations
        ORDER BY party_id ASC, region_code ASC
    `)
	if err != nil {
		return nil, err
	}

	byParty := make(map[int][]model.Location, len(parties))
	for _, loc := range locations {
		byParty[loc.PartyID] = append(byParty[loc.PartyID], loc)
	}

	result := make([]model.PartyWithLocations, 0, len(parties))
	for _, p := range parties {
		result = append(result, model.PartyWithLocations{
			Party:     p,
			Locations: byParty[p.ID],
		})
	}
	return result, nil
}

// TopPartiesByVotes returns the highest-polling parties by aggregate vote
// count. Ties fall back to store iteration order.
func (s *PartyService) TopPartiesByVotes() ([]model.TopParty, error) {
	parties := []model.TopParty{}
	err := s.db.Select(&parties, fmt.Sprintf(`
        SELECT id, arabic_name, abbr, color, number_of_voting, last_elec_chairs, this_elec_chairs
        FROM parties
        ORDER BY number_of_voting DESC
        LIMIT %d
    `, TOP_PARTIES_LIMIT))
	if err != nil {
		return nil, err
	}

	for i := range parties {
		parties[i].NumberOfVotingDisplay = FormatCount(parties[i].NumberOfVoting)
	}
	return parties, nil
}

// TopPartiesByRegion ranks parties by one region's vote count. Parties
// without a location row for the region are excluded, not treated as zero.
func (s *PartyService) TopPartiesByRegion(regionCode string) ([]model.RegionStanding, error) {
	if strings.TrimSpace(regionCode) == "" {
		return nil, errors.New("region code is required")
	}

	variants := model.RegionCodeVariants(regionCode)
	placeholders := make([]string, len(variants))
	args := make([]interface{}, 0, len(variants))
	for i, v := range variants {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, v)
	}

	query := fmt.Sprintf(`
        SELECT p.id, p.arabic_name, p.abbr, p.color, l.region_code, l.number_of_voting AS region_votes
        FROM parties p
        JOIN locations l ON l.party_id = p.id
        WHERE l.region_code IN (%s)
        ORDER BY l.number_of_voting DESC
        LIMIT %d
    `, strings.Join(placeholders, ", "), TOP_PARTIES_LIMIT)

	standings := []model.RegionStanding{}
	if err := s.db.Select(&standings, query, args...); err != nil {
		return nil, err
	}

	for i := range standings {
		standings[i].NumberOfVotingDisplay = FormatCount(standings[i].NumberOfVoting)
	}
	return standings, nil
}

// UpdatePartyTotals overwrites a party's aggregate vote and current-seat
// counters. All other fields are left unchanged.
func (s *PartyService) UpdatePartyTotals(partyID, numberOfVoting, thisElecChairs int) error {
	var id int
	err := s.db.Get(&id, "SELECT id FROM parties WHERE id = $1", partyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New("party not found")
		}
		return err
	}

	_, err = s.db.Exec(`
        UPDATE parties
        SET number_of_voting = $1, this_elec_chairs = $2
        WHERE id = $3
    `, numberOfVoting, thisElecChairs, partyID)
	return err
}

// UpsertPartyRegion writes a party's counters for one region, creating the
// location row if seeding never produced it. The lookup and the write run
// in one transaction, and the insert path carries ON CONFLICT DO UPDATE so
// a concurrent first-writer resolves to an update instead of a
// uniqueness error. Returns the canonical region code actually persisted.
func (s *PartyService) UpsertPartyRegion(partyID int, regionCode string, numberOfVoting, thisElecChairs int) (string, error) {
	if strings.TrimSpace(regionCode) == "" {
		return "", errors.New("region code is required")
	}
	canonical := model.CanonicalRegionCode(regionCode)

	tx, err := s.db.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var id int
	err = tx.Get(&id, "SELECT id FROM parties WHERE id = $1", partyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", errors.New("party not found")
		}
		return "", err
	}

	var locationID int
	err = tx.Get(&locationID, `
        SELECT id FROM locations
        WHERE party_id = $1 AND region_code = $2
    `, partyID, canonical)

	switch {
	case err == nil:
		_, err = tx.Exec(`
            UPDATE locations
            SET number_of_voting = $1, this_elec_chairs = $2
            WHERE id = $3
        `, numberOfVoting, thisElecChairs, locationID)
	case err == sql.ErrNoRows:
		_, err = tx.Exec(`
            INSERT INTO locations (party_id, region_code, number_of_voting, this_elec_chairs)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (party_id, region_code)
            DO UPDATE SET number_of_voting = EXCLUDED.number_of_voting,
                          this_elec_chairs = EXCLUDED.this_elec_chairs
        `, partyID, canonical, numberOfVoting, thisElecChairs)
	}
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	log.Printf("Updated region %s for party %d: votes=%d chairs=%d", canonical, partyID, numberOfVoting, thisElecChairs)
	return canonical, nil
}

// LoadPartyRegion fetches a party's counters for one region, tolerating
// either textual convention of the region code. A pair with no row yet
// yields zero counters with Exists false rather than an error.
func (s *PartyService) LoadPartyRegion(partyID int, regionCode string) (model.RegionCounters, error) {
	if partyID == 0 {
		return model.RegionCounters{}, errors.New("party id is required")
	}
	if strings.TrimSpace(regionCode) == "" {
		return model.RegionCounters{}, errors.New("region code is required")
	}

	variants := model.RegionCodeVariants(regionCode)
	placeholders := make([]string, len(variants))
	args := make([]interface{}, 0, len(variants)+2)
	args = append(args, partyID)
	for i, v := range variants {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, v)
	}

	// Prefer the canonical row when legacy hyphen rows are also present.
	query := fmt.Sprintf(`
        SELECT number_of_voting, this_elec_chairs
        FROM locations
        WHERE party_id = $1 AND region_code IN (%s)
        ORDER BY CASE WHEN region_code = $%d THEN 0 ELSE 1 END
        LIMIT 1
    `, strings.Join(placeholders, ", "), len(variants)+2)
	args = append(args, model.CanonicalRegionCode(regionCode))

	var row struct {
		NumberOfVoting int `db:"number_of_voting"`
		ThisElecChairs int `db:"this_elec_chairs"`
	}
	err := s.db.Get(&row, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.RegionCounters{}, nil
		}
		return model.RegionCounters{}, err
	}

	return model.RegionCounters{
		NumberOfVoting: row.NumberOfVoting,
		ThisElecChairs: row.ThisElecChairs,
		Exists:         true,
	}, nil
}
