package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates the tables the dashboard needs.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Parties with their aggregate counters
CREATE TABLE IF NOT EXISTS parties (
    id SERIAL PRIMARY KEY,
    arabic_name TEXT NOT NULL,
    abbr TEXT NOT NULL UNIQUE,
    color TEXT NOT NULL,
    number_of_voting INT NOT NULL DEFAULT 0,
    last_elec_chairs INT NOT NULL DEFAULT 0,
    this_elec_chairs INT NOT NULL DEFAULT 0
);

-- Per-(party, region) counters
CREATE TABLE IF NOT EXISTS locations (
    id SERIAL PRIMARY KEY,
    party_id INT NOT NULL REFERENCES parties(id) ON DELETE CASCADE,
    region_code TEXT NOT NULL,
    number_of_voting INT NOT NULL DEFAULT 0,
    this_elec_chairs INT NOT NULL DEFAULT 0,
    UNIQUE (party_id, region_code)
);

CREATE INDEX IF NOT EXISTS idx_locations_party_id ON locations(party_id);
CREATE INDEX IF NOT EXISTS idx_locations_region_code ON locations(region_code);
`
