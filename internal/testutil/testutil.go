package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SetupTestDB opens a fresh sqlite-backed store with the dashboard schema.
// The file lives under t.TempDir() so every test gets its own database and
// the pool can hand out more than one connection safely.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "election_test.db")
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// schema mirrors internal/db but in sqlite DDL; the production schema uses
// SERIAL, which sqlite does not accept.
const schema = `
CREATE TABLE parties (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    arabic_name TEXT NOT NULL,
    abbr TEXT NOT NULL UNIQUE,
    color TEXT NOT NULL,
    number_of_voting INT NOT NULL DEFAULT 0,
    last_elec_chairs INT NOT NULL DEFAULT 0,
    this_elec_chairs INT NOT NULL DEFAULT 0
);

CREATE TABLE locations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    party_id INT NOT NULL REFERENCES parties(id) ON DELETE CASCADE,
    region_code TEXT NOT NULL,
    number_of_voting INT NOT NULL DEFAULT 0,
    this_elec_chairs INT NOT NULL DEFAULT 0,
    UNIQUE (party_id, region_code)
);
`

// CreateTestParty inserts a party and returns its ID
func CreateTestParty(t *testing.T, db *sqlx.DB, arabicName, abbr string, numberOfVoting int) int {
	t.Helper()

	var id int
	err := db.QueryRow(`
		INSERT INTO parties (arabic_name, abbr, color, number_of_voting, last_elec_chairs, this_elec_chairs)
		VALUES ($1, $2, '#000000', $3, 0, 0)
		RETURNING id
	`, arabicName, abbr, numberOfVoting).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test party: %v", err)
	}

	return id
}

// CreateTestLocation inserts a location row for a (party, region) pair
func CreateTestLocation(t *testing.T, db *sqlx.DB, partyID int, regionCode string, numberOfVoting, thisElecChairs int) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO locations (party_id, region_code, number_of_voting, this_elec_chairs)
		VALUES ($1, $2, $3, $4)
	`, partyID, regionCode, numberOfVoting, thisElecChairs)
	if err != nil {
		t.Fatalf("Failed to create test location: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
