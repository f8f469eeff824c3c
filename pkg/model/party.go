package model

// Party represents a political party with its aggregate counters
type Party struct {
	ID             int    `json:"id" db:"id"`
	ArabicName     string `json:"arabicName" db:"arabic_name"`
	Abbr           string `json:"abbr" db:"abbr"`
	Color          string `json:"color" db:"color"`
	NumberOfVoting int    `json:"numberOfVoting" db:"number_of_voting"`
	LastElecChairs int    `json:"lastElecChairs" db:"last_elec_chairs"`
	ThisElecChairs int    `json:"thisElecChairs" db:"this_elec_chairs"`
}

// Location holds one party's counters within one region
type Location struct {
	ID             int    `json:"id" db:"id"`
	PartyID        int    `json:"partyId" db:"party_id"`
	RegionCode     string `json:"regionCode" db:"region_code"`
	NumberOfVoting int    `json:"numberOfVoting" db:"number_of_voting"`
	ThisElecChairs int    `json:"thisElecChairs" db:"this_elec_chairs"`
}

// PartyWithLocations is a party joined with its full regional breakdown
type PartyWithLocations struct {
	Party
	Locations []Location `json:"locations"`
}

// TopParty projects the fields the leaderboard cards display
type TopParty struct {
	ID                    int    `json:"id" db:"id"`
	ArabicName            string `json:"arabicName" db:"arabic_name"`
	Abbr                  string `json:"abbr" db:"abbr"`
	Color                 string `json:"color" db:"color"`
	NumberOfVoting        int    `json:"numberOfVoting" db:"number_of_voting"`
	LastElecChairs        int    `json:"lastElecChairs" db:"last_elec_chairs"`
	ThisElecChairs        int    `json:"thisElecChairs" db:"this_elec_chairs"`
	NumberOfVotingDisplay string `json:"numberOfVotingDisplay" db:"-"`
}

// RegionStanding is one party's row in a per-region leaderboard. The vote
// count is the region's, not the party aggregate.
type RegionStanding struct {
	ID                    int    `json:"id" db:"id"`
	ArabicName            string `json:"arabicName" db:"arabic_name"`
	Abbr                  string `json:"abbr" db:"abbr"`
	Color                 string `json:"color" db:"color"`
	RegionCode            string `json:"regionCode" db:"region_code"`
	NumberOfVoting        int    `json:"numberOfVoting" db:"region_votes"`
	NumberOfVotingDisplay string `json:"numberOfVotingDisplay" db:"-"`
}

// RegionCounters is the outcome of a region lookup. Exists distinguishes a
// pair that has never been written from a record holding zeros.
type RegionCounters struct {
	NumberOfVoting int  `json:"numberOfVoting"`
	ThisElecChairs int  `json:"thisElecChairs"`
	Exists         bool `json:"exists"`
}

// PartyTotalsUpdateRequest carries an aggregate edit. Counters arrive as
// text because editor forms submit them with digit-group separators.
type PartyTotalsUpdateRequest struct {
	NumberOfVoting string `json:"numberOfVoting"`
	ThisElecChairs string `json:"thisElecChairs"`
}

// RegionUpdateRequest carries a per-region edit
type RegionUpdateRequest struct {
	NumberOfVoting string `json:"numberOfVoting"`
	ThisElecChairs string `json:"thisElecChairs"`
}
