package seed

import (
	"fmt"
	"log"

	"election-dashboard-go/pkg/model"

	"github.com/jmoiron/sqlx"
)

// PartySeed is one fixed party definition
type PartySeed struct {
	ArabicName string
	Abbr       string
	Color      string
}

// Parties is the fixed party catalog. Abbr is the natural key the seeder
// upserts on; all counters start at zero.
var Parties = []PartySeed{
	{ArabicName: "ائتلاف الإعمار والتنمية", Abbr: "EDC", Color: "#006d65"},
	{ArabicName: "دولة القانون", Abbr: "SOL", Color: "#677400"},
	{ArabicName: "صادقون", Abbr: "SDQ", Color: "#004a46"},
	{ArabicName: "منظمة بدر", Abbr: "BADR", Color: "#356e02"},
	{ArabicName: "أشير بالعراق", Abbr: "BSHR", Color: "#a97617"},
	{ArabicName: "الأساس العراقي", Abbr: "ASI", Color: "#0f4463"},
	{ArabicName: "الحزب الديمقراطي الكردستاني", Abbr: "PDK", Color: "#ffc22a"},
	{ArabicName: "الاتحاد الوطني الكردستاني", Abbr: "PUK", Color: "#007e13"},
	{ArabicName: "التحالف الوطني للتصميم", Abbr: "NDC", Color: "#892f2f"},
	{ArabicName: "حزب تقدم", Abbr: "TQD", Color: "#f6851d"},
	{ArabicName: "تحالف عزم", Abbr: "AZM", Color: "#a1b787"},
	{ArabicName: "تحالف السيادة/تشريع", Abbr: "SIA", Color: "#7c5a1a"},
	{ArabicName: "ائتلاف قوى الدولة الوطنية", Abbr: "NSFC", Color: "#085798"},
	{ArabicName: "ائتلاف خدمات", Abbr: "SER", Color: "#0e4a78"},
}

// Run seeds the store: one party row per catalog entry and one location
// row per (party, region) pair, every counter reset to zero. Idempotent on
// the natural keys, so a failed run is recovered by running again; the
// first failed upsert aborts the run.
func Run(db *sqlx.DB) error {
	for _, p := range Parties {
		var partyID int
		err := db.QueryRow(`
            INSERT INTO parties (arabic_name, abbr, color, number_of_voting, last_elec_chairs, this_elec_chairs)
            VALUES ($1, $2, $3, 0, 0, 0)
            ON CONFLICT (abbr)
            DO UPDATE SET arabic_name = EXCLUDED.arabic_name,
                          color = EXCLUDED.color,
                          number_of_voting = 0,
                          last_elec_chairs = 0,
                          this_elec_chairs = 0
            RETURNING id
        `, p.ArabicName, p.Abbr, p.Color).Scan(&partyID)
		if err != nil {
			return fmt.Errorf("seed party %s: %w", p.Abbr, err)
		}

		for _, r := range model.Regions {
			_, err := db.Exec(`
                INSERT INTO locations (party_id, region_code, number_of_voting, this_elec_chairs)
                VALUES ($1, $2, 0, 0)
                ON CONFLICT (party_id, region_code)
                DO UPDATE SET number_of_voting = 0, this_elec_chairs = 0
            `, partyID, r.Code)
			if err != nil {
				return fmt.Errorf("seed location %s/%s: %w", p.Abbr, r.Code, err)
			}
		}

		log.Printf("Seeded %s with %d locations", p.Abbr, len(model.Regions))
	}

	return nil
}
