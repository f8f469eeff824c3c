package model

import "strings"

// Region represents one of the fixed Iraqi governorates
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Regions is the closed catalog of governorates tracked by the dashboard.
// Codes are stored in their canonical underscore form.
var Regions = []Region{
	{Code: "IQ_BA", Name: "البصرة"},
	{Code: "IQ_AN", Name: "الأنبار"},
	{Code: "IQ_DI", Name: "ديالى"},
	{Code: "IQ_SU", Name: "السليمانية"},
	{Code: "IQ_WA", Name: "واسط"},
	{Code: "IQ_MU", Name: "المثنى"},
	{Code: "IQ_KA", Name: "كربلاء"},
	{Code: "IQ_MA", Name: "ميسان"},
	{Code: "IQ_NA", Name: "النجف"},
	{Code: "IQ_QA", Name: "القادسية"},
	{Code: "IQ_BB", Name: "بابل"},
	{Code: "IQ_BG", Name: "بغداد"},
	{Code: "IQ_DA", Name: "دهوك"},
	{Code: "IQ_DQ", Name: "ذي قار"},
	{Code: "IQ_NI", Name: "نينوى"},
	{Code: "IQ_SD", Name: "صلاح الدين"},
	{Code: "IQ_KI", Name: "كركوك"},
	{Code: "IQ_AR", Name: "أربيل"},
}

// RegionLabel returns the display label for a region code in either
// textual convention.
func RegionLabel(code string) (string, bool) {
	canonical := CanonicalRegionCode(code)
	for _, r := range Regions {
		if r.Code == canonical {
			return r.Name, true
		}
	}
	return "", false
}

// CanonicalRegionCode maps a region code in either textual convention to
// the underscore form that is the only form ever persisted by writers.
func CanonicalRegionCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	return strings.ReplaceAll(code, "-", "_")
}

// RegionCodeVariants returns the textual forms a read path has to consider
// for a region code: the code as given, the underscore form and the hyphen
// form, deduplicated. Legacy rows written before canonicalization may sit
// under the hyphen form.
func RegionCodeVariants(code string) []string {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	canonical := strings.ReplaceAll(trimmed, "-", "_")
	hyphenated := strings.ReplaceAll(trimmed, "_", "-")

	variants := make([]string, 0, 3)
	for _, v := range []string{trimmed, canonical, hyphenated} {
		if v == "" {
			continue
		}
		seen := false
		for _, existing := range variants {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			variants = append(variants, v)
		}
	}
	return variants
}
