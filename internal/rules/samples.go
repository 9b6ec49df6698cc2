package rules

import (
	"time"

	"github.com/rxglitch/claimcheck/internal/normalize"
)

// Sample is one canned claim from the built-in demo library.
type Sample struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
	CPT    string `json:"cpt"`
	DX     string `json:"dx"`
	Payer  string `json:"payer"`
	DOB    string `json:"dob"`
	DOS    string `json:"dos"`
	Sex    string `json:"sex"`
}

// Samples returns the three built-in claims with intentionally different
// risk profiles. DOS is set to today so the future-DOS rule stays quiet.
func Samples(now time.Time) []Sample {
	today := now.Format(normalize.DateLayout)
	return []Sample{
		{
			Key:    "clean",
			Label:  "Clean Claim",
			Reason: "Annual Checkup",
			CPT:    "80050", // CMP panel, typically preventive
			DX:     "Z00.00",
			Payer:  "Aetna – PPO (NJ)",
			DOB:    "1985-06-10",
			DOS:    today,
			Sex:    "Female",
		},
		{
			Key:    "borderline",
			Label:  "Borderline Claim",
			Reason: "Headache",
			CPT:    "99213", // office/outpatient established
			DX:     "R51.9",
			Payer:  "Horizon (NJ)",
			DOB:    "1990-01-01",
			DOS:    today,
			Sex:    "Male",
		},
		{
			Key:    "broken",
			Label:  "Broken Claim",
			Reason: "Chest Pain",
			CPT:    "93000", // EKG
			DX:     "H52.13", // myopia, deliberately incompatible
			Payer:  "United (NJ)",
			DOB:    "1974-02-12",
			DOS:    today,
			Sex:    "Male",
		},
	}
}

// SampleByKey returns the sample with the given key, or ok=false.
func SampleByKey(now time.Time, key string) (Sample, bool) {
	for _, s := range Samples(now) {
		if s.Key == key {
			return s, true
		}
	}
	return Sample{}, false
}
