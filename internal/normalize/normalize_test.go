package normalize

import (
	"testing"
	"time"

	"github.com/rxglitch/claimcheck/internal/model"
)

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  z00.00 ", "Z00.00"},
		{"80050", "80050"},
		{"", ""},
		{"  ", ""},
		{"h52.13", "H52.13"},
	}
	for _, c := range cases {
		if got := NormalizeCode(c.in); got != c.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if d := ParseDate("2026-08-01"); d == nil || d.Format(DateLayout) != "2026-08-01" {
		t.Fatalf("ParseDate valid: got %v", d)
	}
	for _, bad := range []string{"", "08/01/2026", "not-a-date", "2026-13-01"} {
		if d := ParseDate(bad); d != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", bad, d)
		}
	}
}

func TestParseMoneyCents(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"125.00", 12500, true},
		{"$450.50", 45050, true},
		{"", 0, true},
		{"abc", 0, false},
		{"-5", 0, false},
		{"0.335", 34, true}, // rounds, not truncates
	}
	for _, c := range cases {
		cents, ok := ParseMoneyCents(c.in)
		if cents != c.cents || ok != c.ok {
			t.Errorf("ParseMoneyCents(%q) = (%d, %v), want (%d, %v)", c.in, cents, ok, c.cents, c.ok)
		}
	}
}

func TestParseUnits(t *testing.T) {
	cases := []struct {
		in    string
		units int
		ok    bool
	}{
		{"2", 2, true},
		{"2.0", 2, true},
		{"", 0, true},
		{"x", 0, false},
		{"-1", 0, false},
	}
	for _, c := range cases {
		units, ok := ParseUnits(c.in)
		if units != c.units || ok != c.ok {
			t.Errorf("ParseUnits(%q) = (%d, %v), want (%d, %v)", c.in, units, ok, c.units, c.ok)
		}
	}
}

func TestFromRow_FieldFailuresAreLocal(t *testing.T) {
	row := &model.RawClaimRow{
		ClaimID:      "CLM-0001",
		CPTCode:      " 99213 ",
		ICD10Code:    "r51.9",
		Units:        "many",
		ChargeAmount: "oops",
		DOS:          "01/02/2026",
	}
	c := FromRow(row)

	if c.CPTCode != "99213" || c.PrimaryDiagnosis() != "R51.9" {
		t.Fatalf("codes not normalized: %q %q", c.CPTCode, c.PrimaryDiagnosis())
	}
	if c.Units != 0 || c.ChargeAmountCents != 0 {
		t.Errorf("bad numerics should fall back to zero, got units=%d cents=%d", c.Units, c.ChargeAmountCents)
	}
	if c.DateOfService != nil {
		t.Errorf("bad DOS should stay nil, got %v", c.DateOfService)
	}
	if len(c.Warnings) != 3 {
		t.Errorf("expected 3 field warnings, got %d: %+v", len(c.Warnings), c.Warnings)
	}
}

func TestDuplicateKey(t *testing.T) {
	a := DuplicateKey("PT-1", "99213", "R51.9", "2026-08-01")
	b := DuplicateKey("PT-1", "99213", "R51.9", "2026-08-01")
	if a != b {
		t.Fatal("identical fields must produce identical keys")
	}
	// null separators keep field boundaries unambiguous
	c := DuplicateKey("PT-199", "213", "R51.9", "2026-08-01")
	if a == c {
		t.Fatal("shifted field boundaries must not collide")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "" {
		t.Errorf("FormatDate(nil) = %q", got)
	}
	d := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&d); got != "2026-08-01" {
		t.Errorf("FormatDate = %q", got)
	}
}
