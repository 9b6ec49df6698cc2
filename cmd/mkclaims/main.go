// mkclaims generates a synthetic claims CSV for demos and tests, with a
// controllable mix of clean and flagged rows.
// Usage: go run ./cmd/mkclaims --out testdata/example_claims.csv --rows 20 --flagged 0.4
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/rxglitch/claimcheck/internal/model"
)

// template rows: one clean profile plus one per denial predicate.
type template struct {
	name string
	row  func(i int, dos string) model.RawClaimRow
}

func main() {
	out := flag.String("out", "testdata/example_claims.csv", "output CSV path")
	rows := flag.Int("rows", 20, "number of claims to generate")
	flagged := flag.Float64("flagged", 0.4, "fraction of claims with induced issues")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	dos := time.Now().AddDate(0, 0, -14).Format("2006-01-02")

	clean := func(i int, dos string) model.RawClaimRow {
		return model.RawClaimRow{
			ClaimID: claimID(i), PatientID: patientID(i), PayerID: "PAYER-HZN-001",
			CPTCode: "99213", ICD10Code: "R51.9", Units: "1", ChargeAmount: "125.00",
			AuthNumber: "AUTH-" + strconv.Itoa(1000+i), RenderingNPI: "1932145678",
			ReferringProviderID: "REF-22", DOS: dos, Notes: "",
		}
	}

	broken := []template{
		{"missing-auth", func(i int, dos string) model.RawClaimRow {
			r := clean(i, dos)
			r.AuthNumber = ""
			r.Notes = "auth pending"
			return r
		}},
		{"bad-combo", func(i int, dos string) model.RawClaimRow {
			r := clean(i, dos)
			r.CPTCode = "93000"
			r.ICD10Code = "H52.13"
			r.Notes = "dx mismatch"
			return r
		}},
		{"high-units", func(i int, dos string) model.RawClaimRow {
			r := clean(i, dos)
			r.Units = "4"
			return r
		}},
		{"high-charge", func(i int, dos string) model.RawClaimRow {
			r := clean(i, dos)
			r.ChargeAmount = "850.00"
			return r
		}},
		{"missing-npi", func(i int, dos string) model.RawClaimRow {
			r := clean(i, dos)
			r.RenderingNPI = ""
			return r
		}},
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	w := csv.NewWriter(f)
	if err := w.Write(model.ClaimColumns); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}

	var dup *model.RawClaimRow
	for i := 1; i <= *rows; i++ {
		var row model.RawClaimRow
		if rng.Float64() < *flagged {
			t := broken[rng.Intn(len(broken))]
			row = t.row(i, dos)
		} else {
			row = clean(i, dos)
		}

		// one duplicate pair per file
		if dup == nil && i == *rows/2 && i > 1 {
			d := row
			dup = &d
		} else if dup != nil {
			row.PatientID = dup.PatientID
			row.CPTCode = dup.CPTCode
			row.ICD10Code = dup.ICD10Code
			row.DOS = dup.DOS
			row.ClaimID = claimID(i)
			dup = nil
		}

		if err := w.Write(rowValues(&row)); err != nil {
			fmt.Fprintf(os.Stderr, "write row %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d claims to %s\n", *rows, *out)
}

func claimID(i int) string   { return fmt.Sprintf("CLM-%04d", i) }
func patientID(i int) string { return fmt.Sprintf("PT-%03d", i) }

func rowValues(r *model.RawClaimRow) []string {
	vals := make([]string, len(model.ClaimColumns))
	for i, col := range model.ClaimColumns {
		vals[i] = *r.FieldByColumn(col)
	}
	return vals
}
