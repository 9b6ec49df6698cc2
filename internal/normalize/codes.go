package normalize

import "strings"

// NormalizeCode trims whitespace and uppercases a CPT or ICD-10 code.
// No format validation is performed; any string is accepted as a code.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeCodes applies NormalizeCode to each element, dropping entries
// that are empty after trimming.
func NormalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if n := NormalizeCode(c); n != "" {
			out = append(out, n)
		}
	}
	return out
}
