package csvread

import (
	"fmt"
	"strings"

	"github.com/rxglitch/claimcheck/internal/model"
)

// ValidateHeader checks that the claims header carries every required
// column. Extra columns are tolerated; missing optional columns simply
// leave their fields empty.
func ValidateHeader(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}

	var missing []string
	for _, col := range model.RequiredClaimColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
