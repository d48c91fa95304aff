package numeric

import (
	"github.com/halden-labs/prepkit-cli/internal/core/domain"
)

// ToInt attempts integer conversion of each element, collecting the
// successes in input order. Elements that do not convert (non-numeric
// text, missing markers) are dropped rather than failing the batch; the
// second return reports how many were rejected, for diagnostics.
//
// The lossy filtering is intentional and part of the contract: ToInt is
// a best-effort parse, not a validator.
func ToInt(values []domain.Value) ([]int64, int) {
	result := make([]int64, 0, len(values))
	rejected := 0

	for _, v := range values {
		n, ok := v.Int()
		if !ok {
			rejected++
			continue
		}
		result = append(result, n)
	}

	return result, rejected
}
