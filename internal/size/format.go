package size

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/slok/ollama-total/internal/model"
)

// Format returns the total bytes in the largest unit the total reaches, with one
// fractional digit rounded half to even. Totals below one megabyte are returned
// as raw bytes.
// Examples: "0 B", "512 B", "500.0 MB", "3.5 GB", "1.0 TB".
func Format(totalBytes decimal.Decimal) string {
	for _, u := range model.Units {
		if totalBytes.GreaterThanOrEqual(decimal.NewFromInt(int64(u.Bytes()))) {
			v := totalBytes.Shift(-u.Exponent()).RoundBank(1)
			return fmt.Sprintf("%s %s", v.StringFixed(1), u)
		}
	}

	return fmt.Sprintf("%s B", totalBytes.String())
}
