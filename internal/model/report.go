package model

import "github.com/shopspring/decimal"

// Report is the result of scanning a model listing.
type Report struct {
	// Models are the rows that had a size, in listing order.
	Models []ModelSize
	// Skipped is the number of rows without a recognizable size.
	Skipped int
	// TotalBytes is the exact sum of all the model sizes.
	TotalBytes decimal.Decimal
}

// Add accounts a model into the report.
func (r *Report) Add(m ModelSize) {
	r.Models = append(r.Models, m)
	r.TotalBytes = r.TotalBytes.Add(m.Size.Bytes())
}
