package lib

import (
	"github.com/shopspring/decimal"

	"github.com/slok/ollama-total/internal/model"
)

// ErrCommandFailed is matched by the errors returned when the ollama listing
// exits with a non-zero status.
var ErrCommandFailed = model.ErrCommandFailed

// ModelSize is the storage used by a single installed model.
type ModelSize struct {
	// Name is the model name as listed (e.g. "llama3.2:latest").
	Name string
	// Size is the size as listed (e.g. "2.0 GB").
	Size string
	// Bytes is the exact size in bytes.
	Bytes decimal.Decimal
}

// Report is the breakdown of the storage used by the installed models.
type Report struct {
	// Models are the listed models that had a size, in listing order.
	Models []ModelSize
	// Skipped is the number of listing rows without a recognizable size.
	Skipped int
	// TotalBytes is the exact sum in bytes.
	TotalBytes decimal.Decimal
	// Total is TotalBytes formatted in the largest unit (e.g. "3.5 GB").
	Total string
}

func fromModelReport(r *model.Report, total string) *Report {
	models := make([]ModelSize, 0, len(r.Models))
	for _, m := range r.Models {
		models = append(models, ModelSize{
			Name:  m.Name,
			Size:  m.Size.String(),
			Bytes: m.Size.Bytes(),
		})
	}

	return &Report{
		Models:     models,
		Skipped:    r.Skipped,
		TotalBytes: r.TotalBytes,
		Total:      total,
	}
}
