package printer

import "github.com/slok/ollama-total/internal/model"

// Result is the outcome of a summarizer run ready to be printed.
type Result struct {
	// Total is the formatted total, or the error message when Err is set.
	Total string
	// Report is the scan report, nil when the run failed.
	Report *model.Report
	// Err is true when Total holds an error message.
	Err bool
}

// Printer knows how to print the model storage information in different formats.
type Printer interface {
	PrintTotal(res Result) error
	PrintModels(res Result) error
}
