package printer

import (
	"encoding/json"
	"io"
)

// JSONPrinter prints the model storage information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

func (j *JSONPrinter) PrintTotal(res Result) error {
	return j.encode(newOutput(res, false))
}

func (j *JSONPrinter) PrintModels(res Result) error {
	return j.encode(newOutput(res, true))
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
