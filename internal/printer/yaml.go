package printer

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLPrinter prints the model storage information in YAML format.
type YAMLPrinter struct {
	writer io.Writer
}

// NewYAMLPrinter creates a new YAML printer.
func NewYAMLPrinter(w io.Writer) *YAMLPrinter {
	return &YAMLPrinter{writer: w}
}

func (y *YAMLPrinter) PrintTotal(res Result) error {
	return y.encode(newOutput(res, false))
}

func (y *YAMLPrinter) PrintModels(res Result) error {
	return y.encode(newOutput(res, true))
}

func (y *YAMLPrinter) encode(v any) error {
	enc := yaml.NewEncoder(y.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
