package printer

// output is the structured (JSON/YAML) representation of a result.
type output struct {
	Total      string        `json:"total,omitempty" yaml:"total,omitempty"`
	TotalBytes string        `json:"total_bytes,omitempty" yaml:"total_bytes,omitempty"`
	Models     []modelOutput `json:"models,omitempty" yaml:"models,omitempty"`
	Skipped    int           `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
}

type modelOutput struct {
	Name  string `json:"name" yaml:"name"`
	Size  string `json:"size" yaml:"size"`
	Bytes string `json:"bytes" yaml:"bytes"`
}

// newOutput maps a result. Exact byte quantities are strings so they don't
// lose precision on decoders that use floats.
func newOutput(res Result, withModels bool) output {
	if res.Err || res.Report == nil {
		return output{Error: res.Total}
	}

	out := output{
		Total:      res.Total,
		TotalBytes: res.Report.TotalBytes.String(),
		Skipped:    res.Report.Skipped,
	}

	if withModels {
		out.Models = make([]modelOutput, 0, len(res.Report.Models))
		for _, m := range res.Report.Models {
			out.Models = append(out.Models, modelOutput{
				Name:  m.Name,
				Size:  m.Size.String(),
				Bytes: m.Size.Bytes().String(),
			})
		}
	}

	return out
}
