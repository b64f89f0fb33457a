package size

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/slok/ollama-total/internal/model"
)

// sizeRegexp matches size tokens like "2.7 GB", "17 GB" or "800 MB".
var sizeRegexp = regexp.MustCompile(`(\d+(\.\d+)?)\s(MB|GB|TB)`)

// ParseLine returns the first size token found in a line. Lines without a
// size token return false.
func ParseLine(line string) (model.Size, bool) {
	m := sizeRegexp.FindStringSubmatch(line)
	if m == nil {
		return model.Size{}, false
	}

	amount, err := decimal.NewFromString(m[1])
	if err != nil {
		return model.Size{}, false
	}

	return model.Size{Amount: amount, Unit: model.Unit(m[3])}, true
}

// ParseListing scans the model listing output. The first line is the table
// header and is ignored.
func ParseListing(output string) (*model.Report, error) {
	if !utf8.ValidString(output) {
		return nil, fmt.Errorf("listing output is not valid UTF-8")
	}

	report := &model.Report{TotalBytes: decimal.Zero}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	for _, line := range lines[1:] {
		s, ok := ParseLine(line)
		if !ok {
			report.Skipped++
			continue
		}

		report.Add(model.ModelSize{
			Name: modelName(line),
			Size: s,
		})
	}

	return report, nil
}

func modelName(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
