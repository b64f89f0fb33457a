package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// TablePrinter prints the model storage information as plain text.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintTotal prints only the total (or the error message).
func (t *TablePrinter) PrintTotal(res Result) error {
	_, err := fmt.Fprintln(t.writer, res.Total)
	return err
}

// PrintModels prints every model size in a table format followed by the total.
func (t *TablePrinter) PrintModels(res Result) error {
	if res.Err || res.Report == nil {
		return t.PrintTotal(res)
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "NAME\tSIZE\tBYTES")

	// Print rows.
	for _, m := range res.Report.Models {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, m.Size, humanize.BigComma(m.Size.Bytes().BigInt()))
	}

	fmt.Fprintf(tw, "TOTAL\t%s\t%s\n", res.Total, humanize.BigComma(res.Report.TotalBytes.BigInt()))

	return nil
}
