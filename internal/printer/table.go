package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/sheetgantt/internal/model"
)

// TablePrinter prints report information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintTasks prints tasks in a table format.
func (t *TablePrinter) PrintTasks(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "TASK\tSTART\tEND\tDAYS\tCOMPLETION")

	// Print rows.
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			task.Name,
			model.FormatDate(task.Start),
			model.FormatDate(task.End),
			task.DurationDays(),
			task.CompletionLabel(),
		)
	}

	return nil
}

// PrintReport prints the generated report summary.
func (t *TablePrinter) PrintReport(info ReportInfo) error {
	fmt.Fprintf(t.writer, "Report written to %s (%s, %d tasks)\n", info.Path, FormatBytes(info.SizeBytes), info.Tasks)
	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
