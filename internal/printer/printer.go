package printer

import "github.com/slok/sheetgantt/internal/model"

// ReportInfo is the information of a generated report file.
type ReportInfo struct {
	Report    model.Report
	Path      string
	Tasks     int
	SizeBytes int64
}

// Printer knows how to print report information in different formats.
type Printer interface {
	PrintTasks(tasks []model.Task) error
	PrintReport(info ReportInfo) error
	PrintMessage(msg string) error
}
