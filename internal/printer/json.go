package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/slok/sheetgantt/internal/model"
)

// JSONPrinter prints report information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// taskItem represents a task in the list output.
type taskItem struct {
	Name         string `json:"name"`
	Start        string `json:"start"`
	End          string `json:"end"`
	DurationDays int    `json:"duration_days"`
	Completion   string `json:"completion"`
}

// reportOutput represents the generated report output.
type reportOutput struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Sheet     string    `json:"sheet"`
	Path      string    `json:"path"`
	Tasks     int       `json:"tasks"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintTasks prints tasks in JSON format.
func (j *JSONPrinter) PrintTasks(tasks []model.Task) error {
	items := make([]taskItem, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{
			Name:         t.Name,
			Start:        model.FormatDate(t.Start),
			End:          model.FormatDate(t.End),
			DurationDays: t.DurationDays(),
			Completion:   t.CompletionLabel(),
		}
	}

	return j.encode(items)
}

// PrintReport prints the generated report summary in JSON format.
func (j *JSONPrinter) PrintReport(info ReportInfo) error {
	return j.encode(reportOutput{
		ID:        info.Report.ID,
		Title:     info.Report.Title,
		Sheet:     info.Report.SheetName,
		Path:      info.Path,
		Tasks:     info.Tasks,
		SizeBytes: info.SizeBytes,
		CreatedAt: info.Report.CreatedAt.UTC(),
	})
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
