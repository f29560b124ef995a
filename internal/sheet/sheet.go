package sheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"github.com/slok/sheetgantt/internal/conventions"
	"github.com/slok/sheetgantt/internal/log"
	"github.com/slok/sheetgantt/internal/model"
)

const (
	// DefaultSheetName is the default report sheet name.
	DefaultSheetName = "Project progress"
	// ColumnPadding is the extra width added to the widest cell of a column.
	ColumnPadding = 4
	// chartColumn is the column where the chart image is anchored.
	chartColumn = 4 // D.
	// chartRowGap is the number of rows between the header row and the chart
	// anchor, not counting task rows.
	chartRowGap = 3
)

// Headers are the report table column titles.
var Headers = []string{"Task", "Start date", "End date", "Duration (days)", "Completion"}

// WorkbookConfig is the configuration for the report workbook.
type WorkbookConfig struct {
	SheetName string
	Logger    log.Logger
}

func (c *WorkbookConfig) defaults() error {
	if c.SheetName == "" {
		c.SheetName = DefaultSheetName
	}

	if utf8.RuneCountInString(c.SheetName) > excelize.MaxSheetNameLength {
		return fmt.Errorf("sheet name can't be longer than %d characters", excelize.MaxSheetNameLength)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "sheet.Workbook"})

	return nil
}

// Workbook is a single sheet report spreadsheet.
type Workbook struct {
	f      *excelize.File
	sheet  string
	tasks  int
	logger log.Logger
}

// NewWorkbook creates a new empty report workbook.
func NewWorkbook(cfg WorkbookConfig) (*Workbook, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), cfg.SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("could not set sheet name: %w", err)
	}

	return &Workbook{
		f:      f,
		sheet:  cfg.SheetName,
		logger: cfg.Logger,
	}, nil
}

// Rows returns the table rows (header included) as they are written on the sheet.
func Rows(tasks []model.Task) [][]any {
	rows := make([][]any, 0, len(tasks)+1)

	header := make([]any, 0, len(Headers))
	for _, h := range Headers {
		header = append(header, h)
	}
	rows = append(rows, header)

	for _, t := range tasks {
		rows = append(rows, []any{
			t.Name,
			model.FormatDate(t.Start),
			model.FormatDate(t.End),
			t.DurationDays(),
			t.CompletionLabel(),
		})
	}

	return rows
}

// ColumnWidths returns the width of each column, the display width of the widest
// cell plus padding, capped to the spreadsheet maximum. Wide runes (e.g CJK)
// count double.
func ColumnWidths(rows [][]any) []float64 {
	var widths []float64
	for _, row := range rows {
		for i, cell := range row {
			for len(widths) <= i {
				widths = append(widths, 0)
			}

			w := float64(runewidth.StringWidth(cellString(cell)) + ColumnPadding)
			w = min(w, float64(excelize.MaxColumnWidth))
			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

func cellString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

// WriteTasks writes the header and one row per task, then fits the column widths.
func (w *Workbook) WriteTasks(tasks []model.Task) error {
	rows := Rows(tasks)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("invalid row %d: %w", i+1, err)
		}
		if err := w.f.SetSheetRow(w.sheet, cell, &row); err != nil {
			return fmt.Errorf("could not write row %d: %w", i+1, err)
		}
	}

	if err := w.styleHeader(); err != nil {
		return err
	}

	for i, width := range ColumnWidths(rows) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("invalid column %d: %w", i+1, err)
		}
		if err := w.f.SetColWidth(w.sheet, col, col, width); err != nil {
			return fmt.Errorf("could not set column %s width: %w", col, err)
		}
	}

	w.tasks = len(tasks)
	w.logger.Debugf("Wrote %d task rows", len(tasks))

	return nil
}

func (w *Workbook) styleHeader() error {
	style, err := w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}

	lastCol, err := excelize.CoordinatesToCellName(len(Headers), 1)
	if err != nil {
		return fmt.Errorf("invalid header range: %w", err)
	}

	if err := w.f.SetCellStyle(w.sheet, "A1", lastCol, style); err != nil {
		return fmt.Errorf("could not set header style: %w", err)
	}

	// Keep the header visible while scrolling.
	err = w.f.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return fmt.Errorf("could not freeze header: %w", err)
	}

	return nil
}

// ChartCell returns the cell where the chart is anchored for a number of tasks.
func ChartCell(tasks int) string {
	cell, _ := excelize.CoordinatesToCellName(chartColumn, tasks+chartRowGap)
	return cell
}

// InsertChart embeds a PNG image below the task table.
func (w *Workbook) InsertChart(png []byte, altText string) error {
	if len(png) == 0 {
		return fmt.Errorf("chart image is empty: %w", model.ErrNotValid)
	}

	cell := ChartCell(w.tasks)
	err := w.f.AddPictureFromBytes(w.sheet, cell, &excelize.Picture{
		Extension: ".png",
		File:      png,
		Format: &excelize.GraphicOptions{
			AltText:         altText,
			PrintObject:     boolPtr(true),
			LockAspectRatio: true,
			Positioning:     "oneCell",
		},
	})
	if err != nil {
		return fmt.Errorf("could not insert chart at %s: %w", cell, err)
	}

	w.logger.Debugf("Inserted chart at %s", cell)
	return nil
}

// SetProperties sets the document properties from the report metadata.
func (w *Workbook) SetProperties(r model.Report) error {
	created := r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")
	err := w.f.SetDocProps(&excelize.DocProperties{
		Title:          r.Title,
		Subject:        r.Title,
		Identifier:     r.ID,
		Creator:        conventions.AppName,
		LastModifiedBy: conventions.AppName,
		Created:        created,
		Modified:       created,
	})
	if err != nil {
		return fmt.Errorf("could not set document properties: %w", err)
	}

	return nil
}

// WriteTo writes the workbook in xlsx format.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	n, err := w.f.WriteTo(out)
	if err != nil {
		return n, fmt.Errorf("could not write workbook: %w", err)
	}

	return n, nil
}

// SaveAs saves the workbook on a file, creating the parent directories if required.
func (w *Workbook) SaveAs(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output directory: %w", err)
		}
	}

	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook: %w", err)
	}

	w.logger.Debugf("Workbook saved at %s", path)
	return nil
}

// Close releases the workbook resources.
func (w *Workbook) Close() error {
	return w.f.Close()
}

func boolPtr(b bool) *bool { return &b }
