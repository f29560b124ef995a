package conventions

import (
	"path/filepath"
	"strings"
)

const (
	// AppName is the application name, also used as the document creator.
	AppName = "sheetgantt"

	// ReportFileExt is the report spreadsheet file extension.
	ReportFileExt = ".xlsx"
	// DefaultReportFile is the report filename used when none is requested.
	DefaultReportFile = "project-progress-gantt" + ReportFileExt
)

// IsReportFile returns true if the path has the report spreadsheet extension.
func IsReportFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ReportFileExt)
}
