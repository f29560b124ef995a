package model

import "time"

// Report holds the metadata of a generated report document.
type Report struct {
	ID        string
	Title     string
	SheetName string
	CreatedAt time.Time
}
