package printer

import "github.com/dustin/go-humanize"

// FormatBytes returns a human-readable byte size string.
// Examples: "0 B", "512 B", "1.5 kB", "700 MB".
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}

	return humanize.Bytes(uint64(bytes))
}
