package share

import (
	"github.com/dustin/go-humanize"
)

// Size formats a byte count for log lines ("1.2 kB").
func Size(n int) string {
	return humanize.Bytes(uint64(n))
}

// Count formats an integer with thousands separators for log lines.
// Never use it for report cells.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
