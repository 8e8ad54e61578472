package utils

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with one decimal in binary units,
// e.g. 1536 -> "1.5 KB". Anything from 1024 GB up is shown in TB.
func FormatFileSize(size int64) string {
	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024.0
	}

	return fmt.Sprintf("%.1f TB", value)
}
