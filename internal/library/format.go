package library

import (
	"math"
	"strconv"
	"time"
)

var sizeUnits = [...]string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with base-1024 units, rounded to at
// most two decimals: 0 -> "0 Bytes", 1536 -> "1.5 KB", 1048576 -> "1 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

// formatModified renders a modification timestamp as a short date label,
// e.g. "Mar 20, 2019".
func formatModified(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
