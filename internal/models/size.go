package models

import (
	"fmt"
	"strconv"
)

const notApplicable = "N/A"

// FormatSizeTB renders a capacity given in GB as terabytes with one decimal.
// A nil or negative size renders as "N/A".
func FormatSizeTB(gb *float64) string {
	if gb == nil || *gb < 0 {
		return notApplicable
	}
	if *gb == 0 {
		return "0 TB"
	}
	return fmt.Sprintf("%.1f TB", *gb/1000)
}

// SizeTB is FormatSizeTB for a size that is always known.
func SizeTB(gb float64) string {
	return FormatSizeTB(&gb)
}

// FormatNumber renders a quantity without trailing zeros: 16, 5600, 512.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
