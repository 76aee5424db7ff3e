// Package expiry handles the "MM/YYYY" card expiry format used on the wire
// between the gateway and the acquiring bank.
package expiry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format renders an expiry month and year as "MM/YYYY".
func Format(month, year int) string {
	return fmt.Sprintf("%02d/%d", month, year)
}

// Parse splits an "MM/YYYY" string into its month and year.
func Parse(s string) (month, year int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expiry must be MM/YYYY")
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("expiry month must be 01..12")
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return 0, 0, fmt.Errorf("expiry year must be four digits")
	}
	return month, year, nil
}

// IsExpired reports whether the expiry month has already passed at time 'at'.
// A card expires at the end of its expiry month.
func IsExpired(month, year int, at time.Time) bool {
	if year != at.Year() {
		return year < at.Year()
	}
	return month < int(at.Month())
}
