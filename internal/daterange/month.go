package daterange

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Unresolved is returned by ParseMonth when the token names no month.
const Unresolved = 0

// monthNames maps English and Spanish month names and abbreviations,
// lower-cased, to month numbers.
var monthNames = map[string]int{
	"jan": 1, "january": 1, "ene": 1, "enero": 1,
	"feb": 2, "february": 2, "febrero": 2,
	"mar": 3, "march": 3, "marzo": 3,
	"apr": 4, "april": 4, "abr": 4, "abril": 4,
	"may": 5, "mayo": 5,
	"jun": 6, "june": 6, "junio": 6,
	"jul": 7, "july": 7, "julio": 7,
	"aug": 8, "august": 8, "ago": 8, "agosto": 8,
	"sep": 9, "september": 9, "septiembre": 9,
	"oct": 10, "october": 10, "octubre": 10,
	"nov": 11, "november": 11, "noviembre": 11,
	"dec": 12, "december": 12, "dic": 12, "diciembre": 12,
}

// ParseMonth turns a user token into a month number in 1..12.
//
// Numeric tokens are range checked; an out of range number falls back to the
// month of now, as do integers too large to parse. Other tokens are looked up, case-insensitively, among the
// English and Spanish month names and their three-letter abbreviations.
// Anything else yields Unresolved.
func ParseMonth(token string, now time.Time) int {
	token = strings.TrimSpace(token)
	n, err := strconv.Atoi(token)
	if err == nil {
		if n < 1 || n > 12 {
			return int(now.Month())
		}
		return n
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return int(now.Month())
	}
	if m, ok := monthNames[strings.ToLower(token)]; ok {
		return m
	}
	return Unresolved
}
