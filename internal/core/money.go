// Package core provides the expense domain types and the pure conversions
// applied to every record before it reaches a report.
//
// This file contains the amount handling: raw amounts are kept as decimals
// and only re-punctuated for display, never rounded.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountText returns the canonical text of a raw amount, the shortest decimal
// representation without trailing zeros.
//
// Examples:
//
//	AmountText(decimal.RequireFromString("8.50")) -> "8.5"
//	AmountText(decimal.RequireFromString("12"))   -> "12"
func AmountText(d decimal.Decimal) string {
	return d.String()
}

// FormatAmount re-punctuates a decimal amount for display.
//
// The text is split on the decimal point and only the first two components
// are considered. The fractional part is cut to two digits and padded with
// zeros when shorter. Integer and fractional parts are joined with a comma.
// This is a textual operation: no rounding happens.
//
// Examples:
//
//	FormatAmount("12.3")   -> "12,30"
//	FormatAmount("12.34")  -> "12,34"
//	FormatAmount("12.345") -> "12,34"
//	FormatAmount("12")     -> "12,00"
func FormatAmount(s string) string {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)
	intPart := parts[0]
	if intPart == "" {
		intPart = "0"
	}
	fracPart := ""
	if len(parts) > 1 {
		fracPart = parts[1]
	}
	if len(fracPart) > 2 {
		fracPart = fracPart[:2]
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}
	return intPart + "," + fracPart
}
