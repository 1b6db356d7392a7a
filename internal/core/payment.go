package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PaymentMethod is the closed set of payment methods known to the report.
// Asset names that match none of them map to PaymentUnknown.
type PaymentMethod int

const (
	PaymentUnknown PaymentMethod = iota
	PaymentCash
	PaymentTransfer
	PaymentCreditCard
	PaymentDebitCard
	PaymentTickets
	PaymentPayPal
)

// InvalidPaymentCode is the report code of PaymentUnknown.
const InvalidPaymentCode = "INVALID"

var paymentMethods = []struct {
	method PaymentMethod
	name   string
	code   string
}{
	{PaymentCash, "Efectivo", "E"},
	{PaymentTransfer, "Transferencia", "T"},
	{PaymentCreditCard, "T. Crédito", "TC"},
	{PaymentDebitCard, "T. Débito", "TD"},
	{PaymentTickets, "Tickets", "Ti"},
	{PaymentPayPal, "PayPal", "P"},
}

// ParsePaymentMethod maps a Money Manager asset name to a PaymentMethod.
// The name is trimmed and NFC-normalized, then matched exactly.
func ParsePaymentMethod(name string) PaymentMethod {
	name = norm.NFC.String(strings.TrimSpace(name))
	for _, pm := range paymentMethods {
		if pm.name == name {
			return pm.method
		}
	}
	return PaymentUnknown
}

// Code returns the short report code, InvalidPaymentCode for PaymentUnknown.
func (p PaymentMethod) Code() string {
	for _, pm := range paymentMethods {
		if pm.method == p {
			return pm.code
		}
	}
	return InvalidPaymentCode
}

// String returns the asset name the method was parsed from.
func (p PaymentMethod) String() string {
	for _, pm := range paymentMethods {
		if pm.method == p {
			return pm.name
		}
	}
	return "unknown"
}

// IsKnown reports whether p is one of the recognized methods.
func (p PaymentMethod) IsKnown() bool {
	return p != PaymentUnknown
}
