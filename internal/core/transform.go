package core

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate converts a YYYY-MM-DD store date into DD/MM/YYYY.
func FormatDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: transaction date %q", ErrFormat, s)
	}
	return t.Format("02/01/2006"), nil
}

// NormalizeCategory keeps only the child of a "Parent/Child" category.
func NormalizeCategory(category string) string {
	if _, child, found := strings.Cut(category, "/"); found {
		return child
	}
	return category
}

// Transform applies every display conversion to a raw record.
func Transform(raw RawRecord) (Record, error) {
	date, err := FormatDate(raw.TxDate)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Date:     date,
		Category: NormalizeCategory(raw.Category),
		Comment:  raw.Comment,
		Amount:   FormatAmount(AmountText(raw.Amount)),
		Payment:  ParsePaymentMethod(raw.Payment),
	}, nil
}

// Fields returns the report columns in order.
func (r Record) Fields() []string {
	return []string{r.Date, r.Category, r.Comment, r.Amount, r.Payment.Code()}
}
