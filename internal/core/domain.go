package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout of every calendar date read from the command line
// or from the Money Manager store.
const DateLayout = "2006-01-02"

type (
	Date struct {
		time.Time
	}

	// DateRange is an inclusive [Start, End] interval of whole days.
	DateRange struct {
		Start Date
		End   Date
	}

	// RawRecord is one expense row as stored by Money Manager.
	RawRecord struct {
		Created  string // ZDATE, Cocoa timestamp of the expense; not reported
		TxDate   string // YYYY-MM-DD
		Category string // "Parent/Child" or "Parent"
		Comment  string
		Amount   decimal.Decimal
		Payment  string // asset nickname
	}

	// Record is a RawRecord after every display transform was applied.
	Record struct {
		Date     string // DD/MM/YYYY
		Category string
		Comment  string
		Amount   string // comma decimal separator
		Payment  PaymentMethod
	}
)

var (
	ErrArgument    = errors.New("invalid argument")
	ErrStoreAccess = errors.New("store access")
	ErrFormat      = errors.New("invalid format")
	ErrInvalidDay  = errors.New("invalid day")
	ErrEmptyRange  = errors.New("end date before start date")
)

// NewDate creates a new Date from year, month, day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string. Malformed input wraps ErrArgument.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrArgument, s)
	}
	return Date{Time: t}, nil
}

// String returns the date as YYYY-MM-DD, the format used by the store.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// FirstOfMonth returns day 1 of the date's month.
func (d Date) FirstOfMonth() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// LastOfMonth returns the last day of the date's month.
func (d Date) LastOfMonth() Date {
	return NewDate(d.Year(), d.Month(), DaysIn(d.Year(), d.Month()))
}

// DaysIn returns the number of days in month, leap years included.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the range covering the whole month.
func MonthRange(year int, month time.Month) DateRange {
	return DateRange{
		Start: NewDate(year, month, 1),
		End:   NewDate(year, month, DaysIn(year, month)),
	}
}

func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: %w", ErrArgument, ErrInvalidDay)
	}
	if r.End.Before(r.Start.Time) {
		return fmt.Errorf("%w: %w (%s > %s)", ErrArgument, ErrEmptyRange, r.Start, r.End)
	}
	return nil
}

func (r DateRange) String() string {
	return r.Start.String() + " - " + r.End.String()
}
