package storage

import (
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"

	"mmexport/internal/core"
)

// Money Manager flags.
const (
	notDeleted  = 0
	typeExpense = 1
)

// expensesQuery selects the non-deleted expenses whose transaction date falls
// in r, oldest first.
func expensesQuery(r core.DateRange) bob.Query {
	return sqlite.Select(
		sm.Columns(
			sqlite.Quote("z", "ZDATE"),
			sqlite.Quote("z", "ZTXDATESTR"),
			sqlite.Quote("c", "ZNAME"),
			sqlite.Quote("z", "ZCONTENT"),
			sqlite.Quote("z", "ZAMOUNT"),
			sqlite.Quote("a", "ZNICNAME"),
		),
		sm.From("ZINOUTCOME").As("z"),
		sm.InnerJoin("ZASSET").As("a").OnEQ(sqlite.Quote("z", "ZASSETUID"), sqlite.Quote("a", "ZUID")),
		sm.InnerJoin("ZCATEGORY").As("c").OnEQ(sqlite.Quote("z", "ZCATEGORYUID"), sqlite.Quote("c", "ZUID")),
		sm.Where(sqlite.Quote("z", "ZTXDATESTR").Between(sqlite.Arg(r.Start.String()), sqlite.Arg(r.End.String()))),
		sm.Where(sqlite.Quote("z", "ZISDEL").EQ(sqlite.Arg(notDeleted))),
		sm.Where(sqlite.Quote("z", "ZDO_TYPE").EQ(sqlite.Arg(typeExpense))),
		sm.OrderBy(sqlite.Quote("z", "ZDATE")).Asc(),
	)
}
