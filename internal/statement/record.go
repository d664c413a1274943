package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is a dated amount read from a statement line
type TransactionRecord struct {
	Date   *time.Time      `json:"date"`   // nil when the line's month/day is not a valid date
	Amount decimal.Decimal `json:"amount"` // Rounded to cents
}

// HasDate reports whether the record carries a valid calendar date
func (r TransactionRecord) HasDate() bool {
	return r.Date != nil
}

// DailyTotal is the sum of all records sharing one calendar date
type DailyTotal struct {
	Date  *time.Time      `json:"date"` // nil groups the undated records
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// ParseResult holds the records found in a text and counters for the
// candidates that did not make it through unchanged
type ParseResult struct {
	Records    []TransactionRecord `json:"records"`
	Candidates int                 `json:"candidates"` // Lines matching the transaction pattern
	Dropped    int                 `json:"dropped"`    // Candidates discarded (bad amount, or bad date under UndatedDrop)
	Undated    int                 `json:"undated"`    // Records kept without a date under UndatedKeep
}
