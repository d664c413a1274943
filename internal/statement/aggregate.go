package statement

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Aggregate sums record amounts per calendar date and returns the totals in
// ascending date order. Undated records, if any, form a single last group.
func Aggregate(records []TransactionRecord) []DailyTotal {
	byDate := make(map[time.Time]*DailyTotal)
	var undated *DailyTotal

	for _, r := range records {
		if !r.HasDate() {
			if undated == nil {
				undated = &DailyTotal{Total: decimal.Zero}
			}
			undated.Total = undated.Total.Add(r.Amount)
			undated.Count++
			continue
		}

		y, m, d := r.Date.Date()
		key := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		total, ok := byDate[key]
		if !ok {
			date := key
			total = &DailyTotal{Date: &date, Total: decimal.Zero}
			byDate[key] = total
		}
		total.Total = total.Total.Add(r.Amount)
		total.Count++
	}

	totals := make([]DailyTotal, 0, len(byDate)+1)
	for _, t := range byDate {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(*totals[j].Date)
	})
	if undated != nil {
		totals = append(totals, *undated)
	}
	return totals
}

// Sum adds up the amounts of all records, dated or not
func Sum(records []TransactionRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Amount)
	}
	return sum
}
