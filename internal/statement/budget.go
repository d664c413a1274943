package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Budget holds the monthly income and fixed expenses entered by the user
type Budget struct {
	Salary        decimal.Decimal `json:"salary"`
	OtherIncome   decimal.Decimal `json:"other_income"`
	Rent          decimal.Decimal `json:"rent"`
	Bills         decimal.Decimal `json:"bills"`         // Internet, electricity, ...
	Subscriptions decimal.Decimal `json:"subscriptions"` // Streaming, ...
	Savings       decimal.Decimal `json:"savings"`       // Automatic transfers to savings
}

// DefaultBudget returns the figures used when none are configured
func DefaultBudget() Budget {
	return Budget{
		Salary:        decimal.NewFromInt(3000),
		OtherIncome:   decimal.Zero,
		Rent:          decimal.NewFromInt(1000),
		Bills:         decimal.NewFromInt(250),
		Subscriptions: decimal.NewFromInt(40),
		Savings:       decimal.NewFromInt(300),
	}
}

// Validate returns an error listing every negative field
func (b Budget) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"salary", b.Salary},
		{"other income", b.OtherIncome},
		{"rent", b.Rent},
		{"bills", b.Bills},
		{"subscriptions", b.Subscriptions},
		{"savings", b.Savings},
	}

	var errors []string
	for _, f := range fields {
		if f.value.IsNegative() {
			errors = append(errors, fmt.Sprintf("%s must not be negative, got %s", f.name, f.value.StringFixed(2)))
		}
	}
	if len(errors) > 0 {
		return fmt.Errorf("budget validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// TotalIncome is salary plus other income
func (b Budget) TotalIncome() decimal.Decimal {
	return b.Salary.Add(b.OtherIncome)
}

// TotalFixed is the sum of the fixed monthly expenses
func (b Budget) TotalFixed() decimal.Decimal {
	return decimal.Sum(b.Rent, b.Bills, b.Subscriptions, b.Savings)
}

// Summary is the month's budget set against actual spending
type Summary struct {
	TotalIncome decimal.Decimal `json:"total_income"`
	TotalFixed  decimal.Decimal `json:"total_fixed"`
	Forecast    decimal.Decimal `json:"forecast"`    // Income minus fixed expenses
	TotalSpent  decimal.Decimal `json:"total_spent"` // Sum of the statement's transactions
	Remaining   decimal.Decimal `json:"remaining"`   // Forecast minus spending
}

// Summarize sets the budget against the amount spent according to a statement
func (b Budget) Summarize(spent decimal.Decimal) Summary {
	income := b.TotalIncome()
	fixed := b.TotalFixed()
	forecast := income.Sub(fixed)
	return Summary{
		TotalIncome: income,
		TotalFixed:  fixed,
		Forecast:    forecast,
		TotalSpent:  spent,
		Remaining:   forecast.Sub(spent),
	}
}
