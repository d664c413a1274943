package statement

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DefaultYear is the year given to statement dates when no other is configured
const DefaultYear = 2025

const dateLayout = "01 02 2006"

// transactionPattern matches "MM DD DESCRIPTION AMOUNT". The description may
// hold uppercase letters, digits, spaces and * - ' . # ( ) but no line break.
var transactionPattern = regexp.MustCompile(`(\d{2}) (\d{2}) [A-Z0-9*\-'.#() \t]+ ([\d.]+)`)

// UndatedPolicy decides what happens to a candidate whose month/day is invalid
type UndatedPolicy string

const (
	// UndatedKeep keeps the record with a nil date
	UndatedKeep UndatedPolicy = "keep"
	// UndatedDrop discards the record
	UndatedDrop UndatedPolicy = "drop"
)

// ParseUndatedPolicy validates a policy name
func ParseUndatedPolicy(s string) (UndatedPolicy, error) {
	switch p := UndatedPolicy(s); p {
	case UndatedKeep, UndatedDrop:
		return p, nil
	default:
		return "", fmt.Errorf("invalid undated policy %q (valid: %s or %s)", s, UndatedKeep, UndatedDrop)
	}
}

// ParserConfig configures date resolution for a Parser
type ParserConfig struct {
	// Year is combined with each month/day pair. Zero means DefaultYear.
	Year int
	// PeriodEnd, when set, is the last day of the statement period. Its year
	// replaces Year, and dates that would land after it move back one year.
	PeriodEnd time.Time
	// Undated selects the invalid-date policy. Empty means UndatedKeep.
	Undated UndatedPolicy
}

// Parser extracts transaction records from statement text
type Parser struct {
	year      int
	periodEnd time.Time
	undated   UndatedPolicy
}

// NewParser creates a new Parser, filling in defaults
func NewParser(cfg ParserConfig) (*Parser, error) {
	p := &Parser{
		year:    cfg.Year,
		undated: cfg.Undated,
	}
	if p.year == 0 {
		p.year = DefaultYear
	}
	if p.year < 1 || p.year > 9999 {
		return nil, fmt.Errorf("invalid year %d", cfg.Year)
	}
	if p.undated == "" {
		p.undated = UndatedKeep
	}
	if _, err := ParseUndatedPolicy(string(p.undated)); err != nil {
		return nil, err
	}
	if !cfg.PeriodEnd.IsZero() {
		y, m, d := cfg.PeriodEnd.Date()
		p.periodEnd = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		p.year = y
	}
	return p, nil
}

// Parse returns the records of every transaction line in text, in order of
// appearance. Malformed candidates never fail the parse; they are counted in
// the result instead.
func (p *Parser) Parse(text string) (*ParseResult, error) {
	if !utf8.ValidString(text) {
		return nil, &ParseError{Err: errors.New("text is not valid UTF-8")}
	}

	result := &ParseResult{Records: make([]TransactionRecord, 0)}
	for _, m := range transactionPattern.FindAllStringSubmatch(text, -1) {
		result.Candidates++

		amount, err := parseAmount(m[3])
		if err != nil {
			result.Dropped++
			continue
		}

		date := p.resolveDate(m[1], m[2])
		if date == nil {
			if p.undated == UndatedDrop {
				result.Dropped++
				continue
			}
			result.Undated++
		}

		result.Records = append(result.Records, TransactionRecord{Date: date, Amount: amount})
	}
	return result, nil
}

// ParseReader reads all of r and parses it
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("reading text: %w", err)}
	}
	return p.Parse(string(data))
}

// resolveDate builds the calendar date for a month/day pair, or nil if the
// pair is not a valid date in the resolved year
func (p *Parser) resolveDate(month, day string) *time.Time {
	date, err := time.Parse(dateLayout, fmt.Sprintf("%s %s %04d", month, day, p.year))
	if err != nil {
		return nil
	}
	if !p.periodEnd.IsZero() && date.After(p.periodEnd) {
		// Re-parse rather than AddDate so 02 29 does not roll into March
		date, err = time.Parse(dateLayout, fmt.Sprintf("%s %s %04d", month, day, p.year-1))
		if err != nil {
			return nil
		}
	}
	return &date
}

// parseAmount converts an amount token to cents precision
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return amount.Round(2), nil
}
