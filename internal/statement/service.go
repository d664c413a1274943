package statement

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/zombor/budget-tracker/internal/scanning"
)

// Report is everything extracted from one statement
type Report struct {
	Records    []TransactionRecord `json:"records"`
	Daily      []DailyTotal        `json:"daily"`
	TotalSpent decimal.Decimal     `json:"total_spent"`
	Candidates int                 `json:"candidates"`
	Dropped    int                 `json:"dropped"`
	Undated    int                 `json:"undated"`
}

// Service runs the statement pipeline: scan text, parse records, aggregate
type Service struct {
	scanner scanning.Scanner
	parser  *Parser
}

// NewService creates a new Service
func NewService(scanner scanning.Scanner, parser *Parser) *Service {
	return &Service{
		scanner: scanner,
		parser:  parser,
	}
}

// ProcessStatement extracts and aggregates the transactions of the PDF read from r
func (s *Service) ProcessStatement(r io.Reader) (*Report, error) {
	text, err := s.scanner.ScanText(r)
	if err != nil {
		return nil, fmt.Errorf("scanning statement: %w", err)
	}

	result, err := s.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing statement: %w", err)
	}

	if result.Dropped > 0 || result.Undated > 0 {
		slog.Warn("Some statement lines were not fully parsed",
			"candidates", result.Candidates,
			"dropped", result.Dropped,
			"undated", result.Undated,
		)
	}
	slog.Debug("Parsed statement",
		"text_length", len(text),
		"candidates", result.Candidates,
		"records", len(result.Records),
	)

	return &Report{
		Records:    result.Records,
		Daily:      Aggregate(result.Records),
		TotalSpent: Sum(result.Records),
		Candidates: result.Candidates,
		Dropped:    result.Dropped,
		Undated:    result.Undated,
	}, nil
}
