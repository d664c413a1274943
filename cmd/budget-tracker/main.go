package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/shopspring/decimal"

	"github.com/zombor/budget-tracker/internal/report"
	"github.com/zombor/budget-tracker/internal/scanning"
	"github.com/zombor/budget-tracker/internal/statement"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

const envPrefix = "BUDGET_TRACKER"

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	// Values from .env never override the real environment
	envFile := os.Getenv(envPrefix + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: loading %s: %v\n", envFile, err)
			os.Exit(1)
		}
	}

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("Failed to build budget report", "error", err)
		os.Exit(1)
	}
}

// config is the parsed command line
type config struct {
	statementPath string
	backend       string
	parser        statement.ParserConfig
	format        report.Format
	color         string
	budget        statement.Budget
	logLevel      slog.Level
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.logLevel})))

	in := report.Input{Budget: cfg.budget}

	statementReport, err := processStatement(cfg, stdin)
	switch {
	case errors.Is(err, statement.ErrNoStatement):
		slog.Info("No statement supplied, showing the budget only")
		in.Summary = cfg.budget.Summarize(decimal.Zero)
	case err != nil:
		return err
	default:
		in.Statement = statementReport
		in.Summary = cfg.budget.Summarize(statementReport.TotalSpent)
	}

	opts := report.Options{Color: useColor(cfg.color, stdout)}
	if err := report.Render(stdout, cfg.format, in, opts); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

func processStatement(cfg *config, stdin io.Reader) (*statement.Report, error) {
	rc, err := statement.OpenStatement(cfg.statementPath, stdin)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	slog.Info("Initializing scanner...", "backend", cfg.backend)
	scanner, err := scanning.New(cfg.backend)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	parser, err := statement.NewParser(cfg.parser)
	if err != nil {
		return nil, err
	}

	service := statement.NewService(scanner, parser)
	rep, err := service.ProcessStatement(rc)
	if err != nil {
		return nil, err
	}
	slog.Info("Statement processed",
		"statement", cfg.statementPath,
		"transactions", len(rep.Records),
		"days", len(rep.Daily),
		"total_spent", rep.TotalSpent.StringFixed(2),
	)
	return rep, nil
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	defaults := statement.DefaultBudget()

	fs := ff.NewFlagSet("budget-tracker")
	var (
		statementPath = fs.StringLong("statement", "", "Bank statement PDF path, '-' for stdin (optional)")
		backend       = fs.StringLong("backend", scanning.BackendFitz, "PDF text backend: 'fitz' or 'pure'")
		year          = fs.IntLong("year", statement.DefaultYear, "Year given to statement dates")
		periodEnd     = fs.StringLong("period-end", "", "Last day of the statement period, YYYY-MM-DD (overrides --year)")
		undated       = fs.StringLong("undated", string(statement.UndatedKeep), "Lines with an invalid date: 'keep' or 'drop'")
		format        = fs.StringLong("format", string(report.FormatTable), "Output format: 'table', 'csv' or 'json'")
		colorMode     = fs.StringLong("color", "auto", "Colour output: 'auto', 'always' or 'never'")
		salary        = fs.StringLong("salary", defaults.Salary.String(), "Monthly net salary")
		otherIncome   = fs.StringLong("other-income", defaults.OtherIncome.String(), "Other monthly income (dividends, ...)")
		rent          = fs.StringLong("rent", defaults.Rent.String(), "Rent or mortgage")
		bills         = fs.StringLong("bills", defaults.Bills.String(), "Bills (internet, electricity, ...)")
		subscriptions = fs.StringLong("subscriptions", defaults.Subscriptions.String(), "Subscriptions (streaming, ...)")
		savings       = fs.StringLong("savings", defaults.Savings.String(), "Automatic savings")
		logLevel      = fs.StringLong("log-level", "info", "Log level: debug, info, warn or error")
		_             = fs.StringLong("config", "", "Config file path (optional)")
		_             = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithConfigAllowMissingFile(),
	); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := &config{
		statementPath: *statementPath,
		backend:       *backend,
		color:         *colorMode,
	}

	var errs []string
	addErr := func(err error) {
		errs = append(errs, err.Error())
	}

	undatedPolicy, err := statement.ParseUndatedPolicy(*undated)
	if err != nil {
		addErr(err)
	}
	cfg.parser = statement.ParserConfig{Year: *year, Undated: undatedPolicy}
	if *periodEnd != "" {
		end, err := time.Parse("2006-01-02", *periodEnd)
		if err != nil {
			addErr(fmt.Errorf("invalid period end %q: must be YYYY-MM-DD", *periodEnd))
		}
		cfg.parser.PeriodEnd = end
	}

	if cfg.format, err = report.ParseFormat(*format); err != nil {
		addErr(err)
	}

	switch cfg.color {
	case "auto", "always", "never":
	default:
		addErr(fmt.Errorf("invalid color mode %q: must be auto, always or never", cfg.color))
	}

	if err := cfg.logLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		addErr(fmt.Errorf("invalid log level %q", *logLevel))
	}

	amounts := []struct {
		name  string
		raw   string
		value *decimal.Decimal
	}{
		{"salary", *salary, &cfg.budget.Salary},
		{"other-income", *otherIncome, &cfg.budget.OtherIncome},
		{"rent", *rent, &cfg.budget.Rent},
		{"bills", *bills, &cfg.budget.Bills},
		{"subscriptions", *subscriptions, &cfg.budget.Subscriptions},
		{"savings", *savings, &cfg.budget.Savings},
	}
	for _, a := range amounts {
		v, err := decimal.NewFromString(strings.TrimSpace(a.raw))
		if err != nil {
			addErr(fmt.Errorf("invalid %s %q: must be a number", a.name, a.raw))
			continue
		}
		*a.value = v
	}
	if err := cfg.budget.Validate(); err != nil {
		addErr(err)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return cfg, nil
}

// useColor resolves the colour mode; auto colours only a terminal stdout
func useColor(mode string, stdout io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return stdout == os.Stdout && !color.NoColor
	}
}
