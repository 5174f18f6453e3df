package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Formatter renders a plan report in a single output format
type Formatter interface {
	Name() string
	Format(report *domain.PlanReport) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *domain.PlanReport) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *domain.PlanReport) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{}

func register(f Formatter, aliases ...string) {
	formatters[f.Name()] = f
	for _, a := range aliases {
		formatters[a] = f
	}
}

func init() {
	register(ConsoleFormatter{}, "table", "text")
	register(JSONFormatter{Pretty: true})
	register(CSVFormatter{})
	register(HTMLFormatter{})
}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[strings.ToLower(name)]
}

// FormatterNames lists the canonical formatter names
func FormatterNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, f := range formatters {
		if !seen[f.Name()] {
			seen[f.Name()] = true
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)
	return names
}

// GenerateReport writes a report to w in the named format
func GenerateReport(w io.Writer, report *domain.PlanReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s (available: %s)", format, strings.Join(FormatterNames(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report as %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted writes a report to a timestamped file in the working
// directory and returns the file name
func WriteFormatted(f Formatter, report *domain.PlanReport, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("failed to format report as %s: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("contribution_plan_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// FormatCurrency formats a decimal as dollars with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount.Abs().Round(2).InexactFloat64())
}

// FormatSignedCurrency is FormatCurrency with an explicit + for positive amounts
func FormatSignedCurrency(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}

// FormatPercentage formats a decimal as a percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// DisplayPercent formats a required rate for display; rates above 100% are
// shown as "100%+" since no paycheck can cover them.
func DisplayPercent(p decimal.Decimal) string {
	if p.GreaterThan(hundred) {
		return "100%+"
	}
	return FormatPercentage(p)
}

// ProgressPercent is ytd as a share of goal, clamped to 0..100
func ProgressPercent(ytd, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return hundred
	}
	pct := ytd.Div(goal).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(hundred, pct)
}

// ProgressBar draws a fixed-width ASCII bar for a 0..100 percentage
func ProgressBar(pct decimal.Decimal, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct.Div(hundred).Mul(decimal.NewFromInt(int64(width))).Floor().IntPart())
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// GoalLabel describes where the goal came from
func GoalLabel(report *domain.PlanReport) string {
	if report.GoalSource == domain.GoalFromCustom {
		return "custom"
	}
	return fmt.Sprintf("%d limit, %s", report.PlanYear, report.AgeBracket.Label())
}

// Outcome labels a scenario difference
func Outcome(diff decimal.Decimal) string {
	switch {
	case diff.IsNegative():
		return "short"
	case diff.IsZero():
		return "on target"
	default:
		return "over"
	}
}
