package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone printable HTML report
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

//go:embed templates/plan.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"curr":       FormatCurrency,
	"signed":     FormatSignedCurrency,
	"pct":        FormatPercentage,
	"displayPct": DisplayPercent,
	"outcome":    Outcome,
	"meets":      func(d decimal.Decimal) bool { return !d.IsNegative() },
}).Parse(htmlTemplateSource))

func (HTMLFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanReport
		Progress  decimal.Decimal
		GoalLabel string
	}{report, ProgressPercent(report.YTD, report.Goal), GoalLabel(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
