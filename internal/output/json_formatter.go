package output

import (
	"encoding/json"

	"github.com/rgehrsitz/contribgo/internal/domain"
)

// JSONFormatter formats reports as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	if jf.Pretty {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return json.Marshal(report)
}
