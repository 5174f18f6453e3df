package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// AgeBracket selects which elective deferral limit applies
type AgeBracket string

const (
	BracketUnder50 AgeBracket = "under_50"
	Bracket50Plus  AgeBracket = "50_plus"
	Bracket60To63  AgeBracket = "60_to_63" // enhanced catch-up window
)

// AllBrackets lists the brackets in display order
var AllBrackets = []AgeBracket{BracketUnder50, Bracket50Plus, Bracket60To63}

// Valid reports whether b is a known bracket
func (b AgeBracket) Valid() bool {
	switch b {
	case BracketUnder50, Bracket50Plus, Bracket60To63:
		return true
	}
	return false
}

// Label returns a human readable bracket name
func (b AgeBracket) Label() string {
	switch b {
	case BracketUnder50:
		return "Under 50"
	case Bracket50Plus:
		return "50+ (catch-up)"
	case Bracket60To63:
		return "60-63 (enhanced catch-up)"
	}
	return string(b)
}

// BracketForAge maps an age (as of December 31) to its bracket
func BracketForAge(age int) AgeBracket {
	switch {
	case age >= 60 && age <= 63:
		return Bracket60To63
	case age >= 50:
		return Bracket50Plus
	default:
		return BracketUnder50
	}
}

// GoalSource records where the annual goal came from
type GoalSource string

const (
	GoalFromLimit  GoalSource = "limit"
	GoalFromCustom GoalSource = "custom"
)

// YearLimits holds the IRS elective deferral limits for a plan year
type YearLimits struct {
	Year             int             `yaml:"year" json:"year"`
	ElectiveDeferral decimal.Decimal `yaml:"elective_deferral" json:"elective_deferral"`
	CatchUp50        decimal.Decimal `yaml:"catch_up_50" json:"catch_up_50"`
	CatchUp60To63    decimal.Decimal `yaml:"catch_up_60_63" json:"catch_up_60_63"`
}

// Goal returns the total annual limit for a bracket
func (yl YearLimits) Goal(bracket AgeBracket) (decimal.Decimal, error) {
	switch bracket {
	case BracketUnder50, "":
		return yl.ElectiveDeferral, nil
	case Bracket50Plus:
		return yl.ElectiveDeferral.Add(yl.CatchUp50), nil
	case Bracket60To63:
		return yl.ElectiveDeferral.Add(yl.CatchUp60To63), nil
	}
	return decimal.Zero, fmt.Errorf("unknown age bracket %q", bracket)
}

// LimitTable is a set of limits keyed by plan year
type LimitTable map[int]YearLimits

// DefaultLimits returns the built-in limit table
func DefaultLimits() LimitTable {
	return LimitTable{
		2025: {
			Year:             2025,
			ElectiveDeferral: decimal.NewFromInt(23500),
			CatchUp50:        decimal.NewFromInt(7500),
			CatchUp60To63:    decimal.NewFromInt(11250),
		},
		2026: {
			Year:             2026,
			ElectiveDeferral: decimal.NewFromInt(24500),
			CatchUp50:        decimal.NewFromInt(8000),
			CatchUp60To63:    decimal.NewFromInt(11250),
		},
	}
}

// Years returns the known plan years in ascending order
func (lt LimitTable) Years() []int {
	years := make([]int, 0, len(lt))
	for y := range lt {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ForYear returns the limits for year. When the year is unknown the most
// recent year on or before it is used, or the earliest year if year
// predates the table; exact reports whether year itself was found.
func (lt LimitTable) ForYear(year int) (limits YearLimits, exact bool, err error) {
	if len(lt) == 0 {
		return YearLimits{}, false, fmt.Errorf("limit table is empty")
	}
	if yl, ok := lt[year]; ok {
		return yl, true, nil
	}
	years := lt.Years()
	chosen := years[0]
	for _, y := range years {
		if y <= year {
			chosen = y
		}
	}
	return lt[chosen], false, nil
}

// Goal resolves the limit-based goal for a year and bracket
func (lt LimitTable) Goal(year int, bracket AgeBracket) (decimal.Decimal, error) {
	yl, _, err := lt.ForYear(year)
	if err != nil {
		return decimal.Zero, err
	}
	return yl.Goal(bracket)
}
