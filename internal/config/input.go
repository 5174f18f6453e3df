package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rgehrsitz/contribgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxPayPeriods bounds the pay schedule at one paycheck per day
const MaxPayPeriods = 365

// Format identifies a profile file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from the file extension. JSON is decoded
// by the YAML parser.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported profile extension %q (want .yaml, .yml, .json or .toml)", filepath.Ext(path))
}

// InputParser handles parsing of profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads, defaults and validates a profile from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	format, err := FormatForPath(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data, format)
}

// Parse decodes a profile in the given format, then applies defaults and validates it
func (ip *InputParser) Parse(data []byte, format Format) (*domain.Profile, error) {
	var profile domain.Profile

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &profile); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	ApplyDefaults(&profile)

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ApplyDefaults fills in collaborator-level fallbacks. A missing pay schedule
// defaults to biweekly.
func ApplyDefaults(p *domain.Profile) {
	if p.PayPeriodsPerYear == 0 {
		p.PayPeriodsPerYear = domain.DefaultPayPeriods
	}
	if p.AgeBracket == "" && p.Age > 0 {
		p.AgeBracket = domain.BracketForAge(p.Age)
	}
}

// ValidateProfile checks a profile before it reaches the calculation engine
func (ip *InputParser) ValidateProfile(p *domain.Profile) error {
	if p.Salary.IsNegative() {
		return fmt.Errorf("salary cannot be negative")
	}
	if p.PayPeriodsPerYear < 1 || p.PayPeriodsPerYear > MaxPayPeriods {
		return fmt.Errorf("pay periods per year must be between 1 and %d, got %d", MaxPayPeriods, p.PayPeriodsPerYear)
	}
	if p.RemainingPeriods < 0 {
		return fmt.Errorf("remaining periods cannot be negative")
	}
	if p.RemainingPeriods > p.PayPeriodsPerYear {
		return fmt.Errorf("remaining periods (%d) cannot exceed pay periods per year (%d)", p.RemainingPeriods, p.PayPeriodsPerYear)
	}
	if p.Age < 0 || p.Age > 120 {
		return fmt.Errorf("age must be between 0 and 120, got %d", p.Age)
	}
	if p.AgeBracket != "" && !p.AgeBracket.Valid() {
		return fmt.Errorf("unknown age bracket %q", p.AgeBracket)
	}
	if p.CustomGoal != nil && p.CustomGoal.IsNegative() {
		return fmt.Errorf("custom goal cannot be negative")
	}
	if p.PlanYear != 0 && (p.PlanYear < 1900 || p.PlanYear > 2200) {
		return fmt.Errorf("plan year %d is out of range", p.PlanYear)
	}
	return nil
}

// SaveToFile writes a profile using the encoding implied by the extension
func (ip *InputParser) SaveToFile(filename string, p *domain.Profile) error {
	format, err := FormatForPath(filename)
	if err != nil {
		return err
	}

	data, err := ip.Encode(p, format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// Encode serializes a profile
func (ip *InputParser) Encode(p *domain.Profile, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(p); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// ParseAmount parses form-style numeric input such as "$23,500" or "6.5%".
// Empty or unparsable input yields zero.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', '%', ' ', '\t', '_':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// ParsePeriods parses a pay period count, falling back to the biweekly default
// when the input is empty, unparsable or not positive.
func ParsePeriods(raw string) int {
	v := ParseAmount(raw)
	if !v.IsPositive() {
		return domain.DefaultPayPeriods
	}
	return int(v.IntPart())
}
