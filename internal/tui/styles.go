package tui

import "github.com/rgehrsitz/contribgo/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	TitleStyle    = tuistyles.TitleStyle
	SubtitleStyle = tuistyles.SubtitleStyle
	BorderStyle   = tuistyles.BorderStyle
	ErrorStyle    = tuistyles.ErrorStyle
	InfoStyle     = tuistyles.InfoStyle
	AppStyle      = tuistyles.AppStyle

	FormatCurrency = tuistyles.FormatCurrency
)
