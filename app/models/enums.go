package models

// Level bands a numeric field against its risk thresholds.
type Level string

const (
	LevelLow    Level = "low"
	LevelNormal Level = "normal"
	LevelHigh   Level = "high"
)

// Status is the overall standing derived from a record's risk signals. It is
// never set directly; see risk.Classify.
type Status string

const (
	StatusAtRisk Status = "at_risk"
	StatusSafe   Status = "safe"
)

// StatusFilter defines the status values accepted by the table and histogram
// APIs.
type StatusFilter string

const (
	FilterAll    StatusFilter = "all"
	FilterAtRisk StatusFilter = "at_risk"
	FilterSafe   StatusFilter = "safe"
)

// Matches reports whether a record status passes the filter.
func (f StatusFilter) Matches(s Status) bool {
	return f == FilterAll || f == "" || string(f) == string(s)
}

// Cell colors used by the table. Each field's color is computed and rendered
// independently; a yellow fee cell can sit next to a red attendance cell.
const (
	ColorRed    = "red"
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorNone   = ""
)

// CellColor returns the display color for a banded field.
func CellColor(l Level) string {
	switch l {
	case LevelLow:
		return ColorRed
	case LevelHigh:
		return ColorGreen
	default:
		return ColorNone
	}
}

// FeeColor returns the display color for the pending fees cell.
func FeeColor(flagged bool) string {
	if flagged {
		return ColorYellow
	}
	return ColorNone
}
