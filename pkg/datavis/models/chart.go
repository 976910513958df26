package models

import "strings"

// ChartKind identifies one of the supported chart types.
// The zero value means no kind was selected.
type ChartKind string

const (
	KindLine      ChartKind = "line"
	KindBar       ChartKind = "bar"
	KindScatter   ChartKind = "scatter"
	KindHistogram ChartKind = "histogram"
	KindBox       ChartKind = "box"
	KindPie       ChartKind = "pie"
)

// ChartKinds lists every supported kind in menu order.
var ChartKinds = []ChartKind{KindLine, KindBar, KindScatter, KindHistogram, KindBox, KindPie}

// chartKindAliases maps accepted spellings to kinds.
var chartKindAliases = map[string]ChartKind{
	"line":         KindLine,
	"line plot":    KindLine,
	"bar":          KindBar,
	"bar plot":     KindBar,
	"column":       KindBar,
	"scatter":      KindScatter,
	"scatter plot": KindScatter,
	"histogram":    KindHistogram,
	"hist":         KindHistogram,
	"box":          KindBox,
	"box plot":     KindBox,
	"boxplot":      KindBox,
	"pie":          KindPie,
	"pie chart":    KindPie,
}

// ParseChartKind converts a user-facing name to a ChartKind.
// Empty input yields the zero kind; unknown names return ok=false.
func ParseChartKind(s string) (ChartKind, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", true
	}
	k, ok := chartKindAliases[key]
	return k, ok
}

// Label returns the display label used in chart titles.
func (k ChartKind) Label() string {
	switch k {
	case KindLine:
		return "Line Plot"
	case KindBar:
		return "Bar Plot"
	case KindScatter:
		return "Scatter Plot"
	case KindHistogram:
		return "Histogram"
	case KindBox:
		return "Box Plot"
	case KindPie:
		return "Pie Chart"
	}
	return string(k)
}

// RequiresX reports whether the kind needs an x-column.
// Histogram and Pie only read the y-column.
func (k ChartKind) RequiresX() bool {
	switch k {
	case KindLine, KindBar, KindScatter, KindBox:
		return true
	}
	return false
}

// Valid reports whether k is one of the supported kinds.
func (k ChartKind) Valid() bool {
	for _, c := range ChartKinds {
		if c == k {
			return true
		}
	}
	return false
}

// Request is a user's chart selection. It is built per render attempt.
type Request struct {
	// XColumn is the x-axis column name (optional for Histogram and Pie).
	XColumn string `json:"x_column,omitempty"`
	// YColumn is the y-axis column name.
	YColumn string `json:"y_column"`
	// Kind is the selected chart kind.
	Kind ChartKind `json:"kind"`
}

// ResolvedSpec is a Request validated against a dataset, with the column data attached.
type ResolvedSpec struct {
	Request Request
	// X is nil when the kind does not use an x-column.
	X *Column
	Y *Column
	// Source is the dataset the columns were taken from.
	Source *Dataset
}
