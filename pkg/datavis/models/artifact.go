package models

// Point is one plotted (x, y) pair.
type Point struct {
	// X is the x value, or the row position when the x-column is textual.
	X float64 `json:"x"`
	// Y is the y value.
	Y float64 `json:"y"`
	// Label is the raw x cell text.
	Label string `json:"label,omitempty"`
}

// Bar is one bar of a bar chart.
type Bar struct {
	// Label is the category or x value under the bar.
	Label string `json:"label"`
	// Value is the bar height.
	Value float64 `json:"value"`
}

// Bin is one histogram bucket covering [Start, End).
// The last bin of a histogram also includes End.
type Bin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// BoxSummary is the five-number summary of one column.
type BoxSummary struct {
	// Name is the column the summary was computed from.
	Name   string  `json:"name"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Slice is one pie slice.
type Slice struct {
	// Label is the distinct value the slice counts.
	Label string `json:"label"`
	// Count is the number of rows holding Label.
	Count int `json:"count"`
	// Fraction is Count divided by the total of all counts.
	Fraction float64 `json:"fraction"`
}

// Artifact is a rendered chart ready for display or export.
// Only the element slice matching Kind is populated.
type Artifact struct {
	// ID uniquely identifies this render.
	ID string `json:"id"`
	// Kind is the chart kind that produced the artifact.
	Kind ChartKind `json:"kind"`
	// Title is the chart title.
	Title string `json:"title"`
	// XLabel is the x-axis label (empty when the kind has no x-axis column).
	XLabel string `json:"x_label"`
	// YLabel is the y-axis label.
	YLabel string `json:"y_label"`
	// TextX is set when Points use row positions for a textual x-column.
	TextX bool `json:"text_x,omitempty"`
	// Points holds Line and Scatter data.
	Points []Point `json:"points,omitempty"`
	// Bars holds Bar data.
	Bars []Bar `json:"bars,omitempty"`
	// Bins holds Histogram data.
	Bins []Bin `json:"bins,omitempty"`
	// Boxes holds Box data, one summary per column.
	Boxes []BoxSummary `json:"boxes,omitempty"`
	// Slices holds Pie data.
	Slices []Slice `json:"slices,omitempty"`
	// Source is the dataset the chart was derived from.
	Source *Dataset `json:"-"`
}
