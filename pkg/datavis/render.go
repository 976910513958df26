package datavis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

// NoColumn is shown in titles in place of an absent x-column.
const NoColumn = "None"

// Render builds a chart artifact from a resolved spec.
// It does not fail: every incompatibility is rejected by Resolve.
func Render(spec *models.ResolvedSpec, opts Options) *models.Artifact {
	req := spec.Request
	xName := req.XColumn
	if xName == "" {
		xName = NoColumn
	}

	a := &models.Artifact{
		ID:     uuid.NewString(),
		Kind:   req.Kind,
		Title:  fmt.Sprintf("%s of %s vs %s", req.Kind.Label(), req.YColumn, xName),
		XLabel: req.XColumn,
		YLabel: req.YColumn,
		Source: spec.Source,
	}

	switch req.Kind {
	case models.KindLine, models.KindScatter:
		a.Points, a.TextX = pairPoints(spec.X, spec.Y)
	case models.KindBar:
		a.Bars = bars(spec.X, spec.Y)
	case models.KindHistogram:
		a.Bins = histogram(spec.Y.PresentNumbers(), opts.binCount())
	case models.KindBox:
		a.Boxes = []models.BoxSummary{
			summarize(spec.X.Name, spec.X.PresentNumbers()),
			summarize(spec.Y.Name, spec.Y.PresentNumbers()),
		}
	case models.KindPie:
		a.Slices = tally(categories(spec.Y))
	}

	return a
}

// pairPoints pairs x and y row by row, skipping rows with a missing value.
// A textual x-column is plotted against row position.
func pairPoints(x, y *models.Column) ([]models.Point, bool) {
	textX := !x.IsNumeric()
	points := make([]models.Point, 0, y.Len())
	for i, yv := range y.Numbers {
		if math.IsNaN(yv) {
			continue
		}
		p := models.Point{Y: yv, Label: x.Values[i]}
		if textX {
			p.X = float64(i)
		} else {
			if math.IsNaN(x.Numbers[i]) {
				continue
			}
			p.X = x.Numbers[i]
		}
		points = append(points, p)
	}
	return points, textX
}

// bars pairs rows raw for a numeric y-column and counts distinct values otherwise.
func bars(x, y *models.Column) []models.Bar {
	if y.Type == models.ColumnCategorical {
		slices := tally(categories(y))
		out := make([]models.Bar, len(slices))
		for i, s := range slices {
			out[i] = models.Bar{Label: s.Label, Value: float64(s.Count)}
		}
		return out
	}

	points, _ := pairPoints(x, y)
	out := make([]models.Bar, len(points))
	for i, p := range points {
		out[i] = models.Bar{Label: p.Label, Value: p.Y}
	}
	return out
}

// histogram buckets values into n equal-width bins over [min, max].
// Constant data gets a single bin centred on the value.
func histogram(values []float64, n int) []models.Bin {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if lo == hi {
		return []models.Bin{{Start: lo - 0.5, End: hi + 0.5, Count: len(values)}}
	}

	// Scale before subtracting so ranges near the float64 limits stay finite.
	width := hi/float64(n) - lo/float64(n)
	bins := make([]models.Bin, n)
	for i := range bins {
		bins[i].Start = lo + float64(i)*width
		bins[i].End = lo + float64(i+1)*width
	}
	bins[0].Start = lo
	bins[n-1].End = hi

	for _, v := range values {
		bins[binIndex(v, lo, width, n)].Count++
	}
	return bins
}

// binIndex returns the bucket of v, clamped to [0, n-1].
func binIndex(v, lo, width float64, n int) int {
	pos := (v - lo) / width
	if math.IsInf(v-lo, 0) {
		pos = v/width - lo/width
	}
	switch {
	case !(pos >= 0):
		return 0
	case pos >= float64(n):
		return n - 1
	}
	return int(pos)
}

// summarize computes the five-number summary of values.
func summarize(name string, values []float64) models.BoxSummary {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return models.BoxSummary{
		Name:   name,
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile returns the q-th quantile of sorted values using linear interpolation.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

// categories returns the values to count for c. Cells of a numeric column
// are grouped by parsed value, so "1" and "1.0" fall in the same category.
func categories(c *models.Column) []string {
	if c.Numbers == nil {
		return c.Values
	}
	out := make([]string, len(c.Numbers))
	for i, v := range c.Numbers {
		if !math.IsNaN(v) {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return out
}

// tally counts distinct non-empty values, most frequent first.
// Ties keep first-seen order.
func tally(values []string) []models.Slice {
	index := make(map[string]int)
	var slices []models.Slice
	total := 0
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		total++
		if i, ok := index[v]; ok {
			slices[i].Count++
			continue
		}
		index[v] = len(slices)
		slices = append(slices, models.Slice{Label: v, Count: 1})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Count > slices[j].Count
	})
	for i := range slices {
		slices[i].Fraction = float64(slices[i].Count) / float64(total)
	}
	return slices
}
