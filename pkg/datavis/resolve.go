package datavis

import (
	"math"
	"strings"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

// Resolve validates req against ds and attaches the column data needed to render it.
//
// Checks run in a fixed order and the first failure is returned:
// missing kind, missing y-column, missing x-column (Line, Bar, Scatter, Box),
// unknown column, then kind-specific data compatibility.
// The x-column of Histogram and Pie is not validated because it is only used in the title.
func Resolve(ds *models.Dataset, req models.Request) (*models.ResolvedSpec, error) {
	req.XColumn = strings.TrimSpace(req.XColumn)
	req.YColumn = strings.TrimSpace(req.YColumn)

	if !req.Kind.Valid() {
		return nil, NewValidationError(ErrMissingKind, "", "", "")
	}
	if req.YColumn == "" {
		return nil, NewValidationError(ErrMissingYColumn, req.Kind, "", "")
	}
	needX := req.Kind.RequiresX()
	if needX && req.XColumn == "" {
		return nil, NewValidationError(ErrMissingXColumn, req.Kind, "", "")
	}

	var x *models.Column
	if needX {
		col, ok := ds.Column(req.XColumn)
		if !ok {
			return nil, NewValidationError(ErrUnknownColumn, req.Kind, req.XColumn, "")
		}
		x = col
	}
	y, ok := ds.Column(req.YColumn)
	if !ok {
		return nil, NewValidationError(ErrUnknownColumn, req.Kind, req.YColumn, "")
	}

	spec := &models.ResolvedSpec{
		Request: req,
		X:       x,
		Y:       y,
		Source:  ds,
	}

	switch req.Kind {
	case models.KindLine, models.KindScatter:
		if err := requireNumeric(req.Kind, y); err != nil {
			return nil, err
		}
		if !hasPairs(x, y) {
			return nil, NewValidationError(ErrIncompatibleData, req.Kind, y.Name, "no rows with both values present")
		}
	case models.KindBar:
		if y.IsNumeric() {
			if !hasPairs(x, y) {
				return nil, NewValidationError(ErrIncompatibleData, req.Kind, y.Name, "no rows with both values present")
			}
			break
		}
		if !hasCategories(y) {
			return nil, NewValidationError(ErrIncompatibleData, req.Kind, y.Name, "no values to count")
		}
		spec.Y = y.Categorical()
	case models.KindHistogram:
		if err := requireNumeric(req.Kind, y); err != nil {
			return nil, err
		}
	case models.KindBox:
		if err := requireNumeric(req.Kind, x); err != nil {
			return nil, err
		}
		if err := requireNumeric(req.Kind, y); err != nil {
			return nil, err
		}
	case models.KindPie:
		if !hasCategories(y) {
			return nil, NewValidationError(ErrIncompatibleData, req.Kind, y.Name, "no values to count")
		}
		spec.Y = y.Categorical()
	}

	return spec, nil
}

// requireNumeric fails unless c is numeric with at least one present value.
func requireNumeric(kind models.ChartKind, c *models.Column) error {
	if !c.IsNumeric() {
		return NewValidationError(ErrIncompatibleData, kind, c.Name, "column is not numeric")
	}
	if len(c.PresentNumbers()) == 0 {
		return NewValidationError(ErrIncompatibleData, kind, c.Name, "column has no values")
	}
	return nil
}

// hasPairs reports whether at least one row can be plotted from x and numeric y.
// Textual x cells always pair; numeric x cells pair when present.
func hasPairs(x, y *models.Column) bool {
	for i, v := range y.Numbers {
		if math.IsNaN(v) {
			continue
		}
		if !x.IsNumeric() || !math.IsNaN(x.Numbers[i]) {
			return true
		}
	}
	return false
}

// hasCategories reports whether c has at least one non-empty value.
func hasCategories(c *models.Column) bool {
	for _, v := range c.Values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
