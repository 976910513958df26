package datavis

import (
	"os"
	"path/filepath"

	"github.com/ukaji3/datavis-go/pkg/datavis/draw"
	"github.com/ukaji3/datavis-go/pkg/datavis/models"
	"github.com/ukaji3/datavis-go/pkg/datavis/parser"
)

// DefaultExportExt is appended to export paths that have no extension.
const DefaultExportExt = ".png"

// Session owns the current dataset and the current chart.
// Each call runs to completion; callers serialize access.
type Session struct {
	opts     Options
	exporter Exporter
	dataset  *models.Dataset
	store    Store
}

// NewSession creates a session. A nil exporter writes PNG images
// sized by opts.
func NewSession(opts Options, exporter Exporter) *Session {
	if exporter == nil {
		exporter = draw.NewPNGExporter(opts.Width, opts.Height)
	}
	return &Session{
		opts:     opts,
		exporter: exporter,
	}
}

// Load reads a CSV or XLSX file and makes it the current dataset.
// On failure the previous dataset is kept.
func (s *Session) Load(path string) (*models.Dataset, error) {
	format, err := parser.FormatFromPath(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}
	return s.LoadBytes(data, filepath.Base(path), format)
}

// LoadBytes parses data with the given format and makes it the current dataset.
// On failure the previous dataset is kept.
func (s *Session) LoadBytes(data []byte, name string, format parser.Format) (*models.Dataset, error) {
	ds, err := parser.Parse(data, name, format)
	if err != nil {
		return nil, NewLoadError(name, err)
	}
	s.dataset = ds
	return ds, nil
}

// Dataset returns the current dataset, or nil before the first load.
func (s *Session) Dataset() *models.Dataset {
	return s.dataset
}

// Columns lists the column names of the current dataset.
func (s *Session) Columns() []string {
	return Columns(s.dataset)
}

// ResolveAndRender validates req against the current dataset, renders it,
// and makes the result the current artifact. On failure the current artifact
// is unchanged.
func (s *Session) ResolveAndRender(req models.Request) (*models.Artifact, error) {
	spec, err := Resolve(s.dataset, req)
	if err != nil {
		return nil, err
	}
	a := Render(spec, s.opts)
	s.store.Set(a)
	return a, nil
}

// Current returns the current artifact, or nil.
func (s *Session) Current() *models.Artifact {
	return s.store.Get()
}

// ExportCurrent writes the current artifact to path and returns the path written.
// A path without an extension gets DefaultExportExt.
func (s *Session) ExportCurrent(path string) (string, error) {
	if filepath.Ext(path) == "" {
		path += DefaultExportExt
	}
	if err := s.store.Export(s.exporter, path); err != nil {
		return "", err
	}
	return path, nil
}
