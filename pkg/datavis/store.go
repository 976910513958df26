package datavis

import "github.com/ukaji3/datavis-go/pkg/datavis/models"

// Exporter persists an artifact to path.
type Exporter interface {
	Export(a *models.Artifact, path string) error
}

// Store holds the most recently rendered artifact. Older artifacts are discarded.
type Store struct {
	current *models.Artifact
}

// Set replaces the held artifact.
func (s *Store) Set(a *models.Artifact) {
	s.current = a
}

// Get returns the held artifact, or nil when nothing has been rendered.
func (s *Store) Get() *models.Artifact {
	return s.current
}

// Export writes the held artifact with exp.
// It returns ErrNoArtifact when the store is empty.
func (s *Store) Export(exp Exporter, path string) error {
	if s.current == nil {
		return ErrNoArtifact
	}
	return exp.Export(s.current, path)
}
