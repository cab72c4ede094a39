package ingest

import (
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/vaxboard/internal/domain"
)

// Snapshot is the immutable, fully normalized data set the whole process
// works from. It is built once at startup and passed by reference to every
// consumer; nothing re-reads source files behind its back.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time

	Doses    []*domain.DoseRecord
	Coverage []*domain.CoverageRecord
	Regions  []*domain.RegionGeometry
}
