package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quotecraft/rfq-analyzer/internal/entity"
)

// Session owns everything produced during one run: the extracted
// specification, the material database, analysis results accumulated across
// uploads, the generated estimate, and saved quotes. Construction happens at
// session start and Close at session end; nothing outlives the session, no
// cross-session sharing, no persistence, no package-level state.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	mu        sync.Mutex
	spec      *entity.SpecificationData
	materials *entity.MaterialDatabase
	estimate  *entity.CostEstimate
	results   []entity.AnalysisResult
	quotes    []entity.SavedQuote
}

func New() *Session {
	return &Session{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
}

// Append records a completed analysis. The store is append-only: insertion
// order is chronological submission order, entries are never mutated or
// removed, and identical results are stored as separate entries.
func (s *Session) Append(r entity.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
}

// Results returns the stored results in insertion order.
func (s *Session) Results() []entity.AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AnalysisResult, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

func (s *Session) SetSpecification(spec entity.SpecificationData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = &spec
}

func (s *Session) Specification() (entity.SpecificationData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spec == nil {
		return entity.SpecificationData{}, false
	}
	return *s.spec, true
}

func (s *Session) SetMaterials(db entity.MaterialDatabase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials = &db
}

func (s *Session) Materials() (entity.MaterialDatabase, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.materials == nil {
		return entity.MaterialDatabase{}, false
	}
	return *s.materials, true
}

func (s *Session) SetEstimate(est entity.CostEstimate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimate = &est
}

func (s *Session) Estimate() (entity.CostEstimate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.estimate == nil {
		return entity.CostEstimate{}, false
	}
	return *s.estimate, true
}

// SaveQuote snapshots the current specification and estimate. Returns false
// when either is missing.
func (s *Session) SaveQuote() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spec == nil || s.estimate == nil {
		return false
	}
	s.quotes = append(s.quotes, entity.SavedQuote{
		Timestamp:     time.Now(),
		Specification: *s.spec,
		Estimate:      *s.estimate,
	})
	return true
}

func (s *Session) Quotes() []entity.SavedQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.SavedQuote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// Close tears the session down and drops everything it owned.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = nil
	s.materials = nil
	s.estimate = nil
	s.results = nil
	s.quotes = nil
}
