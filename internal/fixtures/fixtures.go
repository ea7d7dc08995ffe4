// Package fixtures holds the in-memory datasets behind the admin and
// dashboard screens: feature toggles, document templates, and consumption
// logs. They stand in for a real backend; nothing here survives a restart.
package fixtures

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Feature is a platform feature toggle managed from the admin area.
type Feature struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Enabled     bool      `json:"enabled"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Template is a document template offered for translation/certification.
type Template struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ConsumptionLog is one processed document's credit consumption entry.
type ConsumptionLog struct {
	ID          uuid.UUID `json:"id"`
	AccountName string    `json:"accountName"`
	Document    string    `json:"document"`
	Pages       int       `json:"pages"`
	Credits     int       `json:"credits"`
	ProcessedAt time.Time `json:"processedAt"`
}

// Store holds the seeded datasets. Toggling mutates shared state, so reads
// and writes go through the mutex.
type Store struct {
	mu        sync.RWMutex
	features  []Feature
	templates []Template
	logs      []ConsumptionLog
}

// NewSeeded returns a Store populated with representative data.
func NewSeeded() *Store {
	now := time.Now()
	return &Store{
		features: []Feature{
			{ID: uuid.New(), Key: "certified-translations", Name: "Certified translations", Description: "Offer sworn/certified output for supported language pairs", Enabled: true, UpdatedAt: now},
			{ID: uuid.New(), Key: "bulk-upload", Name: "Bulk upload", Description: "Allow uploading multiple documents in one job", Enabled: true, UpdatedAt: now},
			{ID: uuid.New(), Key: "ocr-handwriting", Name: "Handwriting OCR", Description: "Experimental handwriting recognition pipeline", Enabled: false, UpdatedAt: now},
			{ID: uuid.New(), Key: "team-invites", Name: "Team invites", Enabled: true, UpdatedAt: now},
		},
		templates: []Template{
			{ID: uuid.New(), Name: "Birth certificate", Kind: "certificate", SourceLanguage: "es", TargetLanguage: "en", UpdatedAt: now},
			{ID: uuid.New(), Name: "Academic transcript", Kind: "transcript", SourceLanguage: "es", TargetLanguage: "en", UpdatedAt: now},
			{ID: uuid.New(), Name: "Employment contract", Kind: "contract", SourceLanguage: "en", TargetLanguage: "es", UpdatedAt: now},
		},
		logs: []ConsumptionLog{
			{ID: uuid.New(), AccountName: "Acme Legal", Document: "merger-agreement.pdf", Pages: 42, Credits: 84, ProcessedAt: now.Add(-36 * time.Hour)},
			{ID: uuid.New(), AccountName: "Acme Legal", Document: "birth-cert-2341.jpg", Pages: 1, Credits: 3, ProcessedAt: now.Add(-12 * time.Hour)},
			{ID: uuid.New(), AccountName: "Norte Consultores", Document: "transcript-uv.pdf", Pages: 6, Credits: 12, ProcessedAt: now.Add(-2 * time.Hour)},
		},
	}
}

// Features returns a copy of the feature toggles.
func (s *Store) Features() []Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Feature, len(s.features))
	copy(out, s.features)
	return out
}

// ToggleFeature flips a feature by ID and returns the updated record, or
// false when no feature has that ID.
func (s *Store) ToggleFeature(id uuid.UUID) (Feature, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.features {
		if s.features[i].ID == id {
			s.features[i].Enabled = !s.features[i].Enabled
			s.features[i].UpdatedAt = time.Now()
			return s.features[i], true
		}
	}
	return Feature{}, false
}

// Templates returns a copy of the document templates.
func (s *Store) Templates() []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// Logs returns a copy of the consumption log entries.
func (s *Store) Logs() []ConsumptionLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ConsumptionLog, len(s.logs))
	copy(out, s.logs)
	return out
}
