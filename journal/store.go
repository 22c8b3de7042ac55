package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/addness-teambase/kyonodekita-sub002/models"
)

var (
	ErrEmptyNote = errors.New("note must not be empty")
	ErrNoChild   = errors.New("no active child selected")
)

// RecordSource is the remote collaborator holding the authoritative record
// table. The production implementation is GORM-backed; tests substitute a
// fake that plays the server.
type RecordSource interface {
	Create(ctx context.Context, rec *models.Record) error
	Update(ctx context.Context, id uint, category Category, note string) error
	Delete(ctx context.Context, id uint) error
	FetchAll(ctx context.Context, accountID uint) ([]models.Record, error)
}

// RecordStore holds one account's journal entries. Every mutation goes to
// the source first and is followed by a full reload; the local list is
// replaced wholesale and never patched optimistically, so after any
// successful mutation it matches exactly what the source would return. On a
// failed mutation the local list is left untouched.
type RecordStore struct {
	src       RecordSource
	accountID uint
	entries   []models.Record
}

func NewRecordStore(src RecordSource, accountID uint) *RecordStore {
	return &RecordStore{src: src, accountID: accountID}
}

// Reload replaces the local list with a fresh fetch from the source.
func (s *RecordStore) Reload(ctx context.Context) error {
	entries, err := s.src.FetchAll(ctx, s.accountID)
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

// Add validates and submits a new entry, then reloads. Validation failures
// happen before any source call.
func (s *RecordStore) Add(ctx context.Context, childID uint, category Category, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return ErrEmptyNote
	}
	if childID == 0 {
		return ErrNoChild
	}
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", category)
	}

	rec := models.Record{
		AccountID: s.accountID,
		ChildID:   childID,
		Category:  string(category),
		Note:      note,
	}
	if err := s.src.Create(ctx, &rec); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// Update replaces an entry's category and note in place, then reloads.
func (s *RecordStore) Update(ctx context.Context, id uint, category Category, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return ErrEmptyNote
	}
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", category)
	}
	if err := s.src.Update(ctx, id, category, note); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// Delete removes an entry remotely, then reloads.
func (s *RecordStore) Delete(ctx context.Context, id uint) error {
	if err := s.src.Delete(ctx, id); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// Entries returns the current local list.
func (s *RecordStore) Entries() []models.Record {
	return s.entries
}

// ForChild returns the entries belonging to one child.
func (s *RecordStore) ForChild(childID uint) []models.Record {
	out := make([]models.Record, 0, len(s.entries))
	for _, rec := range s.entries {
		if rec.ChildID == childID {
			out = append(out, rec)
		}
	}
	return out
}
