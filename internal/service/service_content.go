// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/samples"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// contentService is the concrete implementation of ContentService.
//
// The collection is only ever replaced, never edited in place: each mutation
// builds a new slice (copying the folder it touches) and swaps it in under
// the write lock. writeMu serializes mutations together with their change
// hook, so hooks observe collections in commit order.
type contentService struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	folders []models.Folder
	hook    ChangeHook

	storage store.SnapshotStorage
	ids     IDGenerator
	now     func() time.Time
	samples func() ([]models.Folder, error)

	validator validators.Validator

	logger *logger.Logger
}

// NewContentService constructs a ContentService that restores from storage
// and names new folders and notes with ids. The collection starts empty
// until Restore or Replace is called.
func NewContentService(storage store.SnapshotStorage, ids IDGenerator, logger *logger.Logger) ContentService {
	return &contentService{
		folders: []models.Folder{},
		storage: storage,
		ids:     ids,
		now:     time.Now,
		samples: samples.Folders,

		validator: validators.NewFolderValidator(),

		logger: logger,
	}
}

func (s *contentService) OnChange(hook func(ctx context.Context, folders []models.Folder)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.hook = hook
}

// Restore implements ContentService. A missing record is the normal first
// run; an unreadable one, or one with empty or duplicate ids, is logged and
// replaced by the sample set as well.
func (s *contentService) Restore(ctx context.Context) []models.Folder {
	log := logger.FromContext(ctx)

	folders, err := s.storage.LoadFolders(ctx)
	switch {
	case err == nil:
		if err = s.validator.Validate(ctx, folders); err != nil {
			log.Warn().Err(err).Msg("saved folders have empty or duplicate ids, using sample set")
			folders = s.sampleFolders(ctx)
			break
		}
		log.Debug().Int("folders", len(folders)).Msg("folders restored")
	case errors.Is(err, store.ErrKeyNotFound):
		log.Info().Msg("no saved folders, using sample set")
		folders = s.sampleFolders(ctx)
	default:
		log.Warn().Err(err).Msg("saved folders are unusable, using sample set")
		folders = s.sampleFolders(ctx)
	}

	restored := normalizeFolders(folders, s.stamp())

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	s.folders = restored
	s.mu.Unlock()

	return cloneFolders(restored)
}

func (s *contentService) sampleFolders(ctx context.Context) []models.Folder {
	folders, err := s.samples()
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("bundled sample set is unusable")
		return []models.Folder{}
	}
	return folders
}

func (s *contentService) Folders() []models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFolders(s.folders)
}

func (s *contentService) Summaries() []models.FolderSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]models.FolderSummary, len(s.folders))
	for i, f := range s.folders {
		summaries[i] = f.Summary()
	}
	return summaries
}

func (s *contentService) Folder(folderID string) (models.Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOfFolder(s.folders, folderID)
	if i < 0 {
		return models.Folder{}, false
	}
	return s.folders[i].Clone(), true
}

func (s *contentService) Note(folderID, noteID string) (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOfFolder(s.folders, folderID)
	if i < 0 {
		return models.Note{}, false
	}
	note, ok := s.folders[i].FindNote(noteID)
	if !ok {
		return models.Note{}, false
	}
	return note.Clone(), true
}

// CreateFolder implements ContentService. A blank name is ignored.
func (s *contentService) CreateFolder(ctx context.Context, name string) (models.Folder, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		logger.FromContext(ctx).Debug().Msg("folder with blank name ignored")
		return models.Folder{}, false
	}

	var created models.Folder
	ok := s.mutate(ctx, func(current []models.Folder) ([]models.Folder, bool) {
		created = models.Folder{
			ID:    s.uniqueID(func(id string) bool { return indexOfFolder(current, id) >= 0 }),
			Name:  name,
			Files: []models.Note{},
		}
		next := make([]models.Folder, 0, len(current)+1)
		next = append(next, current...)
		return append(next, created), true
	})

	return created.Clone(), ok
}

// DeleteFolder implements ContentService. All notes of the folder go with it.
func (s *contentService) DeleteFolder(ctx context.Context, folderID string) bool {
	return s.mutate(ctx, func(current []models.Folder) ([]models.Folder, bool) {
		i := indexOfFolder(current, folderID)
		if i < 0 {
			return nil, false
		}
		next := make([]models.Folder, 0, len(current)-1)
		next = append(next, current[:i]...)
		return append(next, current[i+1:]...), true
	})
}

// CreateNote implements ContentService. The note is appended to the folder
// with createdAt = updatedAt = now.
func (s *contentService) CreateNote(ctx context.Context, folderID, name string, content models.Document) (models.Note, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		logger.FromContext(ctx).Debug().Str("folder_id", folderID).Msg("note with blank name ignored")
		return models.Note{}, false
	}

	var created models.Note
	ok := s.mutate(ctx, func(current []models.Folder) ([]models.Folder, bool) {
		i := indexOfFolder(current, folderID)
		if i < 0 {
			return nil, false
		}

		folder := current[i].Clone()
		now := s.stamp()
		created = models.Note{
			ID:        s.uniqueID(func(id string) bool { _, taken := folder.FindNote(id); return taken }),
			Name:      name,
			Content:   normalizeDocument(content),
			CreatedAt: now,
			UpdatedAt: now,
		}
		folder.Files = append(folder.Files, created)

		return replaceFolder(current, i, folder), true
	})

	return created.Clone(), ok
}

// EditNote implements ContentService. updatedAt always moves forward, even
// when the clock has not advanced since the previous change.
func (s *contentService) EditNote(ctx context.Context, folderID, noteID, name string, content models.Document) (models.Note, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		logger.FromContext(ctx).Debug().Str("note_id", noteID).Msg("note rename to blank name ignored")
		return models.Note{}, false
	}

	var edited models.Note
	ok := s.mutate(ctx, func(current []models.Folder) ([]models.Folder, bool) {
		i := indexOfFolder(current, folderID)
		if i < 0 {
			return nil, false
		}
		folder := current[i].Clone()
		j := indexOfNote(folder.Files, noteID)
		if j < 0 {
			return nil, false
		}

		note := folder.Files[j]
		note.Name = name
		note.Content = normalizeDocument(content)
		note.UpdatedAt = nextUpdate(note, s.stamp())
		folder.Files[j] = note
		edited = note

		return replaceFolder(current, i, folder), true
	})

	return edited.Clone(), ok
}

func (s *contentService) DeleteNote(ctx context.Context, folderID, noteID string) bool {
	return s.mutate(ctx, func(current []models.Folder) ([]models.Folder, bool) {
		i := indexOfFolder(current, folderID)
		if i < 0 {
			return nil, false
		}
		j := indexOfNote(current[i].Files, noteID)
		if j < 0 {
			return nil, false
		}

		folder := current[i].Clone()
		folder.Files = append(folder.Files[:j], folder.Files[j+1:]...)

		return replaceFolder(current, i, folder), true
	})
}

// Replace implements ContentService.
func (s *contentService) Replace(ctx context.Context, folders []models.Folder) error {
	if err := s.validator.Validate(ctx, folders); err != nil {
		logger.FromContext(ctx).Err(err).Msg("collection rejected")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	next := normalizeFolders(folders, s.stamp())
	s.mutate(ctx, func([]models.Folder) ([]models.Folder, bool) {
		return next, true
	})

	return nil
}

// mutate runs apply against the current collection and, when it reports a
// change, installs the result and runs the change hook with a copy of it.
func (s *contentService) mutate(ctx context.Context, apply func(current []models.Folder) ([]models.Folder, bool)) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	next, changed := apply(s.folders)
	if !changed {
		s.mu.Unlock()
		return false
	}
	s.folders = next
	s.mu.Unlock()

	if s.hook != nil {
		s.hook(ctx, cloneFolders(next))
	}
	return true
}

// uniqueID draws ids until one is not taken.
func (s *contentService) uniqueID(taken func(id string) bool) string {
	for {
		if id := s.ids.Generate(); !taken(id) {
			return id
		}
	}
}

// stamp returns the current time at millisecond precision, the resolution
// timestamps are stored with.
func (s *contentService) stamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func nextUpdate(note models.Note, now time.Time) time.Time {
	floor := note.UpdatedAt
	if floor.Before(note.CreatedAt) {
		floor = note.CreatedAt
	}
	if !now.After(floor) {
		return floor.Add(time.Millisecond)
	}
	return now
}

// normalizeFolders returns a deep copy of folders with empty file lists
// allocated, missing timestamps filled with now and updatedAt clamped to
// createdAt.
func normalizeFolders(folders []models.Folder, now time.Time) []models.Folder {
	out := make([]models.Folder, len(folders))
	for i, f := range folders {
		f = f.Clone()
		for j, n := range f.Files {
			if n.CreatedAt.IsZero() {
				n.CreatedAt = now
			}
			if n.UpdatedAt.Before(n.CreatedAt) {
				n.UpdatedAt = n.CreatedAt
			}
			n.Content = normalizeDocument(n.Content)
			f.Files[j] = n
		}
		out[i] = f
	}
	return out
}

// normalizeDocument copies doc, turning a document without blocks into a
// single empty paragraph.
func normalizeDocument(doc models.Document) models.Document {
	if doc.Blocks == nil {
		return models.ParagraphDocument("")
	}
	return doc.Clone()
}

func replaceFolder(folders []models.Folder, i int, folder models.Folder) []models.Folder {
	next := make([]models.Folder, len(folders))
	copy(next, folders)
	next[i] = folder
	return next
}

func cloneFolders(folders []models.Folder) []models.Folder {
	out := make([]models.Folder, len(folders))
	for i, f := range folders {
		out[i] = f.Clone()
	}
	return out
}

func indexOfFolder(folders []models.Folder, folderID string) int {
	for i, f := range folders {
		if f.ID == folderID {
			return i
		}
	}
	return -1
}

func indexOfNote(notes []models.Note, noteID string) int {
	for i, n := range notes {
		if n.ID == noteID {
			return i
		}
	}
	return -1
}
