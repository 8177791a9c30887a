// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/samples"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// sequenceIDs hands out "1", "2", "3", ...
type sequenceIDs struct{ n int }

func (g *sequenceIDs) Generate() string {
	g.n++
	return strconv.Itoa(g.n)
}

// steppingClock advances by step on every call.
type steppingClock struct {
	t    time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

var testEpoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestContentSvc(t *testing.T, storage store.SnapshotStorage) *contentService {
	t.Helper()
	svc := NewContentService(storage, &sequenceIDs{}, logger.Nop()).(*contentService)
	clock := &steppingClock{t: testEpoch, step: time.Second}
	svc.now = clock.Now
	return svc
}

func twoBlockDocument(t *testing.T) models.Document {
	t.Helper()
	header, err := models.NewBlock("b1", models.HeaderData{Text: "FastAPI", Level: 2})
	require.NoError(t, err)
	para, err := models.NewBlock("b2", models.ParagraphData{Text: "pip install fastapi"})
	require.NoError(t, err)
	return models.Document{Blocks: []models.Block{header, para}}
}

// ── folder operations ────────────────────────────────────────────────────────

func TestContentService_CreateFolder(t *testing.T) {
	svc := newTestContentSvc(t, nil)

	folder, ok := svc.CreateFolder(context.Background(), "  Python  ")

	require.True(t, ok)
	assert.Equal(t, "1", folder.ID)
	assert.Equal(t, "Python", folder.Name)
	assert.NotNil(t, folder.Files)
	assert.Empty(t, folder.Files)
	assert.Equal(t, []models.Folder{folder}, svc.Folders())
}

func TestContentService_CreateFolder_BlankNameIsNoop(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		t.Run(strconv.Quote(name), func(t *testing.T) {
			svc := newTestContentSvc(t, nil)
			hookCalls := 0
			svc.OnChange(func(context.Context, []models.Folder) { hookCalls++ })

			_, ok := svc.CreateFolder(context.Background(), name)

			assert.False(t, ok)
			assert.Empty(t, svc.Folders())
			assert.Zero(t, hookCalls)
		})
	}
}

func TestContentService_DeleteFolder_CascadesNotes(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	keep, _ := svc.CreateFolder(ctx, "Go")
	drop, _ := svc.CreateFolder(ctx, "Python")
	_, ok := svc.CreateNote(ctx, drop.ID, "a.py", models.ParagraphDocument("x"))
	require.True(t, ok)

	require.True(t, svc.DeleteFolder(ctx, drop.ID))

	got := svc.Folders()
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].ID)
	_, found := svc.Note(drop.ID, "3")
	assert.False(t, found)
}

func TestContentService_DeleteMissingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	folder, _ := svc.CreateFolder(ctx, "Go")
	_, _ = svc.CreateNote(ctx, folder.ID, "main.go", models.ParagraphDocument("package main"))
	before := svc.Folders()

	hookCalls := 0
	svc.OnChange(func(context.Context, []models.Folder) { hookCalls++ })

	assert.False(t, svc.DeleteFolder(ctx, "missing"))
	assert.False(t, svc.DeleteNote(ctx, folder.ID, "missing"))
	assert.False(t, svc.DeleteNote(ctx, "missing", "2"))

	assert.Equal(t, before, svc.Folders())
	assert.Zero(t, hookCalls)
}

// ── note operations ──────────────────────────────────────────────────────────

func TestContentService_FastAPIScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)

	folder, ok := svc.CreateFolder(ctx, "Python")
	require.True(t, ok)

	doc := twoBlockDocument(t)
	note, ok := svc.CreateNote(ctx, folder.ID, "fastapi.md", doc)
	require.True(t, ok)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	extra, err := models.NewBlock("b3", models.CodeData{Code: "uvicorn main:app"})
	require.NoError(t, err)
	edited := doc.Clone()
	edited.Blocks = append(edited.Blocks, extra)

	_, ok = svc.EditNote(ctx, folder.ID, note.ID, "fastapi-basics.md", edited)
	require.True(t, ok)

	got, ok := svc.Note(folder.ID, note.ID)
	require.True(t, ok)
	assert.Equal(t, "fastapi-basics.md", got.Name)
	require.Len(t, got.Content.Blocks, 3)
	assert.Equal(t, doc.Blocks, got.Content.Blocks[:2])
	assert.Equal(t, models.BlockCode, got.Content.Blocks[2].Type)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	assert.Equal(t, note.CreatedAt, got.CreatedAt)
}

func TestContentService_CreateNote_NoFolderIsNoop(t *testing.T) {
	svc := newTestContentSvc(t, nil)

	_, ok := svc.CreateNote(context.Background(), "", "a.md", models.ParagraphDocument("x"))

	assert.False(t, ok)
	assert.Empty(t, svc.Folders())
}

func TestContentService_CreateNote_BlankNameIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	folder, _ := svc.CreateFolder(ctx, "Go")

	_, ok := svc.CreateNote(ctx, folder.ID, "  ", models.ParagraphDocument("x"))

	assert.False(t, ok)
	got, _ := svc.Folder(folder.ID)
	assert.Empty(t, got.Files)
}

func TestContentService_CreateNote_EmptyContentBecomesEmptyParagraph(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	folder, _ := svc.CreateFolder(ctx, "Go")

	note, ok := svc.CreateNote(ctx, folder.ID, "empty.md", models.Document{})

	require.True(t, ok)
	assert.Equal(t, models.ParagraphDocument(""), note.Content)
}

func TestContentService_EditNote_MissingIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	folder, _ := svc.CreateFolder(ctx, "Go")
	note, _ := svc.CreateNote(ctx, folder.ID, "a.md", models.ParagraphDocument("x"))

	_, ok := svc.EditNote(ctx, folder.ID, "missing", "b.md", models.ParagraphDocument("y"))
	assert.False(t, ok)
	_, ok = svc.EditNote(ctx, "missing", note.ID, "b.md", models.ParagraphDocument("y"))
	assert.False(t, ok)
	_, ok = svc.EditNote(ctx, folder.ID, note.ID, " ", models.ParagraphDocument("y"))
	assert.False(t, ok)

	got, _ := svc.Note(folder.ID, note.ID)
	assert.Equal(t, note, got)
}

func TestContentService_EditNote_UpdatedAtMovesForwardOnFrozenClock(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	svc.now = func() time.Time { return testEpoch }

	folder, _ := svc.CreateFolder(ctx, "Go")
	note, _ := svc.CreateNote(ctx, folder.ID, "a.md", models.ParagraphDocument("x"))

	first, _ := svc.EditNote(ctx, folder.ID, note.ID, "a.md", models.ParagraphDocument("y"))
	second, _ := svc.EditNote(ctx, folder.ID, note.ID, "a.md", models.ParagraphDocument("z"))

	assert.True(t, first.UpdatedAt.After(note.CreatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestContentService_EditNote_DoesNotTouchOtherNotes(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	folder, _ := svc.CreateFolder(ctx, "Go")
	a, _ := svc.CreateNote(ctx, folder.ID, "a.md", models.ParagraphDocument("a"))
	b, _ := svc.CreateNote(ctx, folder.ID, "b.md", models.ParagraphDocument("b"))

	_, ok := svc.EditNote(ctx, folder.ID, a.ID, "a2.md", models.ParagraphDocument("a2"))
	require.True(t, ok)

	got, _ := svc.Note(folder.ID, b.ID)
	assert.Equal(t, b, got)
}

// ── invariants ───────────────────────────────────────────────────────────────

func TestContentService_IDsStayUniqueAcrossRandomOperations(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(nil, &stuckIDs{}, logger.Nop()).(*contentService)
	rng := rand.New(rand.NewSource(42))

	for step := 0; step < 300; step++ {
		folders := svc.Folders()
		switch op := rng.Intn(4); {
		case op == 0 || len(folders) == 0:
			svc.CreateFolder(ctx, "f"+strconv.Itoa(step))
		case op == 1:
			svc.DeleteFolder(ctx, folders[rng.Intn(len(folders))].ID)
		case op == 2:
			svc.CreateNote(ctx, folders[rng.Intn(len(folders))].ID, "n.md", models.ParagraphDocument("x"))
		default:
			f := folders[rng.Intn(len(folders))]
			if len(f.Files) > 0 {
				svc.DeleteNote(ctx, f.ID, f.Files[rng.Intn(len(f.Files))].ID)
			}
		}

		assertUniqueIDs(t, svc.Folders())
	}
}

// stuckIDs proposes colliding ids most of the time.
type stuckIDs struct{ n int }

func (g *stuckIDs) Generate() string {
	g.n++
	return strconv.Itoa(g.n / 3)
}

func assertUniqueIDs(t *testing.T, folders []models.Folder) {
	t.Helper()
	seenFolders := map[string]bool{}
	for _, f := range folders {
		require.False(t, seenFolders[f.ID], "duplicate folder id %s", f.ID)
		seenFolders[f.ID] = true

		seenNotes := map[string]bool{}
		for _, n := range f.Files {
			require.False(t, seenNotes[n.ID], "duplicate note id %s in folder %s", n.ID, f.ID)
			seenNotes[n.ID] = true
		}
	}
}

func TestContentService_ReadersGetCopies(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	folder, _ := svc.CreateFolder(ctx, "Go")
	_, _ = svc.CreateNote(ctx, folder.ID, "a.md", models.ParagraphDocument("original"))

	got := svc.Folders()
	got[0].Name = "changed"
	got[0].Files[0].Name = "changed.md"
	got[0].Files[0].Content.Blocks[0].Data[2] = 'X'

	again := svc.Folders()
	assert.Equal(t, "Go", again[0].Name)
	assert.Equal(t, "a.md", again[0].Files[0].Name)
	assert.Equal(t, "original", again[0].Files[0].Content.PlainText())
}

func TestContentService_OldSnapshotUnchangedByLaterMutation(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	folder, _ := svc.CreateFolder(ctx, "Go")

	var snapshots [][]models.Folder
	svc.OnChange(func(_ context.Context, folders []models.Folder) {
		snapshots = append(snapshots, folders)
	})

	_, _ = svc.CreateNote(ctx, folder.ID, "a.md", models.ParagraphDocument("a"))
	_, _ = svc.CreateNote(ctx, folder.ID, "b.md", models.ParagraphDocument("b"))

	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[0][0].Files, 1)
	assert.Len(t, snapshots[1][0].Files, 2)
}

func TestContentService_SerializationRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	folder, _ := svc.CreateFolder(ctx, "Python")
	_, _ = svc.CreateNote(ctx, folder.ID, "fastapi.md", twoBlockDocument(t))
	_, _ = svc.CreateFolder(ctx, "Empty")

	raw, err := json.Marshal(svc.Folders())
	require.NoError(t, err)

	var decoded []models.Folder
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, svc.Folders(), decoded)
}

// ── Replace ──────────────────────────────────────────────────────────────────

func TestContentService_Replace(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	var hooked []models.Folder
	svc.OnChange(func(_ context.Context, folders []models.Folder) { hooked = folders })

	created := testEpoch.Add(time.Hour)
	in := []models.Folder{{
		ID:   "10",
		Name: "Published",
		Files: []models.Note{{
			ID:        "11",
			Name:      "n.md",
			Content:   models.ParagraphDocument("x"),
			CreatedAt: created,
			UpdatedAt: created.Add(-time.Minute),
		}},
	}, {ID: "12", Name: "No files"}}

	require.NoError(t, svc.Replace(ctx, in))

	got := svc.Folders()
	require.Len(t, got, 2)
	assert.Equal(t, created, got[0].Files[0].UpdatedAt, "updatedAt is clamped to createdAt")
	assert.NotNil(t, got[1].Files)
	assert.Equal(t, got, hooked)

	in[0].Name = "mutated by caller"
	assert.Equal(t, "Published", svc.Folders()[0].Name)
}

func TestContentService_Replace_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		folders []models.Folder
		target  error
	}{
		{
			name:    "duplicate folder id",
			folders: []models.Folder{{ID: "1"}, {ID: "1"}},
			target:  ErrDuplicateFolderID,
		},
		{
			name:    "duplicate note id",
			folders: []models.Folder{{ID: "1", Files: []models.Note{{ID: "2"}, {ID: "2"}}}},
			target:  ErrDuplicateNoteID,
		},
		{
			name:    "empty folder id",
			folders: []models.Folder{{Name: "x"}},
			target:  ErrInvalidDataProvided,
		},
		{
			name:    "empty note id",
			folders: []models.Folder{{ID: "1", Files: []models.Note{{Name: "x"}}}},
			target:  ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestContentSvc(t, nil)
			_, _ = svc.CreateFolder(context.Background(), "existing")

			err := svc.Replace(context.Background(), tt.folders)

			require.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.Len(t, svc.Folders(), 1)
		})
	}
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestContentService_Restore(t *testing.T) {
	sampleSet := samples.MustFolders()
	saved := []models.Folder{{ID: "7", Name: "Saved", Files: []models.Note{}}}

	tests := []struct {
		name     string
		folders  []models.Folder
		err      error
		expected []models.Folder
	}{
		{name: "saved collection", folders: saved, expected: saved},
		{name: "nothing saved", err: store.ErrKeyNotFound, expected: sampleSet},
		{name: "malformed record", err: store.ErrMalformedSnapshot, expected: sampleSet},
		{name: "storage failure", err: errors.New("disk on fire"), expected: sampleSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockSnapshotStorage(ctrl)
			storage.EXPECT().LoadFolders(gomock.Any()).Return(tt.folders, tt.err)

			svc := newTestContentSvc(t, storage)
			hookCalls := 0
			svc.OnChange(func(context.Context, []models.Folder) { hookCalls++ })

			got := svc.Restore(context.Background())

			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected, svc.Folders())
			assert.Zero(t, hookCalls, "restoring must not trigger the change hook")
		})
	}
}

func TestContentService_Restore_NotJSONFallsBackToSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyValueRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), store.FoldersKey).Return([]byte("{not json"), nil)

	svc := newTestContentSvc(t, store.NewSnapshotStorage(repo, logger.Nop()))

	var got []models.Folder
	require.NotPanics(t, func() { got = svc.Restore(context.Background()) })
	assert.Equal(t, samples.MustFolders(), got)
}

func TestContentService_Restore_DuplicateIDsFallBackToSamples(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{
			name:   "duplicate folder ids",
			stored: `[{"id":"1","name":"A","files":[]},{"id":"1","name":"B","files":[]}]`,
		},
		{
			name: "duplicate note ids",
			stored: `[{"id":"1","name":"A","files":[
				{"id":"9","name":"a.md","content":"x"},
				{"id":"9","name":"b.md","content":"y"}]}]`,
		},
		{
			name:   "empty folder id",
			stored: `[{"id":"","name":"A","files":[]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockKeyValueRepository(ctrl)
			repo.EXPECT().Get(gomock.Any(), store.FoldersKey).Return([]byte(tt.stored), nil)

			svc := newTestContentSvc(t, store.NewSnapshotStorage(repo, logger.Nop()))

			got := svc.Restore(context.Background())
			assert.Equal(t, samples.MustFolders(), got)
			assert.Equal(t, samples.MustFolders(), svc.Folders())
		})
	}
}

func TestContentService_Restore_LegacyStringContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyValueRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), store.FoldersKey).Return([]byte(`[{"id":"1","name":"Old","files":[
		{"id":"2","name":"legacy.txt","content":"plain body",
		 "createdAt":"2024-01-15T00:00:00.000Z","updatedAt":"2024-01-16T00:00:00.000Z"}]}]`), nil)

	svc := newTestContentSvc(t, store.NewSnapshotStorage(repo, logger.Nop()))
	svc.Restore(context.Background())

	note, ok := svc.Note("1", "2")
	require.True(t, ok)
	require.Len(t, note.Content.Blocks, 1)
	assert.Equal(t, models.ParagraphData{Text: "plain body"}, note.Content.Blocks[0].Decode())
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), note.UpdatedAt)
}

func TestContentService_Restore_BrokenSamplesYieldEmptyCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSnapshotStorage(ctrl)
	storage.EXPECT().LoadFolders(gomock.Any()).Return(nil, store.ErrKeyNotFound)

	svc := newTestContentSvc(t, storage)
	svc.samples = func() ([]models.Folder, error) { return nil, errors.New("broken") }

	assert.Empty(t, svc.Restore(context.Background()))
	assert.NotNil(t, svc.Folders())
}

// ── Summaries ────────────────────────────────────────────────────────────────

func TestContentService_Summaries(t *testing.T) {
	ctx := context.Background()
	svc := newTestContentSvc(t, nil)
	a, _ := svc.CreateFolder(ctx, "A")
	b, _ := svc.CreateFolder(ctx, "B")
	_, _ = svc.CreateNote(ctx, b.ID, "1.md", models.ParagraphDocument(""))
	_, _ = svc.CreateNote(ctx, b.ID, "2.md", models.ParagraphDocument(""))

	assert.Equal(t, []models.FolderSummary{
		{ID: a.ID, Name: "A", NoteCount: 0},
		{ID: b.ID, Name: "B", NoteCount: 2},
	}, svc.Summaries())
}
