// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	content *mock.MockContentService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	router  http.Handler
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		content: mock.NewMockContentService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		ContentService: ts.content,
		AuthService:    ts.auth,
		AppInfoService: ts.appInfo,
	}, logger.Nop())
	ts.router = h.Init()

	return ts
}

// authorize makes "good-token" a valid admin token.
func (ts *testServices) authorize() {
	ts.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.Token{Login: "admin"}, nil).AnyTimes()
}

func (ts *testServices) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func (ts *testServices) doAdmin(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return ts.do(t, method, target, body, "Authorization", "Bearer good-token")
}

func errorBody(msg string) string { return msg + "\n" }

func sampleNote() models.Note {
	return models.Note{
		ID:      "n1",
		Name:    "fastapi.md",
		Content: models.ParagraphDocument("routing <basics>"),
	}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Public routes
// ─────────────────────────────────────────────

func TestListFolders(t *testing.T) {
	ts := newTestServices(t)
	ts.content.EXPECT().Summaries().Return([]models.FolderSummary{{ID: "f1", Name: "Python", NoteCount: 2}})

	rr := ts.do(t, http.MethodGet, "/api/folders", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":"f1","name":"Python","noteCount":2}]`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestGetFolder(t *testing.T) {
	tests := []struct {
		name       string
		found      bool
		wantStatus int
		wantBody   string
	}{
		{"found", true, http.StatusOK, `{"id":"f1","name":"Python","files":[]}`},
		{"missing", false, http.StatusNotFound, errorBody(app.MsgFolderNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServices(t)
			folder := models.Folder{}
			if tt.found {
				folder = models.Folder{ID: "f1", Name: "Python", Files: []models.Note{}}
			}
			ts.content.EXPECT().Folder("f1").Return(folder, tt.found)

			rr := ts.do(t, http.MethodGet, "/api/folders/f1", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.found {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			} else {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestGetNote(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ts := newTestServices(t)
		ts.content.EXPECT().Folder("f1").Return(models.Folder{ID: "f1"}, true)
		ts.content.EXPECT().Note("f1", "n1").Return(sampleNote(), true)

		rr := ts.do(t, http.MethodGet, "/api/folders/f1/notes/n1", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"fastapi.md"`)
		assert.Contains(t, rr.Body.String(), `"blocks":[{"type":"paragraph"`)
	})

	t.Run("folder missing", func(t *testing.T) {
		ts := newTestServices(t)
		ts.content.EXPECT().Folder("f1").Return(models.Folder{}, false)

		rr := ts.do(t, http.MethodGet, "/api/folders/f1/notes/n1", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, errorBody(app.MsgFolderNotFound), rr.Body.String())
	})

	t.Run("note missing", func(t *testing.T) {
		ts := newTestServices(t)
		ts.content.EXPECT().Folder("f1").Return(models.Folder{ID: "f1"}, true)
		ts.content.EXPECT().Note("f1", "n9").Return(models.Note{}, false)

		rr := ts.do(t, http.MethodGet, "/api/folders/f1/notes/n9", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, errorBody(app.MsgNoteNotFound), rr.Body.String())
	})
}

func TestGetNoteHTML(t *testing.T) {
	ts := newTestServices(t)
	ts.content.EXPECT().Folder("f1").Return(models.Folder{ID: "f1"}, true)
	ts.content.EXPECT().Note("f1", "n1").Return(sampleNote(), true)

	rr := ts.do(t, http.MethodGet, "/api/folders/f1/notes/n1/html", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<title>fastapi.md</title>")
	assert.Contains(t, rr.Body.String(), "<p>routing &lt;basics&gt;</p>")
}

func TestGetServerVersion(t *testing.T) {
	ts := newTestServices(t)
	ts.appInfo.EXPECT().GetVersionInfo(gomock.Any()).Return(models.VersionInfo{Version: "1.2.3", BuildCommit: "abc"})

	rr := ts.do(t, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3","buildCommit":"abc"}`, rr.Body.String())
}

func TestWrongMethodAnswersNotFound(t *testing.T) {
	ts := newTestServices(t)

	rr := ts.do(t, http.MethodDelete, "/api/folders", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	creds := models.Credentials{Login: "admin", Password: "pw"}

	tests := []struct {
		name       string
		body       string
		setup      func(ts *testServices)
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "success",
			body: `{"login":"admin","password":"pw"}`,
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Login(gomock.Any(), creds).Return(models.Admin{Login: "admin"}, nil)
				ts.auth.EXPECT().CreateToken(gomock.Any(), models.Admin{Login: "admin"}).Return(models.Token{SignedString: "jwt"}, nil)
			},
			wantStatus: http.StatusOK,
			wantHeader: "Bearer jwt",
		},
		{
			name:       "invalid json",
			body:       `{"login":`,
			setup:      func(*testServices) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   errorBody(app.MsgInvalidDataProvided),
		},
		{
			name: "wrong password",
			body: `{"login":"admin","password":"pw"}`,
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Login(gomock.Any(), creds).Return(models.Admin{}, service.ErrWrongPassword)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   errorBody(app.MsgInvalidLoginPassword),
		},
		{
			name: "login not configured",
			body: `{"login":"admin","password":"pw"}`,
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Login(gomock.Any(), creds).Return(models.Admin{}, service.ErrLoginNotConfigured)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   errorBody(app.MsgLoginNotConfigured),
		},
		{
			name: "token creation fails",
			body: `{"login":"admin","password":"pw"}`,
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Login(gomock.Any(), creds).Return(models.Admin{Login: "admin"}, nil)
				ts.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   errorBody(app.MsgInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServices(t)
			tt.setup(ts)

			rr := ts.do(t, http.MethodPost, "/api/admin/login", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantHeader, rr.Header().Get("Authorization"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

// ─────────────────────────────────────────────
// Admin routes
// ─────────────────────────────────────────────

func TestAdminRoutes_RequireToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(ts *testServices)
		wantBody string
	}{
		{"no header", "", func(*testServices) {}, errorBody(ErrEmptyAuthorizationHeader.Error())},
		{"wrong scheme", "Token abc", func(*testServices) {}, errorBody("invalid authorization header")},
		{
			"expired", "Bearer old",
			func(ts *testServices) {
				ts.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)
			},
			errorBody(app.MsgTokenIsExpired),
		},
		{
			"invalid", "Bearer forged",
			func(ts *testServices) {
				ts.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			errorBody(app.MsgTokenIsExpiredOrInvalid),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServices(t)
			tt.setup(ts)

			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}
			rr := ts.do(t, http.MethodPost, "/api/admin/folders", `{"name":"x"}`, headers...)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestPublishFolders(t *testing.T) {
	t.Run("replaces collection and coerces string content", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, folders []models.Folder) error {
			require.Len(t, folders, 1)
			require.Len(t, folders[0].Files, 1)
			assert.Equal(t, models.ParagraphDocument("legacy"), folders[0].Files[0].Content)
			return nil
		})

		body := `[{"id":"1","name":"A","files":[{"id":"2","name":"a.txt","content":"legacy","createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}]}]`
		rr := ts.doAdmin(t, http.MethodPut, "/api/admin/folders", body)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("null body publishes an empty collection", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().Replace(gomock.Any(), []models.Folder{}).Return(nil)

		rr := ts.doAdmin(t, http.MethodPut, "/api/admin/folders", `null`)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().Replace(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: %w: 1", service.ErrInvalidDataProvided, service.ErrDuplicateFolderID))

		rr := ts.doAdmin(t, http.MethodPut, "/api/admin/folders", `[]`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, errorBody(app.MsgDuplicateID), rr.Body.String())
	})

	t.Run("unsupported content", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()

		rr := ts.doAdmin(t, http.MethodPut, "/api/admin/folders", `[{"id":"1","name":"A","files":[{"id":"2","name":"x","content":42}]}]`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, errorBody(app.MsgInvalidDataProvided), rr.Body.String())
	})
}

func TestCreateFolder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().CreateFolder(gomock.Any(), "Python").
			Return(models.Folder{ID: "100", Name: "Python", Files: []models.Note{}}, true)

		rr := ts.doAdmin(t, http.MethodPost, "/api/admin/folders", `{"name":"Python"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":"100","name":"Python","files":[]}`, rr.Body.String())
	})

	t.Run("blank name", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().CreateFolder(gomock.Any(), "  ").Return(models.Folder{}, false)

		rr := ts.doAdmin(t, http.MethodPost, "/api/admin/folders", `{"name":"  "}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, errorBody(app.MsgEmptyName), rr.Body.String())
	})
}

func TestDeleteFolder(t *testing.T) {
	ts := newTestServices(t)
	ts.authorize()
	ts.content.EXPECT().DeleteFolder(gomock.Any(), "f1").Return(true)
	ts.content.EXPECT().DeleteFolder(gomock.Any(), "f2").Return(false)

	assert.Equal(t, http.StatusNoContent, ts.doAdmin(t, http.MethodDelete, "/api/admin/folders/f1", "").Code)

	rr := ts.doAdmin(t, http.MethodDelete, "/api/admin/folders/f2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, errorBody(app.MsgFolderNotFound), rr.Body.String())
}

func TestCreateNote(t *testing.T) {
	t.Run("string content becomes a paragraph", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().CreateNote(gomock.Any(), "f1", "a.md", models.ParagraphDocument("hello")).
			Return(models.Note{ID: "n1", Name: "a.md", Content: models.ParagraphDocument("hello")}, true)

		rr := ts.doAdmin(t, http.MethodPost, "/api/admin/folders/f1/notes", `{"name":"a.md","content":"hello"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"n1"`)
	})

	t.Run("blank name never reaches the store", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()

		rr := ts.doAdmin(t, http.MethodPost, "/api/admin/folders/f1/notes", `{"name":" ","content":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, errorBody(app.MsgEmptyName), rr.Body.String())
	})

	t.Run("unknown folder", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().CreateNote(gomock.Any(), "f9", "a.md", gomock.Any()).Return(models.Note{}, false)

		rr := ts.doAdmin(t, http.MethodPost, "/api/admin/folders/f9/notes", `{"name":"a.md","content":{"blocks":[]}}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, errorBody(app.MsgFolderNotFound), rr.Body.String())
	})
}

func TestEditNote(t *testing.T) {
	doc := `{"blocks":[{"type":"header","data":{"text":"T","level":2}}]}`

	t.Run("edited", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().EditNote(gomock.Any(), "f1", "n1", "b.md", gomock.Any()).
			Return(models.Note{ID: "n1", Name: "b.md"}, true)

		rr := ts.doAdmin(t, http.MethodPut, "/api/admin/folders/f1/notes/n1", `{"name":"b.md","content":`+doc+`}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"b.md"`)
	})

	t.Run("note missing", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().EditNote(gomock.Any(), "f1", "n9", "b.md", gomock.Any()).Return(models.Note{}, false)
		ts.content.EXPECT().Folder("f1").Return(models.Folder{ID: "f1"}, true)

		rr := ts.doAdmin(t, http.MethodPut, "/api/admin/folders/f1/notes/n9", `{"name":"b.md","content":`+doc+`}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, errorBody(app.MsgNoteNotFound), rr.Body.String())
	})

	t.Run("folder missing", func(t *testing.T) {
		ts := newTestServices(t)
		ts.authorize()
		ts.content.EXPECT().EditNote(gomock.Any(), "f9", "n1", "b.md", gomock.Any()).Return(models.Note{}, false)
		ts.content.EXPECT().Folder("f9").Return(models.Folder{}, false)

		rr := ts.doAdmin(t, http.MethodPut, "/api/admin/folders/f9/notes/n1", `{"name":"b.md"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, errorBody(app.MsgFolderNotFound), rr.Body.String())
	})
}

func TestDeleteNote(t *testing.T) {
	ts := newTestServices(t)
	ts.authorize()
	ts.content.EXPECT().DeleteNote(gomock.Any(), "f1", "n1").Return(true)
	ts.content.EXPECT().DeleteNote(gomock.Any(), "f1", "n1").Return(false)

	assert.Equal(t, http.StatusNoContent, ts.doAdmin(t, http.MethodDelete, "/api/admin/folders/f1/notes/n1", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.doAdmin(t, http.MethodDelete, "/api/admin/folders/f1/notes/n1", "").Code)
}
