// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/folders", h.listFolders)
		r.Get("/api/folders/{folderID}", h.getFolder)
		r.Get("/api/folders/{folderID}/notes/{noteID}", h.getNote)
		r.Get("/api/folders/{folderID}/notes/{noteID}/html", h.getNoteHTML)
		r.Post("/api/admin/login", h.login)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/api/admin/folders", h.publishFolders)
		r.Post("/api/admin/folders", h.createFolder)
		r.Delete("/api/admin/folders/{folderID}", h.deleteFolder)
		r.Post("/api/admin/folders/{folderID}/notes", h.createNote)
		r.Put("/api/admin/folders/{folderID}/notes/{noteID}", h.editNote)
		r.Delete("/api/admin/folders/{folderID}/notes/{noteID}", h.deleteNote)
	})

	router.MethodNotAllowed(notFoundForWrongMethod)

	return router
}
