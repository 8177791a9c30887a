// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/render"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// folderRequest is the body of POST /api/admin/folders.
type folderRequest struct {
	Name string `json:"name"`
}

// noteRequest is the body of the note create and edit routes. Content may
// be a document object or a plain string.
type noteRequest struct {
	Name    string          `json:"name"`
	Content json.RawMessage `json:"content"`
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	summaries := h.services.ContentService.Summaries()

	if _, err := utils.WriteJSON(w, summaries, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write folder list")
	}
}

func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderID")

	folder, ok := h.services.ContentService.Folder(folderID)
	if !ok {
		writeError(w, service.ErrFolderNotFound)
		return
	}

	if _, err := utils.WriteJSON(w, folder, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write folder")
	}
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.findNote(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write note")
	}
}

// getNoteHTML answers with the note rendered as a standalone HTML page.
func (h *Handler) getNoteHTML(w http.ResponseWriter, r *http.Request) {
	note, err := h.findNote(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page := render.Page(note.Name, render.Document(&note.Content))
	if _, err = utils.WriteHTML(w, page, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write note page")
	}
}

func (h *Handler) findNote(r *http.Request) (models.Note, error) {
	folderID := chi.URLParam(r, "folderID")
	noteID := chi.URLParam(r, "noteID")

	if _, ok := h.services.ContentService.Folder(folderID); !ok {
		return models.Note{}, service.ErrFolderNotFound
	}
	note, ok := h.services.ContentService.Note(folderID, noteID)
	if !ok {
		return models.Note{}, service.ErrNoteNotFound
	}
	return note, nil
}

// publishFolders replaces the whole collection with the request body.
func (h *Handler) publishFolders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var folders []models.Folder
	if err := json.NewDecoder(r.Body).Decode(&folders); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}
	if folders == nil {
		folders = []models.Folder{}
	}

	if err := h.services.ContentService.Replace(ctx, folders); err != nil {
		log.Err(err).Msg("publish rejected")
		writeError(w, err)
		return
	}

	log.Info().Int("folders", len(folders)).Msg("collection published")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req folderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	folder, ok := h.services.ContentService.CreateFolder(ctx, req.Name)
	if !ok {
		http.Error(w, app.MsgEmptyName, http.StatusBadRequest)
		return
	}

	if _, err := utils.WriteJSON(w, folder, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write folder")
	}
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderID")

	if !h.services.ContentService.DeleteFolder(r.Context(), folderID) {
		writeError(w, service.ErrFolderNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	folderID := chi.URLParam(r, "folderID")

	name, content, err := decodeNoteRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note body")
		writeError(w, err)
		return
	}
	if strings.TrimSpace(name) == "" {
		http.Error(w, app.MsgEmptyName, http.StatusBadRequest)
		return
	}

	note, ok := h.services.ContentService.CreateNote(ctx, folderID, name, content)
	if !ok {
		writeError(w, service.ErrFolderNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write note")
	}
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	folderID := chi.URLParam(r, "folderID")
	noteID := chi.URLParam(r, "noteID")

	name, content, err := decodeNoteRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid note body")
		writeError(w, err)
		return
	}
	if strings.TrimSpace(name) == "" {
		http.Error(w, app.MsgEmptyName, http.StatusBadRequest)
		return
	}

	note, ok := h.services.ContentService.EditNote(ctx, folderID, noteID, name, content)
	if !ok {
		if _, found := h.services.ContentService.Folder(folderID); !found {
			writeError(w, service.ErrFolderNotFound)
			return
		}
		writeError(w, service.ErrNoteNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write note")
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderID")
	noteID := chi.URLParam(r, "noteID")

	if !h.services.ContentService.DeleteNote(r.Context(), folderID, noteID) {
		writeError(w, service.ErrNoteNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeNoteRequest reads a note body and normalizes its content.
func decodeNoteRequest(r *http.Request) (string, models.Document, error) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", models.Document{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	content, err := models.NormalizeContent(req.Content)
	if err != nil {
		return "", models.Document{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	return req.Name, content, nil
}
