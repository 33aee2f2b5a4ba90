// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-joycribe/internal/app"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/utils"
	"github.com/MKhiriev/go-joycribe/internal/workspace"
	"github.com/MKhiriev/go-joycribe/models"
)

// multipartMemory is the part of an upload kept in memory before
// mime/multipart spills to temporary files.
const multipartMemory = 32 << 20

func (h *Handler) getWorkspace(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Orchestrator.Workspace(), http.StatusOK)
}

func (h *Handler) editWorkspace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var edit workspace.Edit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		log.Err(err).Str("func", "*Handler.editWorkspace").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	st, err := h.services.Orchestrator.EditWorkspace(edit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.editWorkspace").Msg("invalid workspace edit")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, st, http.StatusOK)
}

func (h *Handler) clearWorkspace(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Orchestrator.Clear(), http.StatusOK)
}

func (h *Handler) selectRecord(w http.ResponseWriter, r *http.Request) {
	h.workspaceAction(w, r, "*Handler.selectRecord", h.services.Orchestrator.SelectRecord)
}

func (h *Handler) rerunAnalysis(w http.ResponseWriter, r *http.Request) {
	h.workspaceAction(w, r, "*Handler.rerunAnalysis", h.services.Orchestrator.RerunAnalysis)
}

// uploadMedia reads the multipart "file" part into memory, checks from its
// content that it is audio or video and hands it to the workspace, which
// transcribes it.
func (h *Handler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Str("func", "*Handler.uploadMedia").Int64("limit", tooLarge.Limit).Msg("upload too large")
			http.Error(w, app.MsgUploadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.uploadMedia").Msg("invalid multipart body")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadMedia").Send()
		writeError(w, ErrNoMediaFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadMedia").Msg("error reading uploaded file")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	// the declared Content-Type of the part is not trusted
	media, err := workspace.DetectMedia(header.Filename, data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadMedia").Str("file", header.Filename).
			Str("declared_type", header.Header.Get("Content-Type")).Msg("upload is not a media file")
		writeError(w, err)
		return
	}

	st, err := h.services.Orchestrator.SelectMedia(r.Context(), workspace.NewMemoryMedia(media, nil))
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadMedia").Str("file", header.Filename).Msg("error transcribing media")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, st, http.StatusOK)
}

func (h *Handler) runAnalysis(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	record, err := h.services.Orchestrator.RunAnalysis(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.runAnalysis").Msg("error running analysis")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) workspaceAction(w http.ResponseWriter, r *http.Request, fn string, action func(ctx context.Context, id models.RecordID) (workspace.State, error)) {
	log := logger.FromRequest(r)

	id, err := recordIDParam(r)
	if err != nil {
		log.Err(err).Str("func", fn).Send()
		writeError(w, err)
		return
	}

	st, err := action(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("id", int64(id)).Msg("error loading record into workspace")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, st, http.StatusOK)
}
