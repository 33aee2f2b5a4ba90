// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-joycribe/internal/app"
	"github.com/MKhiriev/go-joycribe/internal/export"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/store"
	"github.com/MKhiriev/go-joycribe/internal/utils"
	"github.com/MKhiriev/go-joycribe/models"
)

// notesTagsRequest is the body of PATCH /api/history/{id}. Absent fields are
// left unchanged.
type notesTagsRequest struct {
	Notes *string   `json:"notes"`
	Tags  *[]string `json:"tags"`
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listHistory").Msg("invalid filter")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, h.services.HistoryService.History(r.Context(), filter), http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recordIDParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecord").Send()
		writeError(w, err)
		return
	}

	record, err := h.services.HistoryService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecord").Int64("id", int64(id)).Msg("error getting record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) updateNotesOrTags(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recordIDParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNotesOrTags").Send()
		writeError(w, err)
		return
	}

	var req notesTagsRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateNotesOrTags").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	records, err := h.services.Orchestrator.UpdateNotesOrTags(r.Context(), id, models.RecordPatch{Notes: req.Notes, Tags: req.Tags})
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNotesOrTags").Int64("id", int64(id)).Msg("error updating notes or tags")
		writeError(w, err)
		return
	}

	idx := slices.IndexFunc(records, func(rec models.Record) bool { return rec.ID == id })
	if idx < 0 {
		writeError(w, store.ErrRecordNotFound)
		return
	}

	utils.WriteJSON(w, records[idx], http.StatusOK)
}

func (h *Handler) moveToTrash(w http.ResponseWriter, r *http.Request) {
	h.recordAction(w, r, "*Handler.moveToTrash", h.services.Orchestrator.MoveToTrash)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	h.recordAction(w, r, "*Handler.restore", h.services.Orchestrator.Restore)
}

func (h *Handler) deleteForever(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		logger.FromRequest(r).Err(ErrConfirmationRequired).Str("func", "*Handler.deleteForever").Send()
		writeError(w, ErrConfirmationRequired)
		return
	}

	h.recordAction(w, r, "*Handler.deleteForever", h.services.Orchestrator.DeleteForever)
}

func (h *Handler) listTrash(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.HistoryService.Trash(r.Context()), http.StatusOK)
}

func (h *Handler) emptyTrash(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !confirmed(r) {
		log.Err(ErrConfirmationRequired).Str("func", "*Handler.emptyTrash").Send()
		writeError(w, ErrConfirmationRequired)
		return
	}

	if err := h.services.Orchestrator.EmptyTrash(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.emptyTrash").Msg("error emptying trash")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.HistoryService.Dashboard(r.Context()), http.StatusOK)
}

func (h *Handler) exportRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recordIDParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportRecord").Send()
		writeError(w, err)
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportRecord").Send()
		writeError(w, err)
		return
	}

	doc, err := h.services.HistoryService.Export(r.Context(), id, format)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportRecord").Int64("id", int64(id)).Msg("error exporting record")
		writeError(w, err)
		return
	}

	utils.WriteAttachment(w, doc.FileName, doc.ContentType, doc.Data)
}

// recordAction runs a history lifecycle operation on the {id} record and
// answers 204 on success.
func (h *Handler) recordAction(w http.ResponseWriter, r *http.Request, fn string, action func(ctx context.Context, id models.RecordID) error) {
	log := logger.FromRequest(r)

	id, err := recordIDParam(r)
	if err != nil {
		log.Err(err).Str("func", fn).Send()
		writeError(w, err)
		return
	}

	if err = action(r.Context(), id); err != nil {
		log.Err(err).Str("func", fn).Int64("id", int64(id)).Msg("history operation failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
