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
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// short requests served from the record cache
	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/api/version/", h.getServerVersion)

		r.Get("/api/history", h.listHistory)
		r.Get("/api/history/{id}", h.getRecord)
		r.Patch("/api/history/{id}", h.updateNotesOrTags)
		r.Post("/api/history/{id}/trash", h.moveToTrash)
		r.Post("/api/history/{id}/restore", h.restore)
		r.Delete("/api/history/{id}", h.deleteForever)
		r.Get("/api/history/{id}/export", h.exportRecord)

		r.Get("/api/trash", h.listTrash)
		r.Delete("/api/trash", h.emptyTrash)

		r.Get("/api/dashboard", h.dashboard)

		r.Get("/api/workspace", h.getWorkspace)
		r.Put("/api/workspace", h.editWorkspace)
		r.Post("/api/workspace/clear", h.clearWorkspace)
		r.Post("/api/workspace/select/{id}", h.selectRecord)
		r.Post("/api/workspace/rerun/{id}", h.rerunAnalysis)
	})

	// collaborator calls run as long as the adapters allow
	router.Group(func(r chi.Router) {
		r.Post("/api/workspace/media", h.uploadMedia)
		r.With(h.gate).Post("/api/workspace/analyze", h.runAnalysis)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
