// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-joycribe/internal/service"
	"github.com/MKhiriev/go-joycribe/internal/view"
	"github.com/MKhiriev/go-joycribe/models"
)

func recordIDParam(r *http.Request) (models.RecordID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRecordID, raw)
	}
	return models.RecordID(id), nil
}

func confirmed(r *http.Request) bool {
	ok, err := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return err == nil && ok
}

// filterFromQuery reads ?q=&sentiment=&persona=. Persona accepts both the
// identifier and the display label.
func filterFromQuery(q url.Values) (view.Filter, error) {
	f := view.Filter{Search: q.Get("q")}

	if s := q.Get("sentiment"); s != "" {
		sentiment := models.Sentiment(s)
		if !sentiment.IsValid() {
			return view.Filter{}, fmt.Errorf("%w: unknown sentiment %q", service.ErrValidation, s)
		}
		f.Sentiment = sentiment
	}

	if p := q.Get("persona"); p != "" {
		persona, err := models.ParsePersona(p)
		if err != nil {
			return view.Filter{}, fmt.Errorf("%w: %w", service.ErrInvalidPersona, err)
		}
		f.Persona = persona
	}

	return f, nil
}
