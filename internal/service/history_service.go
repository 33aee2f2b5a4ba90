// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-joycribe/internal/export"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/store"
	"github.com/MKhiriev/go-joycribe/internal/view"
	"github.com/MKhiriev/go-joycribe/models"
)

type historyService struct {
	history store.HistoryRepository

	logger *logger.Logger
}

// NewHistoryService returns the read side of the history. Views are derived
// from the store cache on every call.
func NewHistoryService(history store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		history: history,
		logger:  logger,
	}
}

func (s *historyService) History(ctx context.Context, filter view.Filter) []models.Record {
	return view.Filtered(view.Active(s.history.List(ctx)), filter)
}

func (s *historyService) Trash(ctx context.Context) []models.Record {
	return view.Trashed(s.history.List(ctx))
}

func (s *historyService) Dashboard(ctx context.Context) view.Stats {
	return view.Dashboard(view.Active(s.history.List(ctx)))
}

func (s *historyService) Get(ctx context.Context, id models.RecordID) (models.Record, error) {
	return s.history.Get(ctx, id)
}

func (s *historyService) Export(ctx context.Context, id models.RecordID, format export.Format) (export.Document, error) {
	record, err := s.history.Get(ctx, id)
	if err != nil {
		return export.Document{}, err
	}

	doc, err := export.NewDocument(record, format)
	if err != nil {
		s.logger.Err(err).Str("func", "historyService.Export").Int64("id", int64(id)).Msg("error rendering export")
		return export.Document{}, err
	}

	return doc, nil
}
