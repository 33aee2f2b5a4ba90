// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-joycribe/models"
)

func TestDashboard_Empty(t *testing.T) {
	stats := Dashboard(nil)

	assert.Zero(t, stats.Total)
	assert.Len(t, stats.BySentiment, 4)
	assert.Empty(t, stats.ByPersona)
	assert.Empty(t, stats.TopPersona)
	assert.Empty(t, stats.TopKeywords)
}

func TestDashboard_Counts(t *testing.T) {
	r1 := record(1, models.PersonaSupport, models.SentimentNegative)
	r1.Analysis.Keywords = []string{"Router", "refund"}
	r2 := record(2, models.PersonaSales, models.SentimentPositive)
	r2.Analysis.Keywords = []string{" router ", "price"}
	r3 := record(3, models.PersonaSupport, models.SentimentNegative)
	r3.Analysis.Keywords = []string{"price", "ROUTER", ""}
	unanalysed := models.Record{ID: 4, Persona: models.PersonaSales, Status: models.StatusActive}

	stats := Dashboard([]models.Record{r1, r2, r3, unanalysed})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[models.Sentiment]int{
		models.SentimentPositive: 1,
		models.SentimentNegative: 2,
		models.SentimentNeutral:  0,
		models.SentimentMixed:    0,
	}, stats.BySentiment)
	assert.Equal(t, []PersonaCount{
		{Persona: models.PersonaSupport, Count: 2},
		{Persona: models.PersonaSales, Count: 1},
	}, stats.ByPersona)
	assert.Equal(t, models.PersonaSupport, stats.TopPersona)
	assert.Equal(t, []KeywordCount{
		{Keyword: "router", Count: 3},
		{Keyword: "price", Count: 2},
		{Keyword: "refund", Count: 1},
	}, stats.TopKeywords)
}

func TestDashboard_PersonaTiesKeepPersonaOrder(t *testing.T) {
	stats := Dashboard([]models.Record{
		record(1, models.PersonaPersonal, models.SentimentMixed),
		record(2, models.PersonaGeneral, models.SentimentMixed),
	})

	require.Len(t, stats.ByPersona, 2)
	assert.Equal(t, models.PersonaGeneral, stats.ByPersona[0].Persona)
	assert.Equal(t, models.PersonaGeneral, stats.TopPersona)
}

func TestDashboard_TopKeywordsLimit(t *testing.T) {
	r := record(1, models.PersonaGeneral, models.SentimentMixed)
	for i := 0; i < 15; i++ {
		r.Analysis.Keywords = append(r.Analysis.Keywords, fmt.Sprintf("kw%d", i))
	}

	stats := Dashboard([]models.Record{r})

	require.Len(t, stats.TopKeywords, topKeywordsLimit)
	// при равных счётчиках сохраняется порядок первого появления
	assert.Equal(t, "kw0", stats.TopKeywords[0].Keyword)
	assert.Equal(t, "kw9", stats.TopKeywords[9].Keyword)
}
