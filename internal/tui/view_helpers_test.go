// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-joycribe/internal/app"
	"github.com/MKhiriev/go-joycribe/internal/service"
	"github.com/MKhiriev/go-joycribe/models"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hello", fitText("hello", 0))
	assert.Equal(t, "he...", fitText("hello world", 5))
	assert.Equal(t, "при", fitText("привет", 3))
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a b c", oneLine(" a\n b\t\tc "))
}

func TestCycle(t *testing.T) {
	var got []models.Sentiment
	s := models.Sentiment("")
	for range len(models.Sentiments) + 1 {
		s = nextSentiment(s)
		got = append(got, s)
	}

	assert.Equal(t, []models.Sentiment{
		models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral, models.SentimentMixed, "",
	}, got)
	assert.Equal(t, models.PersonaSales, nextPersona(models.PersonaGeneral))
	assert.Equal(t, models.Persona(""), nextPersona(models.PersonaPersonal))
}

func TestThemeIndex(t *testing.T) {
	assert.Equal(t, 0, themeIndex("Default Cyan"))
	assert.Equal(t, 3, themeIndex("Royal Purple"))
	assert.Equal(t, 0, themeIndex("Solarized"))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, clampIndex(5, 0))
	assert.Equal(t, 2, clampIndex(5, 3))
	assert.Equal(t, 1, clampIndex(1, 3))
}

func TestBar(t *testing.T) {
	assert.Empty(t, bar(0, 10))
	assert.Empty(t, bar(3, 0))
	assert.Len(t, []rune(bar(1, 1000)), 1)
	assert.Len(t, []rune(bar(10, 10)), barWidth)
}

func TestRenderAnalysis(t *testing.T) {
	out := renderAnalysis(models.Analysis{
		Summary:   "renewal call",
		Sentiment: models.SentimentMixed,
		Keywords:  []string{"price"},
		SalesCoachingInsights: &models.SalesCoachingInsights{
			OverallRating:     7,
			TalkToListenRatio: "60/40",
			ObjectionHandling: []models.ObjectionHandling{{Objection: "too expensive", SuggestedResponse: "show ROI"}},
		},
		SupportInsights: &models.SupportInsights{EscalationNeeded: models.EscalationNo},
	})

	assert.Contains(t, out, "Summary: renewal call")
	assert.Contains(t, out, "Keywords: price")
	assert.Contains(t, out, "Topics: -")
	assert.Contains(t, out, "Rating: 7/10")
	assert.Contains(t, out, "too expensive")
	assert.Contains(t, out, "Escalation needed: No")
}

func TestErrorText(t *testing.T) {
	assert.Empty(t, errorText(nil))
	assert.Equal(t, ErrEmptyPath.Error(), errorText(ErrEmptyPath))
	assert.Equal(t, app.MsgEmptyTranscript, errorText(service.ErrEmptyTranscript))
	assert.Equal(t, app.MsgUnknownError, errorText(errors.New("boom")))
	assert.Equal(t, "cannot read media file: gone", errorText(fmt.Errorf("%w: gone", ErrMediaUnreadable)))
}
