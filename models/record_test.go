// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Record JSON ──────────────────────────────────────────────────────────────

func TestRecord_MarshalUsesStorageFieldNames(t *testing.T) {
	r := Record{
		ID:         1700000000000,
		FileName:   "call.mp3",
		Transcript: "hello",
		Analysis:   &Analysis{Summary: "s", Sentiment: SentimentMixed},
		Persona:    PersonaCustomerService,
		Date:       "1/2/2026, 3:04:05 PM",
		MediaType:  MediaVideo,
		Notes:      "n",
		Tags:       []string{"a", "b"},
		Status:     StatusTrashed,
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, float64(1700000000000), raw["id"])
	assert.Equal(t, "call.mp3", raw["fileName"])
	assert.Equal(t, "CustomerService", raw["persona"])
	assert.Equal(t, "video", raw["mediaType"])
	assert.Equal(t, "trashed", raw["status"])
	assert.NotContains(t, raw, "analysisPersona")
	assert.NotContains(t, raw, "customEntitiesInput")
}

func TestRecord_UnmarshalLegacyPersonaLabel(t *testing.T) {
	data := `{"id":5,"fileName":"f","transcript":"t","analysis":{"summary":"s","sentiment":"Neutral"},
		"analysisPersona":"Technical Support Supervisor","date":"d","mediaType":"audio","status":"active"}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(data), &r))

	assert.Equal(t, PersonaSupport, r.Persona)
	assert.Equal(t, RecordID(5), r.ID)
}

func TestRecord_UnmarshalPrefersPersonaField(t *testing.T) {
	data := `{"id":5,"persona":"Sales","analysisPersona":"Personal Chat"}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(data), &r))

	assert.Equal(t, PersonaSales, r.Persona)
}

func TestRecord_UnmarshalDefaults(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":9,"persona":"General"}`), &r))

	assert.Equal(t, StatusActive, r.Status)
	assert.Equal(t, MediaAudio, r.MediaType)
	assert.False(t, r.HasAnalysis())
}

func TestRecord_UnmarshalUnknownPersona(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"id":9,"persona":"Pirate"}`), &r)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

// ── Clone ────────────────────────────────────────────────────────────────────

func TestRecord_CloneIsDeep(t *testing.T) {
	orig := Record{
		Tags: []string{"x"},
		Analysis: &Analysis{
			Keywords:        []string{"k"},
			SupportInsights: &SupportInsights{NextSteps: []string{"call back"}},
		},
	}

	c := orig.Clone()
	c.Tags[0] = "changed"
	c.Analysis.Keywords[0] = "changed"
	c.Analysis.SupportInsights.NextSteps[0] = "changed"

	assert.Equal(t, "x", orig.Tags[0])
	assert.Equal(t, "k", orig.Analysis.Keywords[0])
	assert.Equal(t, "call back", orig.Analysis.SupportInsights.NextSteps[0])
}

// ── RecordPatch ──────────────────────────────────────────────────────────────

func TestRecordPatch_ApplyOverwritesOnlySetFields(t *testing.T) {
	notes := "new notes"
	tags := []string{"t1"}
	r := Record{ID: 1, FileName: "f", Notes: "old", Tags: []string{"a", "b"}, Status: StatusActive}

	got := RecordPatch{Notes: &notes, Tags: &tags}.Apply(r)

	assert.Equal(t, "new notes", got.Notes)
	assert.Equal(t, []string{"t1"}, got.Tags)
	assert.Equal(t, "f", got.FileName)
	assert.Equal(t, StatusActive, got.Status)
}

func TestRecordPatch_IsEmpty(t *testing.T) {
	assert.True(t, RecordPatch{}.IsEmpty())

	s := StatusTrashed
	assert.False(t, RecordPatch{Status: &s}.IsEmpty())
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, ParseTags(" a , ,b c,"))
	assert.Nil(t, ParseTags("  "))
}

// ── enums ────────────────────────────────────────────────────────────────────

func TestParsePersona(t *testing.T) {
	tests := []struct {
		in   string
		want Persona
	}{
		{"General", PersonaGeneral},
		{"Sales Coach", PersonaSales},
		{"Personal Chat", PersonaPersonal},
		{"CustomerService", PersonaCustomerService},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePersona(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePersona("sales")
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestMediaTypeFromMIME(t *testing.T) {
	assert.Equal(t, MediaVideo, MediaTypeFromMIME("video/mp4"))
	assert.Equal(t, MediaAudio, MediaTypeFromMIME("audio/mpeg"))
	assert.Equal(t, MediaAudio, MediaTypeFromMIME(""))
}

func TestSentiment_IsValid(t *testing.T) {
	assert.True(t, SentimentMixed.IsValid())
	assert.False(t, Sentiment("positive").IsValid())
}
