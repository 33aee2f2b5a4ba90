// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Sentiment is the overall emotional tone of a call.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentMixed    Sentiment = "Mixed"
)

// Sentiments lists every sentiment in presentation order.
var Sentiments = []Sentiment{
	SentimentPositive,
	SentimentNegative,
	SentimentNeutral,
	SentimentMixed,
}

// IsValid reports whether s is one of the four enumerated sentiments.
func (s Sentiment) IsValid() bool {
	return slices.Contains(Sentiments, s)
}

// Analysis is the structured result produced by the analysis collaborator.
// The store treats it as opaque data.
type Analysis struct {
	// Summary is a concise summary tailored to the persona.
	Summary string `json:"summary"`

	// DiarizedTranscript is the transcript rewritten with speaker labels.
	DiarizedTranscript string `json:"diarizedTranscript"`

	// Sentiment is the overall sentiment of the call.
	Sentiment Sentiment `json:"sentiment"`

	// Keywords are the most important keywords of the call.
	Keywords []string `json:"keywords"`

	// Topics are the main topics discussed.
	Topics []string `json:"topics"`

	// CustomEntities lists occurrences of the user-requested entities.
	CustomEntities []CustomEntity `json:"customEntities"`

	// SalesCoachingInsights is present only for the Sales persona.
	SalesCoachingInsights *SalesCoachingInsights `json:"salesCoachingInsights,omitempty"`

	// SupportInsights is present only for the Support persona.
	SupportInsights *SupportInsights `json:"supportInsights,omitempty"`

	// SuggestedTags are categorization tags proposed by the collaborator.
	SuggestedTags []string `json:"suggestedTags,omitempty"`
}

// CustomEntity is a user-requested entity and its matching transcript excerpts.
type CustomEntity struct {
	Entity      string   `json:"entity"`
	Occurrences []string `json:"occurrences"`
}

// SalesCoachingInsights is the prescriptive evaluation of a sales call.
// OverallRating ranges from 1 (poor) to 10 (excellent); TalkToListenRatio is
// an estimate such as "60/40".
type SalesCoachingInsights struct {
	OverallRating       int                 `json:"overallRating"`
	RatingJustification string              `json:"ratingJustification"`
	Strengths           []string            `json:"strengths"`
	ImprovementAreas    []string            `json:"improvementAreas"`
	TalkToListenRatio   string              `json:"talkToListenRatio"`
	ObjectionHandling   []ObjectionHandling `json:"objectionHandling"`
}

// ObjectionHandling pairs a customer objection with a better response.
type ObjectionHandling struct {
	Objection         string `json:"objection"`
	SuggestedResponse string `json:"suggestedResponse"`
}

// Escalation values allowed in SupportInsights.EscalationNeeded.
const (
	EscalationYes   = "Yes"
	EscalationNo    = "No"
	EscalationMaybe = "Maybe"
)

// SupportInsights is the quality debrief of a technical support call.
// EscalationNeeded is one of EscalationYes, EscalationNo or EscalationMaybe.
type SupportInsights struct {
	ProblemDescription string   `json:"problemDescription"`
	SolutionSteps      []string `json:"solutionSteps"`
	TechnicalTerms     []string `json:"technicalTerms"`
	EscalationNeeded   string   `json:"escalationNeeded"`
	NextSteps          []string `json:"nextSteps"`
}

// Clone returns a deep copy of a.
func (a *Analysis) Clone() *Analysis {
	if a == nil {
		return nil
	}
	c := *a
	c.Keywords = slices.Clone(a.Keywords)
	c.Topics = slices.Clone(a.Topics)
	c.SuggestedTags = slices.Clone(a.SuggestedTags)
	if a.CustomEntities != nil {
		c.CustomEntities = make([]CustomEntity, len(a.CustomEntities))
		for i, e := range a.CustomEntities {
			c.CustomEntities[i] = CustomEntity{Entity: e.Entity, Occurrences: slices.Clone(e.Occurrences)}
		}
	}
	if a.SalesCoachingInsights != nil {
		s := *a.SalesCoachingInsights
		s.Strengths = slices.Clone(s.Strengths)
		s.ImprovementAreas = slices.Clone(s.ImprovementAreas)
		s.ObjectionHandling = slices.Clone(s.ObjectionHandling)
		c.SalesCoachingInsights = &s
	}
	if a.SupportInsights != nil {
		s := *a.SupportInsights
		s.SolutionSteps = slices.Clone(s.SolutionSteps)
		s.TechnicalTerms = slices.Clone(s.TechnicalTerms)
		s.NextSteps = slices.Clone(s.NextSteps)
		c.SupportInsights = &s
	}
	return &c
}
