// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import "github.com/MKhiriev/go-joycribe/models"

// Schema is a response schema in the OpenAPI subset accepted by the
// generative language API. It marshals directly into the request body.
type Schema map[string]any

// Schema value types.
const (
	TypeObject  = "OBJECT"
	TypeString  = "STRING"
	TypeArray   = "ARRAY"
	TypeInteger = "INTEGER"
)

func str(description string) Schema {
	s := Schema{"type": TypeString}
	if description != "" {
		s["description"] = description
	}
	return s
}

func strArray(description string) Schema {
	s := Schema{"type": TypeArray, "items": Schema{"type": TypeString}}
	if description != "" {
		s["description"] = description
	}
	return s
}

func salesCoachingSchema() Schema {
	return Schema{
		"type":        TypeObject,
		"description": "Detailed coaching insights for a sales call.",
		"properties": Schema{
			"overallRating":       Schema{"type": TypeInteger, "description": "Overall performance rating from 1 to 10."},
			"ratingJustification": str("A brief justification for the rating."),
			"strengths":           strArray("Specific things the salesperson did well."),
			"improvementAreas":    strArray("Actionable advice for improvement."),
			"talkToListenRatio":   str("Estimated talk-to-listen ratio, e.g., '60/40'."),
			"objectionHandling": Schema{
				"type":        TypeArray,
				"description": "Analysis of how objections were handled.",
				"items": Schema{
					"type": TypeObject,
					"properties": Schema{
						"objection":         str("The objection raised by the customer."),
						"suggestedResponse": str("A better way to handle the objection."),
					},
					"required": []string{"objection", "suggestedResponse"},
				},
			},
		},
		"required": []string{"overallRating", "ratingJustification", "strengths", "improvementAreas", "talkToListenRatio", "objectionHandling"},
	}
}

func supportInsightsSchema() Schema {
	return Schema{
		"type":        TypeObject,
		"description": "Detailed insights for a technical support call.",
		"properties": Schema{
			"problemDescription": str("A clear description of the technical issue reported by the customer."),
			"solutionSteps":      strArray("The troubleshooting or solution steps taken."),
			"technicalTerms":     strArray("Specific technical terms, model numbers, or error codes mentioned."),
			"escalationNeeded":   str("Was escalation required? ('Yes', 'No', or 'Maybe')."),
			"nextSteps":          strArray("Actionable next steps for the support agent or customer."),
		},
		"required": []string{"problemDescription", "solutionSteps", "technicalTerms", "escalationNeeded", "nextSteps"},
	}
}

// BuildSchema returns the response schema for persona. The Sales persona
// additionally requires salesCoachingInsights and the Support persona
// requires supportInsights.
func BuildSchema(persona models.Persona) Schema {
	sentiments := make([]string, len(models.Sentiments))
	for i, s := range models.Sentiments {
		sentiments[i] = string(s)
	}

	properties := Schema{
		"summary":            str("A concise summary of the call in Hebrew, tailored to the persona."),
		"diarizedTranscript": str(`The full transcript with speaker labels (e.g., "Speaker 1:").`),
		"sentiment":          Schema{"type": TypeString, "description": "The overall sentiment.", "enum": sentiments},
		"keywords":           strArray("5-7 important keywords in Hebrew."),
		"topics":             strArray("3-5 main topics in Hebrew."),
		"customEntities": Schema{
			"type":        TypeArray,
			"description": "Custom entities found based on user input.",
			"items": Schema{
				"type": TypeObject,
				"properties": Schema{
					"entity":      str(""),
					"occurrences": strArray(""),
				},
				"required": []string{"entity", "occurrences"},
			},
		},
		"suggestedTags": strArray("A list of 3-5 suggested tags for categorization."),
	}
	required := []string{"summary", "diarizedTranscript", "sentiment", "keywords", "topics", "customEntities", "suggestedTags"}

	switch persona {
	case models.PersonaSales:
		properties["salesCoachingInsights"] = salesCoachingSchema()
		required = append(required, "salesCoachingInsights")
	case models.PersonaSupport:
		properties["supportInsights"] = supportInsightsSchema()
		required = append(required, "supportInsights")
	}

	return Schema{
		"type":       TypeObject,
		"properties": properties,
		"required":   required,
	}
}
