// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt builds the instruction text and response schema sent to
// the analysis model. Every analyzer adapter uses these builders so that the
// persona wording and the required fields live in one place.
package prompt

import (
	"strings"

	"github.com/MKhiriev/go-joycribe/models"
)

// TranscriptionPrompt accompanies the media part of a transcription request.
const TranscriptionPrompt = "Please transcribe this audio file. The primary language spoken is Hebrew."

const baseInstruction = `You are an expert analyst for "Joycribe", specializing in processing Hebrew call transcripts. Your task is to provide a comprehensive analysis based on the user's selected persona. Respond ONLY with a valid JSON object that adheres to the provided schema. The entire response must be in JSON format.

First, perform speaker diarization on the transcript. Rewrite the entire transcript, prefixing each line or segment with a speaker label like 'דובר 1:', 'דובר 2:', or, if identifiable, a role like 'נציג:', 'לקוח:'. The result should be in the 'diarizedTranscript' field.

Then, based on the original transcript, perform the full analysis as requested by the persona. The analysis should be insightful and detailed.`

const suggestedTagsInstruction = "\n\nFinally, based on the entire analysis, provide a list of 3-5 'suggestedTags' that accurately categorize this call."

var personaInstructions = map[models.Persona]string{
	models.PersonaSales: `As a world-class Sales Coach, trained in methodologies like SPIN Selling and The Challenger Sale, your task is to evaluate the provided sales call transcript. Do not just summarize; provide a prescriptive analysis to help the salesperson improve.
1.  **Overall Rating:** Give an honest performance rating from 1 (poor) to 10 (excellent).
2.  **Justification:** Briefly explain your rating.
3.  **Strengths:** Identify 2-3 things the salesperson did well (e.g., building rapport, effective questioning).
4.  **Areas for Improvement:** Provide 2-3 specific, actionable pieces of advice for improvement.
5.  **Talk-to-Listen Ratio:** Estimate the ratio (e.g., "60/40", "70/30").
6.  **Objection Handling:** Analyze how objections were handled. For each key objection, state the objection and suggest a better response.
Your analysis must be sharp, insightful, and designed to foster real improvement. Populate the 'salesCoachingInsights' object.`,
	models.PersonaSupport:         "As a Technical Support Supervisor, you need to diagnose the call for quality and efficiency. Identify the core problem, the steps taken to solve it, any specific technical terms or error codes mentioned, and whether escalation was needed. Populate the 'supportInsights' object. Your summary should be a concise debrief for management.",
	models.PersonaCustomerService: "As a Customer Service Quality Manager, evaluate the interaction's quality. Focus on the customer's query, the agent's tone and effectiveness, problem resolution, and any required follow-up actions. The summary should assess the overall service experience.",
	models.PersonaPersonal:        "Analyze this personal conversation. Identify the relationship between speakers if possible, the main themes, the overall mood, and any decisions made. The summary should be informal and capture the essence of the chat.",
	models.PersonaGeneral:         "Provide a balanced, general-purpose analysis of the conversation. Summarize the key points, identify the main topics and speakers' intents, and provide a neutral overview of the interaction.",
}

// BuildInstruction returns the system instruction for persona. When
// customEntities is not blank the model is also asked to extract those
// entities; the list is passed through as the user typed it.
func BuildInstruction(persona models.Persona, customEntities string) string {
	var b strings.Builder

	b.WriteString(baseInstruction)
	b.WriteString("\n\n**Persona: ")
	b.WriteString(persona.Label())
	b.WriteString("**\n")
	b.WriteString(personaInstructions[persona])

	if entities := strings.TrimSpace(customEntities); entities != "" {
		b.WriteString("\n\nIn addition, specifically identify and extract occurrences of the following custom entities: ")
		b.WriteString(entities)
		b.WriteString(". List each entity and any text from the transcript that matches it. If no occurrences of an entity are found, return an empty array for its occurrences.")
	}

	b.WriteString(suggestedTagsInstruction)

	return b.String()
}
