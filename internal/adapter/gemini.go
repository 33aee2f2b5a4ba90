// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-joycribe/internal/config"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/prompt"
	"github.com/MKhiriev/go-joycribe/internal/utils"
	"github.com/MKhiriev/go-joycribe/models"
)

const (
	geminiAPIKeyHeader    = "x-goog-api-key"
	jsonResponseMIMEType  = "application/json"
	generateContentFormat = "/v1beta/models/%s:generateContent"
)

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   prompt.Schema `json:"responseSchema,omitempty"`
}

type generateContentRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

// text concatenates the text parts of the first candidate.
func (r generateContentResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// GeminiClient talks to the generative language REST API. It serves as both
// the transcriber and the analyzer.
type GeminiClient struct {
	transcribeClient *utils.HTTPClient
	analyzeClient    *utils.HTTPClient
	model            string
	strict           bool
	logger           *logger.Logger
}

var (
	_ Transcriber = (*GeminiClient)(nil)
	_ Analyzer    = (*GeminiClient)(nil)
)

// NewGeminiClient constructs a Gemini client from cfg. Transcription and
// analysis use separate timeouts, so each gets its own HTTP client.
func NewGeminiClient(cfg config.Adapter, log *logger.Logger) (*GeminiClient, error) {
	baseURL, err := normalizeBaseURL(cfg.GeminiBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini base url: %w", err)
	}
	if cfg.GeminiModel == "" {
		return nil, fmt.Errorf("gemini model is not configured")
	}

	newClient := func() *utils.HTTPClient {
		c := utils.NewHTTPClient(baseURL, 0)
		c.SetHeader(geminiAPIKeyHeader, cfg.GeminiAPIKey)
		return c
	}

	transcribeClient := newClient()
	analyzeClient := newClient()
	if cfg.TranscribeTimeout > 0 {
		transcribeClient.SetTimeout(cfg.TranscribeTimeout)
	}
	if cfg.RequestTimeout > 0 {
		analyzeClient.SetTimeout(cfg.RequestTimeout)
	}

	return &GeminiClient{
		transcribeClient: transcribeClient,
		analyzeClient:    analyzeClient,
		model:            cfg.GeminiModel,
		strict:           cfg.StrictAnalysis,
		logger:           log,
	}, nil
}

// Transcribe implements [Transcriber]. The media is sent inline as base64
// together with [prompt.TranscriptionPrompt].
func (g *GeminiClient) Transcribe(ctx context.Context, media models.Media) (string, error) {
	req := generateContentRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{MIMEType: media.MIMEType, Data: base64.StdEncoding.EncodeToString(media.Data)}},
				{Text: prompt.TranscriptionPrompt},
			},
		}},
	}

	text, err := g.generate(ctx, g.transcribeClient, req)
	if err != nil {
		g.logger.Err(err).Str("func", "GeminiClient.Transcribe").Str("file", media.Name).Msg("transcription request failed")
		return "", fmt.Errorf("error during transcription: %w", err)
	}

	return text, nil
}

// Analyze implements [Analyzer]. The system instruction and response schema
// come from the prompt package; the response is validated by decodeAnalysis.
func (g *GeminiClient) Analyze(ctx context.Context, transcript string, persona models.Persona, customEntities string) (models.Analysis, error) {
	req := generateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: transcript}}}},
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: prompt.BuildInstruction(persona, customEntities)}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMIMEType: jsonResponseMIMEType,
			ResponseSchema:   prompt.BuildSchema(persona),
		},
	}

	text, err := g.generate(ctx, g.analyzeClient, req)
	if err != nil {
		g.logger.Err(err).Str("func", "GeminiClient.Analyze").Str("persona", string(persona)).Msg("analysis request failed")
		return models.Analysis{}, fmt.Errorf("failed to analyze transcript: %w", err)
	}

	analysis, err := decodeAnalysis(ctx, persona, text, g.strict)
	if err != nil {
		g.logger.Err(err).Str("func", "GeminiClient.Analyze").Str("persona", string(persona)).Msg("malformed analysis response")
		return models.Analysis{}, fmt.Errorf("failed to analyze transcript: %w", err)
	}

	return analysis, nil
}

func (g *GeminiClient) generate(ctx context.Context, client *utils.HTTPClient, body generateContentRequest) (string, error) {
	var out generateContentResponse

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		ForceContentType(jsonResponseMIMEType).
		Post(fmt.Sprintf(generateContentFormat, url.PathEscape(g.model)))
	if err != nil {
		return "", fmt.Errorf("generate content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	text := strings.TrimSpace(out.text())
	if text == "" {
		if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: blocked: %s", ErrEmptyResponse, out.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	return text, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
