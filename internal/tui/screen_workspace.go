// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-joycribe/internal/workspace"
	"github.com/MKhiriev/go-joycribe/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// wsField is the editable workspace field holding keyboard focus.
type wsField int

const (
	fieldNone wsField = iota
	fieldTranscript
	fieldEntities
	fieldNotes
	fieldTags
)

const editorWidth = 80

type workspaceModel struct {
	state workspace.State
	focus wsField

	transcript textarea.Model
	entities   textinput.Model
	notes      textarea.Model
	tags       textinput.Model

	prompting bool
	mediaPath textinput.Model

	spinner spinner.Model
	busy    bool
	status  string
}

func newWorkspaceModel() workspaceModel {
	transcript := textarea.New()
	transcript.Placeholder = "Paste or type a transcript, or press o to transcribe a media file"
	transcript.ShowLineNumbers = false
	transcript.CharLimit = 0
	transcript.SetWidth(editorWidth)
	transcript.SetHeight(8)

	notes := textarea.New()
	notes.Placeholder = "Notes"
	notes.ShowLineNumbers = false
	notes.SetWidth(editorWidth)
	notes.SetHeight(3)

	entities := textinput.New()
	entities.Prompt = "Entities: "
	entities.Placeholder = "comma separated, e.g. product names, competitors"

	tags := textinput.New()
	tags.Prompt = "Tags: "
	tags.Placeholder = "comma separated"

	mediaPath := textinput.New()
	mediaPath.Prompt = "Media file: "
	mediaPath.Placeholder = "/path/to/call.mp3"

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return workspaceModel{
		transcript: transcript,
		entities:   entities,
		notes:      notes,
		tags:       tags,
		mediaPath:  mediaPath,
		spinner:    s,
	}
}

// load replaces the shown state. Fields the user is typing into keep their
// text.
func (m *workspaceModel) load(state workspace.State) {
	m.state = state
	if m.focus != fieldTranscript {
		m.transcript.SetValue(state.Transcript)
	}
	if m.focus != fieldEntities {
		m.entities.SetValue(state.CustomEntitiesInput)
	}
	if m.focus != fieldNotes {
		m.notes.SetValue(state.Notes)
	}
	if m.focus != fieldTags {
		m.tags.SetValue(strings.Join(state.Tags, ", "))
	}
}

func (m workspaceModel) processing() bool {
	return m.busy || m.state.Processing
}

// focusField moves keyboard focus to f. It returns the field that lost it.
func (m *workspaceModel) focusField(f wsField) (wsField, tea.Cmd) {
	prev := m.focus
	m.transcript.Blur()
	m.entities.Blur()
	m.notes.Blur()
	m.tags.Blur()

	m.focus = f
	switch f {
	case fieldTranscript:
		return prev, m.transcript.Focus()
	case fieldEntities:
		return prev, m.entities.Focus()
	case fieldNotes:
		return prev, m.notes.Focus()
	case fieldTags:
		return prev, m.tags.Focus()
	}
	return prev, nil
}

func nextField(f wsField) wsField {
	return (f + 1) % (fieldTags + 1)
}

func prevField(f wsField) wsField {
	return (f + fieldTags) % (fieldTags + 1)
}

// updateFocused forwards msg to the focused editor.
func (m *workspaceModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTranscript:
		m.transcript, cmd = m.transcript.Update(msg)
	case fieldEntities:
		m.entities, cmd = m.entities.Update(msg)
	case fieldNotes:
		m.notes, cmd = m.notes.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return cmd
}

// pendingEdit returns the edit of field f, or false when its text equals the
// shown state.
func (m workspaceModel) pendingEdit(f wsField) (workspace.Edit, bool) {
	switch f {
	case fieldTranscript:
		v := m.transcript.Value()
		return workspace.Edit{Transcript: &v}, v != m.state.Transcript
	case fieldEntities:
		v := m.entities.Value()
		return workspace.Edit{CustomEntitiesInput: &v}, v != m.state.CustomEntitiesInput
	case fieldNotes:
		v := m.notes.Value()
		return workspace.Edit{Notes: &v}, v != m.state.Notes
	case fieldTags:
		v := models.ParseTags(m.tags.Value())
		return workspace.Edit{Tags: &v}, !slices.Equal(v, m.state.Tags)
	}
	return workspace.Edit{}, false
}

func (m workspaceModel) View(s styles) string {
	var b strings.Builder

	source := models.ManualTranscriptName
	switch {
	case m.state.Selected != nil:
		source = m.state.Selected.FileName + "  " + m.state.Selected.Date
	case m.state.MediaName != "":
		source = m.state.MediaName
	}
	fmt.Fprintf(&b, "Source: %s\n", source)
	fmt.Fprintf(&b, "Persona: %s\n", m.state.Persona.Label())

	if m.processing() {
		msg := m.state.StatusMessage
		if msg == "" {
			msg = "Working..."
		}
		b.WriteString(m.spinner.View() + " " + msg + "\n")
	}
	if m.state.Error != "" {
		b.WriteString(s.error.Render(m.state.Error) + "\n")
	}

	b.WriteString("\n" + s.accent.Render("Transcript") + "\n")
	b.WriteString(m.transcript.View() + "\n")
	b.WriteString(m.entities.View() + "\n")

	if m.state.Selected != nil && m.state.Selected.Analysis != nil {
		b.WriteString("\n" + s.accent.Render("Analysis") + "\n")
		b.WriteString(renderAnalysis(*m.state.Selected.Analysis))
	}

	b.WriteString("\n" + s.accent.Render("Notes") + "\n")
	b.WriteString(m.notes.View() + "\n")
	b.WriteString(m.tags.View() + "\n")

	if m.prompting {
		b.WriteString("\n" + s.overlay.Render(m.mediaPath.View()+"\n\n"+s.help.Render("enter: transcribe  esc: cancel")) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + s.accent.Render(m.status) + "\n")
	}

	hotKeys := "tab: edit fields  a: analyze  o: open media  p: persona  c: copy export  x: clear  esc: back"
	if m.focus != fieldNone {
		hotKeys = "tab / shift+tab: next field  esc: stop editing  (changes are saved when you leave a field)"
	}

	return s.renderPage("JOYCRIBE · WORKSPACE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func renderAnalysis(a models.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Summary: %s\n", valueOrDash(a.Summary))
	fmt.Fprintf(&b, "Sentiment: %s\n", valueOrDash(string(a.Sentiment)))
	fmt.Fprintf(&b, "Keywords: %s\n", listOrDash(a.Keywords))
	fmt.Fprintf(&b, "Topics: %s\n", listOrDash(a.Topics))
	if len(a.SuggestedTags) > 0 {
		fmt.Fprintf(&b, "Suggested tags: %s\n", listOrDash(a.SuggestedTags))
	}

	for _, e := range a.CustomEntities {
		fmt.Fprintf(&b, "Entity %q: %s\n", e.Entity, listOrDash(e.Occurrences))
	}

	if sc := a.SalesCoachingInsights; sc != nil {
		fmt.Fprintf(&b, "Rating: %d/10  %s\n", sc.OverallRating, sc.RatingJustification)
		fmt.Fprintf(&b, "Talk to listen: %s\n", valueOrDash(sc.TalkToListenRatio))
		fmt.Fprintf(&b, "Strengths: %s\n", listOrDash(sc.Strengths))
		fmt.Fprintf(&b, "To improve: %s\n", listOrDash(sc.ImprovementAreas))
		for _, o := range sc.ObjectionHandling {
			fmt.Fprintf(&b, "Objection: %s\n  better: %s\n", o.Objection, o.SuggestedResponse)
		}
	}

	if si := a.SupportInsights; si != nil {
		fmt.Fprintf(&b, "Problem: %s\n", valueOrDash(si.ProblemDescription))
		fmt.Fprintf(&b, "Solution steps: %s\n", listOrDash(si.SolutionSteps))
		fmt.Fprintf(&b, "Technical terms: %s\n", listOrDash(si.TechnicalTerms))
		fmt.Fprintf(&b, "Escalation needed: %s\n", valueOrDash(si.EscalationNeeded))
		fmt.Fprintf(&b, "Next steps: %s\n", listOrDash(si.NextSteps))
	}

	if a.DiarizedTranscript != "" {
		b.WriteString("\n" + a.DiarizedTranscript + "\n")
	}

	return b.String()
}
