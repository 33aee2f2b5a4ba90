// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-joycribe/internal/export"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/service"
	"github.com/MKhiriev/go-joycribe/internal/workspace"
	"github.com/MKhiriev/go-joycribe/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenHistory screen = iota
	screenTrash
	screenWorkspace
	screenDashboard
	screenSettings
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type appModel struct {
	ctx           context.Context
	services      *service.Services
	logger        *logger.Logger
	currentScreen screen

	history   historyModel
	trash     trashModel
	ws        workspaceModel
	dashboard dashboardModel
	settings  settingsModel
	styles    styles

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, services *service.Services, themeName string, log *logger.Logger) appModel {
	if log == nil {
		log = logger.Nop()
	}

	m := appModel{
		ctx:           ctx,
		services:      services,
		logger:        log,
		currentScreen: screenHistory,
		history:       newHistoryModel(),
		trash:         trashModel{loading: true},
		ws:            newWorkspaceModel(),
		dashboard:     dashboardModel{loading: true},
		settings:      settingsModel{themeIdx: themeIndex(themeName)},
	}
	if services.AppInfoService != nil {
		m.settings.version = services.AppInfoService.GetAppVersion(ctx)
	}
	if services.SettingsService != nil {
		m.settings.themeIdx = themeIndex(services.SettingsService.Theme(ctx, themeName))
	}
	m.styles = newStyles(m.settings.theme())
	m.ws.load(services.Orchestrator.Workspace())

	return m
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadHistory()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				pending := m.confirm
				m.showConfirm = false
				m.confirm = confirmModel{}
				return m, m.cmdConfirmed(pending)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}
	case historyLoadedMsg:
		m.history.setItems(msg.items)
		return m, nil
	case trashLoadedMsg:
		m.trash.setItems(msg.items)
		return m, nil
	case dashboardLoadedMsg:
		m.dashboard.loading = false
		m.dashboard.stats = msg.stats
		return m, nil
	case workspaceMsg:
		m.ws.busy = false
		m.ws.load(msg.state)
		if msg.err != nil {
			m.reportErr(msg.err)
			return m, nil
		}
		if msg.open {
			m.currentScreen = screenWorkspace
		}
		return m, nil
	case analysisDoneMsg:
		m.ws.busy = false
		m.ws.load(m.services.Orchestrator.Workspace())
		if msg.err != nil {
			m.reportErr(msg.err)
			return m, nil
		}
		m.ws.status = "Analysis saved to history"
		return m, tea.Batch(m.cmdLoadHistory(), cmdClearStatus())
	case notesSavedMsg:
		m.ws.load(m.services.Orchestrator.Workspace())
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		m.ws.status = "Saved"
		return m, cmdClearStatus()
	case recordsChangedMsg:
		m.ws.load(m.services.Orchestrator.Workspace())
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
		}
		return m, m.cmdReloadCurrent()
	case exportedMsg:
		if msg.err != nil {
			m.showErrorf(errorText(msg.err))
			return m, nil
		}
		return m, cmdCopyToClipboard(msg.text)
	case copiedMsg:
		m.setStatus("Copied to clipboard")
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("theme", msg.theme).Msg("theme is not persisted")
		}
		return m, nil
	case opFailedMsg:
		m.showErrorf(errorText(msg.err))
		return m, nil
	case spinner.TickMsg:
		if !m.ws.processing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.ws.spinner, cmd = m.ws.spinner.Update(msg)
		// status message of the running collaborator call
		m.ws.load(m.services.Orchestrator.Workspace())
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenHistory:
		return m.updateHistory(msg)
	case screenTrash:
		return m.updateTrash(msg)
	case screenWorkspace:
		return m.updateWorkspace(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenHistory:
		spin := ""
		if m.ws.processing() {
			spin = m.ws.spinner.View()
		}
		body = m.history.View(m.styles, spin)
	case screenTrash:
		body = m.trash.View(m.styles)
	case screenWorkspace:
		body = m.ws.View(m.styles)
	case screenDashboard:
		body = m.dashboard.View(m.styles)
	case screenSettings:
		body = m.settings.View(m.styles)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View(m.styles)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View(m.styles)
	}

	return m.styles.app.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// reportErr shows err unless it only says that a result arrived for a
// workspace the user has already left.
func (m *appModel) reportErr(err error) {
	if errors.Is(err, service.ErrStaleWorkspace) {
		m.logger.Debug().Err(err).Msg("discarding stale workspace result")
		return
	}
	m.showErrorf(errorText(err))
}

func (m *appModel) setStatus(status string) {
	m.history.status = status
	m.trash.status = status
	m.ws.status = status
}

func (m *appModel) askConfirm(action confirmAction, target models.RecordID, message string) {
	m.showConfirm = true
	m.confirm = confirmModel{action: action, target: target, message: message}
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if m.history.searching {
		if ok && (key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc)) {
			m.history.searching = false
			m.history.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.history.search, cmd = m.history.search.Update(msg)
		if m.history.search.Value() == m.history.filter.Search {
			return m, cmd
		}
		m.history.filter.Search = m.history.search.Value()
		return m, tea.Batch(cmd, m.cmdLoadHistory())
	}
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.items)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.history.searching = true
		return m, m.history.search.Focus()
	case key.Matches(keyMsg, keys.sentiment):
		m.history.filter.Sentiment = nextSentiment(m.history.filter.Sentiment)
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.persona):
		m.history.filter.Persona = nextPersona(m.history.filter.Persona)
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.enter):
		if r, ok := m.history.current(); ok {
			return m, m.cmdSelectRecord(r.ID)
		}
	case key.Matches(keyMsg, keys.rerun):
		if r, ok := m.history.current(); ok {
			return m, m.cmdRerun(r.ID)
		}
	case key.Matches(keyMsg, keys.trash):
		if r, ok := m.history.current(); ok {
			return m, m.cmdMoveToTrash(r.ID)
		}
	case key.Matches(keyMsg, keys.copy):
		if r, ok := m.history.current(); ok {
			return m, m.cmdExport(r.ID)
		}
	case key.Matches(keyMsg, keys.newItem):
		return m, m.cmdClear(true)
	case key.Matches(keyMsg, keys.binScreen):
		m.currentScreen = screenTrash
		return m, m.cmdLoadTrash()
	case key.Matches(keyMsg, keys.dashboard):
		m.currentScreen = screenDashboard
		return m, m.cmdLoadDashboard()
	case key.Matches(keyMsg, keys.settings):
		m.currentScreen = screenSettings
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateTrash(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHistory
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.up):
		if m.trash.idx > 0 {
			m.trash.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.trash.idx < len(m.trash.items)-1 {
			m.trash.idx++
		}
	case key.Matches(keyMsg, keys.restore):
		if r, ok := m.trash.current(); ok {
			return m, m.cmdRestore(r.ID)
		}
	case key.Matches(keyMsg, keys.delete):
		if r, ok := m.trash.current(); ok {
			m.askConfirm(confirmDeleteForever, r.ID, fmt.Sprintf("Permanently delete %q?", r.FileName))
		}
	case key.Matches(keyMsg, keys.emptyBin):
		if len(m.trash.items) > 0 {
			m.askConfirm(confirmEmptyBin, 0, fmt.Sprintf("Permanently delete all %d records in the recycle bin?", len(m.trash.items)))
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateWorkspace(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.ws.prompting {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.ws.prompting = false
				m.ws.mediaPath.Blur()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				m.ws.prompting = false
				m.ws.mediaPath.Blur()
				handle, err := openMediaFile(m.ws.mediaPath.Value())
				if err != nil {
					m.showErrorf(errorText(err))
					return m, nil
				}
				m.ws.mediaPath.SetValue("")
				m.ws.busy = true
				return m, tea.Batch(m.ws.spinner.Tick, m.cmdSelectMedia(handle))
			}
		}
		var cmd tea.Cmd
		m.ws.mediaPath, cmd = m.ws.mediaPath.Update(msg)
		return m, cmd
	}

	if m.ws.focus != fieldNone {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.tab):
				return m.moveFocus(nextField(m.ws.focus))
			case key.Matches(keyMsg, keys.backtab):
				return m.moveFocus(prevField(m.ws.focus))
			case key.Matches(keyMsg, keys.esc):
				return m.moveFocus(fieldNone)
			case key.Matches(keyMsg, keys.enter) && (m.ws.focus == fieldEntities || m.ws.focus == fieldTags):
				return m.moveFocus(fieldNone)
			}
		}
		return m, m.ws.updateFocused(msg)
	}

	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHistory
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.tab):
		return m.moveFocus(fieldTranscript)
	case key.Matches(keyMsg, keys.backtab):
		return m.moveFocus(fieldTags)
	case key.Matches(keyMsg, keys.analyze):
		if m.ws.processing() {
			m.showErrorf(service.UserMessage(service.ErrWorkspaceBusy))
			return m, nil
		}
		m.ws.busy = true
		return m, tea.Batch(m.ws.spinner.Tick, m.cmdRunAnalysis())
	case key.Matches(keyMsg, keys.openMedia):
		m.ws.prompting = true
		return m, m.ws.mediaPath.Focus()
	case key.Matches(keyMsg, keys.persona):
		persona := nextPersona(m.ws.state.Persona)
		if persona == "" {
			persona = models.Personas[0]
		}
		return m, m.cmdEditWorkspace(workspace.Edit{Persona: &persona})
	case key.Matches(keyMsg, keys.copy):
		if m.ws.state.Selected != nil {
			return m, m.cmdExport(m.ws.state.Selected.ID)
		}
	case key.Matches(keyMsg, keys.clear):
		return m, m.cmdClear(false)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// moveFocus moves the workspace focus and saves the field that lost it.
func (m appModel) moveFocus(f wsField) (tea.Model, tea.Cmd) {
	edit, changed := m.ws.pendingEdit(m.ws.focus)
	left := m.ws.focus
	_, focusCmd := m.ws.focusField(f)
	if !changed {
		return m, focusCmd
	}

	return m, tea.Batch(focusCmd, m.cmdSaveField(left, edit))
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHistory
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHistory
	case key.Matches(keyMsg, keys.theme), key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.down):
		m.settings.nextTheme()
		m.styles = newStyles(m.settings.theme())
		return m, m.cmdSaveTheme()
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.up):
		m.settings.prevTheme()
		m.styles = newStyles(m.settings.theme())
		return m, m.cmdSaveTheme()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

// ── commands ────────────────────────────────────────────────────────────────

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	filter := m.history.filter
	return func() tea.Msg {
		return historyLoadedMsg{items: svc.History(ctx, filter)}
	}
}

func (m appModel) cmdLoadTrash() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		return trashLoadedMsg{items: svc.Trash(ctx)}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		return dashboardLoadedMsg{stats: svc.Dashboard(ctx)}
	}
}

func (m appModel) cmdReloadCurrent() tea.Cmd {
	if m.currentScreen == screenTrash {
		return m.cmdLoadTrash()
	}
	return m.cmdLoadHistory()
}

func (m appModel) cmdSaveTheme() tea.Cmd {
	svc := m.services.SettingsService
	if svc == nil {
		return nil
	}
	ctx := m.ctx
	name := m.settings.theme().name
	return func() tea.Msg {
		return themeSavedMsg{theme: name, err: svc.SaveTheme(ctx, name)}
	}
}

func (m appModel) cmdClear(open bool) tea.Cmd {
	orch := m.services.Orchestrator
	return func() tea.Msg {
		return workspaceMsg{state: orch.Clear(), open: open}
	}
}

func (m appModel) cmdEditWorkspace(edit workspace.Edit) tea.Cmd {
	orch := m.services.Orchestrator
	return func() tea.Msg {
		state, err := orch.EditWorkspace(edit)
		return workspaceMsg{state: state, err: err}
	}
}

func (m appModel) cmdSelectRecord(id models.RecordID) tea.Cmd {
	ctx := m.ctx
	orch := m.services.Orchestrator
	return func() tea.Msg {
		state, err := orch.SelectRecord(ctx, id)
		return workspaceMsg{state: state, err: err, open: true}
	}
}

func (m appModel) cmdRerun(id models.RecordID) tea.Cmd {
	ctx := m.ctx
	orch := m.services.Orchestrator
	return func() tea.Msg {
		state, err := orch.RerunAnalysis(ctx, id)
		return workspaceMsg{state: state, err: err, open: true}
	}
}

func (m appModel) cmdSelectMedia(handle workspace.MediaHandle) tea.Cmd {
	ctx := m.ctx
	orch := m.services.Orchestrator
	return func() tea.Msg {
		state, err := orch.SelectMedia(ctx, handle)
		return workspaceMsg{state: state, err: err}
	}
}

func (m appModel) cmdRunAnalysis() tea.Cmd {
	ctx := m.ctx
	orch := m.services.Orchestrator
	return func() tea.Msg {
		record, err := orch.RunAnalysis(ctx)
		return analysisDoneMsg{record: record, err: err}
	}
}

// cmdSaveField persists notes and tags of a selected record and keeps every
// other edit in the workspace only.
func (m appModel) cmdSaveField(f wsField, edit workspace.Edit) tea.Cmd {
	selected := m.ws.state.Selected
	if selected == nil || (f != fieldNotes && f != fieldTags) {
		return m.cmdEditWorkspace(edit)
	}

	ctx := m.ctx
	orch := m.services.Orchestrator
	id := selected.ID
	patch := models.RecordPatch{Notes: edit.Notes, Tags: edit.Tags}
	return func() tea.Msg {
		_, err := orch.UpdateNotesOrTags(ctx, id, patch)
		return notesSavedMsg{err: err}
	}
}

func (m appModel) cmdMoveToTrash(id models.RecordID) tea.Cmd {
	ctx := m.ctx
	orch := m.services.Orchestrator
	return func() tea.Msg {
		return recordsChangedMsg{err: orch.MoveToTrash(ctx, id)}
	}
}

func (m appModel) cmdRestore(id models.RecordID) tea.Cmd {
	ctx := m.ctx
	orch := m.services.Orchestrator
	return func() tea.Msg {
		return recordsChangedMsg{err: orch.Restore(ctx, id)}
	}
}

func (m appModel) cmdConfirmed(c confirmModel) tea.Cmd {
	ctx := m.ctx
	orch := m.services.Orchestrator
	switch c.action {
	case confirmDeleteForever:
		return func() tea.Msg {
			return recordsChangedMsg{err: orch.DeleteForever(ctx, c.target)}
		}
	case confirmEmptyBin:
		return func() tea.Msg {
			return recordsChangedMsg{err: orch.EmptyTrash(ctx)}
		}
	}
	return nil
}

func (m appModel) cmdExport(id models.RecordID) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		doc, err := svc.Export(ctx, id, export.FormatTXT)
		if err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{text: string(doc.Data)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyToClipboard(text); err != nil {
			return opFailedMsg{err: fmt.Errorf("%w: %w", ErrClipboard, err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
