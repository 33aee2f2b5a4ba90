// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-joycribe/internal/app"
	"github.com/MKhiriev/go-joycribe/internal/export"
	"github.com/MKhiriev/go-joycribe/internal/logger"
	"github.com/MKhiriev/go-joycribe/internal/mock"
	"github.com/MKhiriev/go-joycribe/internal/service"
	"github.com/MKhiriev/go-joycribe/internal/store"
	"github.com/MKhiriev/go-joycribe/internal/view"
	"github.com/MKhiriev/go-joycribe/internal/workspace"
	"github.com/MKhiriev/go-joycribe/models"
)

type testDeps struct {
	orchestrator *mock.MockOrchestrator
	history      *mock.MockHistoryService
}

// newTestModel builds the app model over mocks. Workspace() keeps returning
// state for the whole test.
func newTestModel(t *testing.T, ctrl *gomock.Controller, state workspace.State) (appModel, testDeps) {
	t.Helper()

	deps := testDeps{
		orchestrator: mock.NewMockOrchestrator(ctrl),
		history:      mock.NewMockHistoryService(ctrl),
	}
	info := mock.NewMockAppInfoService(ctrl)
	info.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3").AnyTimes()
	deps.orchestrator.EXPECT().Workspace().Return(state).AnyTimes()

	services := &service.Services{
		Orchestrator:   deps.orchestrator,
		HistoryService: deps.history,
		AppInfoService: info,
	}

	return newAppModel(context.Background(), services, "Crimson Night", logger.Nop()), deps
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func sampleRecords() []models.Record {
	return []models.Record{
		{ID: 2, FileName: "renewal.mp3", Persona: models.PersonaSales, Status: models.StatusActive,
			Analysis: &models.Analysis{Summary: "renewal talk", Sentiment: models.SentimentPositive}},
		{ID: 1, FileName: models.ManualTranscriptName, Persona: models.PersonaGeneral, Status: models.StatusActive,
			Analysis: &models.Analysis{Summary: "chat", Sentiment: models.SentimentNeutral}},
	}
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewAppModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{Transcript: "hello", Persona: models.PersonaGeneral})

	assert.Equal(t, screenHistory, m.currentScreen)
	assert.Equal(t, "Crimson Night", m.settings.theme().name)
	assert.Equal(t, "v1.2.3", m.settings.version)
	assert.Equal(t, "hello", m.ws.transcript.Value())
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, "", logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = New(&service.Services{}, "", logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestInit_LoadsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	deps.history.EXPECT().History(gomock.Any(), view.Filter{}).Return(sampleRecords())

	msg := m.Init()()
	m, _ = update(t, m, msg)

	assert.False(t, m.history.loading)
	require.Len(t, m.history.items, 2)
	assert.Contains(t, m.View(), "renewal.mp3")
}

// ── history screen ───────────────────────────────────────────────────────────

func TestHistory_FilterCycling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})

	m, cmd := update(t, m, runes("s"))
	assert.Equal(t, models.SentimentPositive, m.history.filter.Sentiment)
	deps.history.EXPECT().History(gomock.Any(), view.Filter{Sentiment: models.SentimentPositive}).Return(nil)
	_, ok := cmd().(historyLoadedMsg)
	assert.True(t, ok)

	m, cmd = update(t, m, runes("p"))
	assert.Equal(t, models.PersonaGeneral, m.history.filter.Persona)
	deps.history.EXPECT().
		History(gomock.Any(), view.Filter{Sentiment: models.SentimentPositive, Persona: models.PersonaGeneral}).
		Return(nil)
	cmd()

	m, _ = update(t, m, historyLoadedMsg{})
	assert.Contains(t, m.View(), "No records match the filters")
}

func TestHistory_SearchCapturesKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})

	m, _ = update(t, m, runes("/"))
	require.True(t, m.history.searching)

	// p и s печатаются в строку поиска, а не переключают фильтры
	m, cmd := update(t, m, runes("p"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "p", m.history.filter.Search)
	assert.Empty(t, m.history.filter.Persona)

	m, _ = update(t, m, keyEnter)
	assert.False(t, m.history.searching)
	assert.Equal(t, "p", m.history.filter.Search)
}

func TestHistory_OpenRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	m, _ = update(t, m, historyLoadedMsg{items: sampleRecords()})
	m, _ = update(t, m, runes("j"))

	selected := sampleRecords()[1]
	deps.orchestrator.EXPECT().SelectRecord(gomock.Any(), models.RecordID(1)).
		Return(workspace.State{Selected: &selected, Transcript: "t", Persona: models.PersonaGeneral}, nil)

	m, cmd := update(t, m, keyEnter)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenWorkspace, m.currentScreen)
	require.NotNil(t, m.ws.state.Selected)
	assert.Equal(t, models.RecordID(1), m.ws.state.Selected.ID)
	assert.Equal(t, "t", m.ws.transcript.Value())
}

func TestHistory_OpenMissingRecordShowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	m, _ = update(t, m, historyLoadedMsg{items: sampleRecords()})

	deps.orchestrator.EXPECT().SelectRecord(gomock.Any(), models.RecordID(2)).
		Return(workspace.State{}, fmt.Errorf("%w: id 2", store.ErrRecordNotFound))

	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenHistory, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgRecordNotFound, m.errorOverlay.message)

	// пока открыт оверлей, q не выходит
	m, cmd = update(t, m, runes("q"))
	assert.Nil(t, cmd)
	assert.True(t, m.showError)

	m, _ = update(t, m, keyEsc)
	assert.False(t, m.showError)
}

func TestHistory_RerunOpensWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	m, _ = update(t, m, historyLoadedMsg{items: sampleRecords()})

	deps.orchestrator.EXPECT().RerunAnalysis(gomock.Any(), models.RecordID(2)).
		Return(workspace.State{Transcript: "again", Persona: models.PersonaSales}, nil)

	m, cmd := update(t, m, runes("r"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenWorkspace, m.currentScreen)
	assert.Nil(t, m.ws.state.Selected)
	assert.Equal(t, models.PersonaSales, m.ws.state.Persona)
}

func TestHistory_MoveToTrashReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	m, _ = update(t, m, historyLoadedMsg{items: sampleRecords()})

	deps.orchestrator.EXPECT().MoveToTrash(gomock.Any(), models.RecordID(2)).Return(nil)
	m, cmd := update(t, m, runes("d"))
	m, cmd = update(t, m, cmd())

	deps.history.EXPECT().History(gomock.Any(), view.Filter{}).Return(sampleRecords()[1:])
	m, _ = update(t, m, cmd())

	assert.False(t, m.showError)
	require.Len(t, m.history.items, 1)
	assert.Equal(t, 0, m.history.idx)
}

func TestHistory_MoveToTrashFailureShowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	m, _ = update(t, m, historyLoadedMsg{items: sampleRecords()})

	deps.orchestrator.EXPECT().MoveToTrash(gomock.Any(), models.RecordID(2)).
		Return(fmt.Errorf("%w: disk full", store.ErrPersistence))
	m, cmd := update(t, m, runes("d"))
	m, cmd = update(t, m, cmd())

	assert.True(t, m.showError)
	assert.Equal(t, app.MsgPersistenceFailed, m.errorOverlay.message)
	assert.NotNil(t, cmd)
}

func TestHistory_CopyExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	defer func() { copyToClipboard = orig }()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	m, _ = update(t, m, historyLoadedMsg{items: sampleRecords()})

	deps.history.EXPECT().Export(gomock.Any(), models.RecordID(2), export.FormatTXT).
		Return(export.Document{Data: []byte("Call Analysis Report")}, nil)

	m, cmd := update(t, m, runes("c"))
	m, cmd = update(t, m, cmd())
	m, _ = update(t, m, cmd())

	assert.Equal(t, "Call Analysis Report", copied)
	assert.Equal(t, "Copied to clipboard", m.history.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.history.status)
}

func TestHistory_CopyExportClipboardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no display") }
	defer func() { copyToClipboard = orig }()

	m, _ := newTestModel(t, ctrl, workspace.State{})

	m, cmd := update(t, m, exportedMsg{text: "x"})
	m, _ = update(t, m, cmd())

	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, ErrClipboard.Error())
	assert.Contains(t, m.errorOverlay.message, "no display")
}

func TestHistory_Quit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── recycle bin ──────────────────────────────────────────────────────────────

func trashScreen(t *testing.T, ctrl *gomock.Controller) (appModel, testDeps) {
	t.Helper()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	trashed := sampleRecords()
	for i := range trashed {
		trashed[i].Status = models.StatusTrashed
	}

	m, cmd := update(t, m, runes("b"))
	require.Equal(t, screenTrash, m.currentScreen)
	deps.history.EXPECT().Trash(gomock.Any()).Return(trashed)
	m, _ = update(t, m, cmd())

	return m, deps
}

func TestTrash_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := trashScreen(t, ctrl)

	deps.orchestrator.EXPECT().Restore(gomock.Any(), models.RecordID(2)).Return(nil)
	m, cmd := update(t, m, runes("r"))
	m, cmd = update(t, m, cmd())

	deps.history.EXPECT().Trash(gomock.Any()).Return(nil)
	m, _ = update(t, m, cmd())

	assert.Empty(t, m.trash.items)
	assert.Contains(t, m.View(), "The recycle bin is empty")
}

func TestTrash_DeleteForeverNeedsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := trashScreen(t, ctrl)

	m, cmd := update(t, m, runes("d"))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "renewal.mp3")

	// отказ ничего не удаляет
	m, cmd = update(t, m, runes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)

	m, _ = update(t, m, runes("d"))
	deps.orchestrator.EXPECT().DeleteForever(gomock.Any(), models.RecordID(2)).Return(nil)
	m, cmd = update(t, m, runes("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)

	msg, ok := cmd().(recordsChangedMsg)
	require.True(t, ok)
	assert.NoError(t, msg.err)
}

func TestTrash_EmptyBinNeedsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := trashScreen(t, ctrl)

	m, _ = update(t, m, runes("E"))
	require.True(t, m.showConfirm)
	assert.Equal(t, confirmEmptyBin, m.confirm.action)

	deps.orchestrator.EXPECT().EmptyTrash(gomock.Any()).Return(nil)
	_, cmd := update(t, m, runes("y"))
	cmd()
}

func TestTrash_EmptyBinWhenAlreadyEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})
	m.currentScreen = screenTrash
	m, _ = update(t, m, trashLoadedMsg{})

	m, _ = update(t, m, runes("E"))
	assert.False(t, m.showConfirm)
}

func TestTrash_BackReloadsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := trashScreen(t, ctrl)

	m, cmd := update(t, m, keyEsc)
	assert.Equal(t, screenHistory, m.currentScreen)

	deps.history.EXPECT().History(gomock.Any(), view.Filter{}).Return(nil)
	cmd()
}

// ── workspace ────────────────────────────────────────────────────────────────

func TestWorkspace_AnalyzeSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{Transcript: "hello", Persona: models.PersonaGeneral})
	m.currentScreen = screenWorkspace

	m, cmd := update(t, m, runes("a"))
	require.NotNil(t, cmd)
	assert.True(t, m.ws.busy)
	assert.Contains(t, m.View(), "Working...")

	record := models.Record{ID: 10, FileName: models.ManualTranscriptName}
	deps.orchestrator.EXPECT().RunAnalysis(gomock.Any()).Return(record, nil)
	msg, ok := m.cmdRunAnalysis()().(analysisDoneMsg)
	require.True(t, ok)

	m, _ = update(t, m, msg)
	assert.False(t, m.ws.busy)
	assert.False(t, m.showError)
	assert.Equal(t, "Analysis saved to history", m.ws.status)
}

func TestWorkspace_AnalyzeFailureShowsCollaboratorMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{Transcript: "hello"})
	m.currentScreen = screenWorkspace

	err := fmt.Errorf("%w: %w", service.ErrAnalysisFailed, errors.New("quota exceeded"))
	m, _ = update(t, m, analysisDoneMsg{err: err})

	assert.True(t, m.showError)
	assert.Equal(t, "quota exceeded", m.errorOverlay.message)
}

func TestWorkspace_StaleResultIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})
	m.ws.busy = true

	m, _ = update(t, m, analysisDoneMsg{err: fmt.Errorf("%w: %w", service.ErrStaleWorkspace, service.ErrAnalysisFailed)})

	assert.False(t, m.showError)
	assert.False(t, m.ws.busy)
}

func TestWorkspace_AnalyzeWhileBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{Processing: true, StatusMessage: app.MsgTranscribing})
	m.currentScreen = screenWorkspace

	assert.Contains(t, m.View(), app.MsgTranscribing)

	m, _ = update(t, m, runes("a"))
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgWorkspaceBusy, m.errorOverlay.message)
}

func TestWorkspace_PersonaCycling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{Persona: models.PersonaPersonal})
	m.currentScreen = screenWorkspace

	// после последней персоны снова первая, без пустого значения
	want := models.PersonaGeneral
	deps.orchestrator.EXPECT().EditWorkspace(workspace.Edit{Persona: &want}).
		Return(workspace.State{Persona: want}, nil)

	m, cmd := update(t, m, runes("p"))
	m, _ = update(t, m, cmd())

	assert.Equal(t, models.PersonaGeneral, m.ws.state.Persona)
	assert.Equal(t, screenWorkspace, m.currentScreen)
}

func TestWorkspace_FocusCycleBlocksHotKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})
	m.currentScreen = screenWorkspace

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, fieldTranscript, m.ws.focus)

	// a печатается в расшифровку, анализ не запускается
	m, _ = update(t, m, runes("a"))
	assert.False(t, m.ws.busy)
	assert.Equal(t, "a", m.ws.transcript.Value())

	_, changed := m.ws.pendingEdit(fieldTranscript)
	assert.True(t, changed)

	m, cmd := update(t, m, keyEsc)
	assert.Equal(t, fieldNone, m.ws.focus)
	assert.NotNil(t, cmd)
}

func TestWorkspace_BackToHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})
	m.currentScreen = screenWorkspace

	m, cmd := update(t, m, keyEsc)
	assert.Equal(t, screenHistory, m.currentScreen)

	deps.history.EXPECT().History(gomock.Any(), view.Filter{}).Return(nil)
	cmd()
}

func TestCmdSaveField(t *testing.T) {
	selected := models.Record{ID: 7, FileName: "call.mp3", Notes: "old"}

	t.Run("notes of a selected record are persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m, deps := newTestModel(t, ctrl, workspace.State{Selected: &selected, Notes: "old"})

		notes := "follow up friday"
		deps.orchestrator.EXPECT().
			UpdateNotesOrTags(gomock.Any(), models.RecordID(7), models.RecordPatch{Notes: &notes}).
			Return([]models.Record{selected}, nil)

		msg, ok := m.cmdSaveField(fieldNotes, workspace.Edit{Notes: &notes})().(notesSavedMsg)
		require.True(t, ok)
		assert.NoError(t, msg.err)

		m, _ = update(t, m, msg)
		assert.Equal(t, "Saved", m.ws.status)
	})

	t.Run("tags without selection stay in the workspace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m, deps := newTestModel(t, ctrl, workspace.State{})

		tags := []string{"vip"}
		deps.orchestrator.EXPECT().EditWorkspace(workspace.Edit{Tags: &tags}).
			Return(workspace.State{Tags: tags}, nil)

		msg, ok := m.cmdSaveField(fieldTags, workspace.Edit{Tags: &tags})().(workspaceMsg)
		require.True(t, ok)
		assert.Equal(t, []string{"vip"}, msg.state.Tags)
	})

	t.Run("transcript of a selected record stays in the workspace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m, deps := newTestModel(t, ctrl, workspace.State{Selected: &selected})

		transcript := "edited"
		deps.orchestrator.EXPECT().EditWorkspace(workspace.Edit{Transcript: &transcript}).
			Return(workspace.State{Selected: &selected, Transcript: transcript}, nil)

		_, ok := m.cmdSaveField(fieldTranscript, workspace.Edit{Transcript: &transcript})().(workspaceMsg)
		assert.True(t, ok)
	})

	t.Run("save failure shows error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m, _ := newTestModel(t, ctrl, workspace.State{Selected: &selected})

		m, _ = update(t, m, notesSavedMsg{err: fmt.Errorf("%w: boom", store.ErrPersistence)})
		assert.True(t, m.showError)
		assert.Equal(t, app.MsgPersistenceFailed, m.errorOverlay.message)
	})
}

func TestWorkspace_MediaPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "call.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3\x03\x00\x00\x00"), 0o600))

	m, deps := newTestModel(t, ctrl, workspace.State{})
	m.currentScreen = screenWorkspace

	m, _ = update(t, m, runes("o"))
	require.True(t, m.ws.prompting)
	assert.Contains(t, m.View(), "Media file:")

	m.ws.mediaPath.SetValue(path)
	m, cmd := update(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.False(t, m.ws.prompting)
	assert.True(t, m.ws.busy)

	deps.orchestrator.EXPECT().SelectMedia(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h workspace.MediaHandle) (workspace.State, error) {
			assert.Equal(t, "call.mp3", h.Media().Name)
			assert.Equal(t, "audio/mpeg", h.Media().MIMEType)
			return workspace.State{MediaName: "call.mp3", Transcript: "hi"}, nil
		})

	handle, err := openMediaFile(path)
	require.NoError(t, err)
	m, _ = update(t, m, m.cmdSelectMedia(handle)())

	assert.False(t, m.ws.busy)
	assert.Equal(t, "hi", m.ws.transcript.Value())
	assert.Contains(t, m.View(), "Source: call.mp3")
}

func TestWorkspace_MediaPromptBadPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})
	m.currentScreen = screenWorkspace

	m, _ = update(t, m, runes("o"))
	m.ws.mediaPath.SetValue(filepath.Join(t.TempDir(), "missing.mp3"))
	m, cmd := update(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.False(t, m.ws.busy)
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, ErrMediaUnreadable.Error())
}

func TestWorkspace_TranscriptionFailureKeepsWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})
	m.currentScreen = screenWorkspace
	m.ws.busy = true

	m, _ = update(t, m, workspaceMsg{
		state: workspace.State{MediaName: "call.mp3", Error: app.MsgTranscriptionFailed},
		err:   service.ErrTranscriptionFailed,
	})

	assert.Equal(t, screenWorkspace, m.currentScreen)
	assert.Equal(t, app.MsgTranscriptionFailed, m.errorOverlay.message)
	assert.Contains(t, m.View(), app.MsgTranscriptionFailed)
}

// ── dashboard and settings ───────────────────────────────────────────────────

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, deps := newTestModel(t, ctrl, workspace.State{})

	m, cmd := update(t, m, runes("g"))
	assert.Equal(t, screenDashboard, m.currentScreen)

	deps.history.EXPECT().Dashboard(gomock.Any()).Return(view.Dashboard(sampleRecords()))
	m, _ = update(t, m, cmd())

	out := m.View()
	assert.Contains(t, out, "Analysed calls: 2")
	assert.Contains(t, out, "Sales Coach")
}

func TestSettings_ThemeCycling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})

	m, _ = update(t, m, runes(","))
	require.Equal(t, screenSettings, m.currentScreen)
	assert.Contains(t, m.View(), "v1.2.3")

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, "Forest Green", m.settings.theme().name)
	m, _ = update(t, m, runes("t"))
	m, _ = update(t, m, runes("t"))
	assert.Equal(t, "Default Cyan", m.settings.theme().name)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Royal Purple", m.settings.theme().name)

	m, _ = update(t, m, keyEsc)
	assert.Equal(t, screenHistory, m.currentScreen)
}

func TestSettings_ThemeIsPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orch := mock.NewMockOrchestrator(ctrl)
	orch.EXPECT().Workspace().Return(workspace.State{}).AnyTimes()
	settings := mock.NewMockSettingsService(ctrl)
	// сохранённая тема имеет приоритет над настроенной
	settings.EXPECT().Theme(gomock.Any(), "Crimson Night").Return("Royal Purple")

	services := &service.Services{
		Orchestrator:    orch,
		HistoryService:  mock.NewMockHistoryService(ctrl),
		SettingsService: settings,
	}
	m := newAppModel(context.Background(), services, "Crimson Night", logger.Nop())
	require.Equal(t, "Royal Purple", m.settings.theme().name)

	m, _ = update(t, m, runes(","))
	m, cmd := update(t, m, runes("t"))
	assert.Equal(t, "Default Cyan", m.settings.theme().name)
	require.NotNil(t, cmd)

	settings.EXPECT().SaveTheme(gomock.Any(), "Default Cyan").Return(nil)
	msg := cmd()
	assert.Equal(t, themeSavedMsg{theme: "Default Cyan"}, msg)

	// ошибка сохранения не мешает работе
	settings.EXPECT().SaveTheme(gomock.Any(), "Royal Purple").Return(errors.New("disk full"))
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, cmd())
	assert.False(t, m.showError)
	assert.Equal(t, "Royal Purple", m.settings.theme().name)
}

func TestCtrlCQuitsWhileTyping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestModel(t, ctrl, workspace.State{})
	m, _ = update(t, m, runes("/"))

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
