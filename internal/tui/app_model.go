// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/browse"
	"github.com/MKhiriev/go-notes-keeper/internal/editor"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const defaultWidth = 80

var errExportNotConfigured = errors.New("export directory is not configured")

type appMode int

const (
	modePublic appMode = iota
	modeLogin
	modeManager
)

// browserView is the navigation shared by the public viewer and the
// manager.
type browserView interface {
	State() browse.State
	Folders() []models.FolderSummary
	ActiveFolder() (models.Folder, bool)
	OverlayNote() (models.Note, bool)
	SelectFolder(folderID string) bool
	ClearSelection() bool
	OpenViewer(noteID string) bool
	CloseOverlay() bool
}

// deleteTarget is the folder, or the note of a folder, awaiting delete
// confirmation.
type deleteTarget struct {
	folderID string
	noteID   string
	name     string
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	exporter  store.NoteExporter
	buildInfo models.AppBuildInfo
	blockIDs  editor.IDGenerator

	mode    appMode
	session models.Session
	public  *browse.PublicViewer
	manager *browse.Manager

	folderIdx int
	noteIdx   int
	scroll    int
	width     int

	login  loginModel
	editor editorModel
	prompt promptModel

	showPrompt    bool
	showConfirm   bool
	confirm       confirmModel
	pendingDelete deleteTarget
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool

	publishing bool
	spinner    spinner.Model
	status     string
	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, exporter store.NoteExporter, buildInfo models.AppBuildInfo) *appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &appModel{
		ctx:       ctx,
		services:  services,
		exporter:  exporter,
		buildInfo: buildInfo,
		blockIDs:  utils.NewUUIDGenerator(),
		width:     defaultWidth,
		login:     newLoginModel(),
		spinner:   s,
	}
	m.public = browse.NewPublicViewer(services.ContentService, m.openLogin)
	m.manager = browse.NewManager(services.ContentService)

	m.session = services.SessionService.Current()
	if m.session.IsLoggedIn {
		m.mode = modeManager
	}

	return m
}

func (m *appModel) Init() tea.Cmd {
	return nil
}

// nav returns the browser of the current mode.
func (m *appModel) nav() browserView {
	if m.mode == modeManager {
		return m.manager
	}
	return m.public
}

// openLogin is the public viewer's login request.
func (m *appModel) openLogin() {
	m.mode = modeLogin
	m.login = newLoginModel()
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case logoutDoneMsg:
		if msg.err != nil {
			logger.FromContext(m.ctx).Err(msg.err).Msg("logout")
		}
		m.session = m.services.SessionService.Current()
		m.mode = modePublic
		m.public = browse.NewPublicViewer(m.services.ContentService, m.openLogin)
		m.folderIdx, m.noteIdx = 0, 0
		return m, m.setStatus("Logged out")
	case publishDoneMsg:
		m.publishing = false
		if msg.err != nil {
			m.showErrorf(describeError(msg.err))
			return m, nil
		}
		return m, m.setStatus(fmt.Sprintf("Published %d folders", msg.folders))
	case exportDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, m.setStatus("Exported to " + msg.path)
	case copiedMsg:
		return m, m.setStatus("Copied!")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case errMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case spinner.TickMsg:
		if !m.publishing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.showPrompt {
		return m.updatePrompt(msg)
	}
	if m.mode == modeLogin {
		return m.updateLogin(msg)
	}

	state := m.nav().State()
	switch {
	case state.Overlay == browse.OverlayEditor:
		return m.updateEditor(msg)
	case state.Overlay == browse.OverlayViewer:
		return m.updateViewer(msg)
	case state.View == browse.ViewFolder:
		return m.updateFolder(msg)
	}
	return m.updateHome(msg)
}

func (m *appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	if m.mode == modeLogin {
		body = m.login.View()
	} else {
		state := m.nav().State()
		switch {
		case state.Overlay == browse.OverlayEditor:
			body = m.editor.View()
		case state.Overlay == browse.OverlayViewer:
			body = m.viewerView()
		case state.View == browse.ViewFolder:
			body = m.folderView()
		default:
			body = m.homeView()
		}
	}

	if m.showPrompt {
		body += "\n\n" + m.prompt.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setStatus(status string) tea.Cmd {
	m.status = status
	return cmdClearStatus()
}

func (m *appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	folders := m.nav().Folders()
	m.folderIdx = clampIndex(m.folderIdx, len(folders))
	folder, hasFolder := at(folders, m.folderIdx)

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.folderIdx > 0 {
			m.folderIdx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.folderIdx < len(folders)-1 {
			m.folderIdx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if hasFolder && m.nav().SelectFolder(folder.ID) {
			m.noteIdx = 0
		}
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.session):
		return m, m.toggleSession()
	}

	if m.mode != modeManager {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.newItem):
		m.showPrompt = true
		m.prompt = newPromptModel("New folder", "folder name")
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		if hasFolder {
			m.askDelete(deleteTarget{folderID: folder.ID, name: folder.Name})
		}
	case key.Matches(keyMsg, keys.publish):
		return m, m.startPublish()
	}

	return m, nil
}

func (m *appModel) updateFolder(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	folder, ok := m.nav().ActiveFolder()
	if !ok {
		m.nav().ClearSelection()
		return m, nil
	}
	m.noteIdx = clampIndex(m.noteIdx, len(folder.Files))
	note, hasNote := at(folder.Files, m.noteIdx)

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.noteIdx > 0 {
			m.noteIdx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.noteIdx < len(folder.Files)-1 {
			m.noteIdx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if hasNote && m.nav().OpenViewer(note.ID) {
			m.scroll = 0
		}
		return m, nil
	case key.Matches(keyMsg, keys.esc):
		m.nav().ClearSelection()
		m.noteIdx = 0
		return m, nil
	case key.Matches(keyMsg, keys.session):
		return m, m.toggleSession()
	}

	if m.mode != modeManager {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.newItem):
		return m, m.openEditor("")
	case key.Matches(keyMsg, keys.edit):
		if hasNote {
			return m, m.openEditor(note.ID)
		}
	case key.Matches(keyMsg, keys.delete):
		if hasNote {
			m.askDelete(deleteTarget{folderID: folder.ID, noteID: note.ID, name: note.Name})
		}
	case key.Matches(keyMsg, keys.publish):
		return m, m.startPublish()
	}

	return m, nil
}

func (m *appModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	note, ok := m.nav().OverlayNote()
	if !ok {
		m.nav().CloseOverlay()
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.nav().CloseOverlay()
	case key.Matches(keyMsg, keys.up):
		if m.scroll > 0 {
			m.scroll--
		}
	case key.Matches(keyMsg, keys.down):
		if m.scroll < len(m.viewerLines(note))-1 {
			m.scroll++
		}
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(note.Content.PlainText())
	case key.Matches(keyMsg, keys.export):
		folder, _ := m.nav().ActiveFolder()
		return m, m.cmdExport(folder.Name, note)
	case m.mode == modeManager && key.Matches(keyMsg, keys.edit):
		m.manager.CloseOverlay()
		return m, m.openEditor(note.ID)
	case m.mode == modeManager && key.Matches(keyMsg, keys.delete):
		folder, _ := m.nav().ActiveFolder()
		m.askDelete(deleteTarget{folderID: folder.ID, noteID: note.ID, name: note.Name})
	}

	return m, nil
}

// openEditor opens the editor overlay on a note of the active folder, or on
// a new note when noteID is empty.
func (m *appModel) openEditor(noteID string) tea.Cmd {
	if !m.manager.OpenEditor(noteID) {
		return nil
	}

	name, content := "", models.Document{}
	if note, ok := m.manager.OverlayNote(); ok {
		name, content = note.Name, note.Content
	}

	m.editor = newEditorModel(editor.NewDraft(m.blockIDs, name, content), m.width)
	return textinput.Blink
}

func (m *appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, action, cmd := m.editor.Update(msg)
	m.editor = updated

	switch action {
	case editorSave:
		if !m.manager.SaveEditor(m.ctx, m.editor.draft) {
			m.showErrorf("Enter a file name to save the note")
			return m, nil
		}
		return m, m.setStatus("Saved " + m.editor.draft.Name())
	case editorCancel:
		m.manager.CloseOverlay()
		return m, nil
	}

	return m, cmd
}

func (m *appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modePublic
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			credentials := m.login.credentials()
			if credentials.Login == "" {
				m.login.errMsg = "Username is required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(credentials)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m *appModel) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		m.login.errMsg = describeError(msg.err)
		return m, nil
	}

	m.session = msg.session
	m.mode = modeManager
	m.manager = browse.NewManager(m.services.ContentService)
	m.folderIdx, m.noteIdx = 0, 0
	m.login = newLoginModel()

	status := "Logged in as " + msg.session.Username
	if msg.connectErr != nil {
		status += " · publishing unavailable: " + describeError(msg.connectErr)
	}
	return m, m.setStatus(status)
}

func (m *appModel) toggleSession() tea.Cmd {
	if m.mode == modePublic {
		m.public.RequestLogin()
		return textinput.Blink
	}
	return m.cmdLogout()
}

func (m *appModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.showPrompt = false
			if _, created := m.manager.CreateFolder(m.ctx, m.prompt.input.Value()); !created {
				m.showErrorf("Folder name is required")
				return m, nil
			}
			m.folderIdx = len(m.nav().Folders()) - 1
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.showPrompt = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m *appModel) askDelete(target deleteTarget) {
	m.pendingDelete = target
	m.confirm = confirmModel{message: target.name}
	m.showConfirm = true
}

func (m *appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		target := m.pendingDelete
		m.pendingDelete = deleteTarget{}
		return m, m.deleteTarget(target)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = deleteTarget{}
	}
	return m, nil
}

func (m *appModel) deleteTarget(target deleteTarget) tea.Cmd {
	if target.noteID != "" {
		if !m.manager.DeleteNote(m.ctx, target.noteID) {
			return nil
		}
		if folder, ok := m.manager.ActiveFolder(); ok {
			m.noteIdx = clampIndex(m.noteIdx, len(folder.Files))
		}
		return m.setStatus("Deleted " + target.name)
	}

	if target.folderID == "" || !m.manager.DeleteFolder(m.ctx, target.folderID) {
		return nil
	}
	m.folderIdx = clampIndex(m.folderIdx, len(m.manager.Folders()))
	return m.setStatus("Deleted " + target.name)
}

func (m *appModel) startPublish() tea.Cmd {
	if m.publishing {
		return nil
	}
	if !m.services.PublishService.Enabled() {
		m.showErrorf(describeError(service.ErrPublishingNotConfigured))
		return nil
	}
	m.publishing = true
	return tea.Batch(m.spinner.Tick, m.cmdPublish())
}

func (m *appModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	publish := m.services.PublishService
	return func() tea.Msg {
		session, err := sessions.Login(ctx, credentials)
		if err != nil {
			return loginDoneMsg{err: err}
		}

		var connectErr error
		if publish.Enabled() {
			connectErr = publish.Connect(ctx, credentials)
		}
		return loginDoneMsg{session: session, connectErr: connectErr}
	}
}

func (m *appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	return func() tea.Msg {
		return logoutDoneMsg{err: sessions.Logout(ctx)}
	}
}

func (m *appModel) cmdPublish() tea.Cmd {
	ctx := m.ctx
	publish := m.services.PublishService
	folders := m.services.ContentService.Folders()
	return func() tea.Msg {
		err := publish.Publish(ctx, folders)
		return publishDoneMsg{folders: len(folders), err: err}
	}
}

func (m *appModel) cmdExport(folderName string, note models.Note) tea.Cmd {
	ctx := m.ctx
	exporter := m.exporter
	return func() tea.Msg {
		if exporter == nil {
			return exportDoneMsg{err: errExportNotConfigured}
		}
		path, err := exporter.Export(ctx, folderName, note)
		return exportDoneMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
