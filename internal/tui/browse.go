package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/secure-e-diary/internal/adapter"
	"github.com/MKhiriev/secure-e-diary/internal/caesar"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type stage int

const (
	stageList stage = iota
	stageKey
	stageCompose
	stageDecrypted
)

var errKeyNotNumber = errors.New("key must be a whole number")

type browseModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	copy    func(string) error

	stage   stage
	ids     []string
	idx     int
	loading bool
	saving  bool
	status  string
	errMsg  string

	keyInput  textinput.Model
	compose   textarea.Model
	decrypted string
}

func newBrowseModel(ctx context.Context, serverAdapter adapter.ServerAdapter, copyFn func(string) error) browseModel {
	keyInput := textinput.New()
	keyInput.Placeholder = strconv.Itoa(caesar.DefaultShift)
	keyInput.CharLimit = 12
	keyInput.Width = 12

	compose := textarea.New()
	compose.Placeholder = "Dear diary..."
	compose.SetWidth(60)
	compose.SetHeight(6)

	return browseModel{
		ctx:      ctx,
		adapter:  serverAdapter,
		copy:     copyFn,
		loading:  true,
		keyInput: keyInput,
		compose:  compose,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.cmdLoadEntries()
}

func (m browseModel) current() (string, bool) {
	if len(m.ids) == 0 || m.idx < 0 || m.idx >= len(m.ids) {
		return "", false
	}
	return m.ids[m.idx], true
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.ids = msg.ids
		if m.idx >= len(m.ids) {
			m.idx = len(m.ids) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case entrySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.stage = stageList
		m.compose.Reset()
		m.compose.Blur()
		m.status = "Entry saved: " + msg.id
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadEntries()
	case entryDecryptedMsg:
		if msg.err != nil {
			m.errMsg = decryptErrorMessage(msg.err)
			return m, nil
		}
		m.stage = stageDecrypted
		m.decrypted = msg.text
		m.keyInput.Reset()
		m.keyInput.Blur()
		m.errMsg = ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if key.Matches(keyMsg, keys.forceQ) {
		return m, tea.Quit
	}

	switch m.stage {
	case stageKey:
		return m.updateKey(keyMsg)
	case stageCompose:
		return m.updateCompose(keyMsg)
	case stageDecrypted:
		return m.updateDecrypted(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.ids)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoadEntries()
	case key.Matches(msg, keys.newItem):
		m.stage = stageCompose
		m.status = ""
		m.errMsg = ""
		return m, m.compose.Focus()
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "No entries yet"
			return m, nil
		}
		m.stage = stageKey
		m.status = ""
		m.errMsg = ""
		return m, m.keyInput.Focus()
	}

	return m, nil
}

func (m browseModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stage = stageList
		m.keyInput.Reset()
		m.keyInput.Blur()
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		id, ok := m.current()
		if !ok {
			m.stage = stageList
			return m, nil
		}
		value, err := strconv.Atoi(strings.TrimSpace(m.keyInput.Value()))
		if err != nil {
			m.errMsg = errKeyNotNumber.Error()
			return m, nil
		}
		return m, m.cmdDecrypt(id, value)
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m browseModel) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stage = stageList
		m.compose.Reset()
		m.compose.Blur()
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.submit):
		if m.saving {
			return m, nil
		}
		text := m.compose.Value()
		if text == "" {
			m.errMsg = "Nothing to save"
			return m, nil
		}
		m.saving = true
		return m, m.cmdSave(text)
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m browseModel) updateDecrypted(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.stage = stageList
		m.decrypted = ""
		m.status = ""
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.decrypted)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// updateInputs forwards non-key messages such as cursor blinks to the
// active input.
func (m browseModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.stage {
	case stageKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case stageCompose:
		m.compose, cmd = m.compose.Update(msg)
	}
	return m, cmd
}

func (m browseModel) cmdLoadEntries() tea.Cmd {
	return func() tea.Msg {
		ids, err := m.adapter.ListEntryIDs(m.ctx)
		return entriesLoadedMsg{ids: ids, err: err}
	}
}

// cmdSave shifts text on the client before it leaves the process.
func (m browseModel) cmdSave(text string) tea.Cmd {
	return func() tea.Msg {
		id, err := m.adapter.SaveEntry(m.ctx, caesar.Encrypt(text, caesar.DefaultShift))
		return entrySavedMsg{id: id, err: err}
	}
}

func (m browseModel) cmdDecrypt(id string, value int) tea.Cmd {
	return func() tea.Msg {
		text, err := m.adapter.DecryptEntry(m.ctx, id, value)
		return entryDecryptedMsg{id: id, text: text, err: err}
	}
}

func (m browseModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.copy(text)}
	}
}

func decryptErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return "Incorrect decryption key"
	case errors.Is(err, adapter.ErrNotFound):
		return "Entry not found, press esc and refresh with r"
	default:
		return fmt.Sprintf("Decrypt failed: %v", err)
	}
}
