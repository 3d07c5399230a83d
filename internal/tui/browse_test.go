package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/secure-e-diary/internal/adapter"
	"github.com/MKhiriev/secure-e-diary/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (browseModel, *mock.MockServerAdapter, *[]string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	var copied []string
	copyFn := func(text string) error {
		copied = append(copied, text)
		return nil
	}

	return newBrowseModel(context.Background(), serverAdapter, copyFn), serverAdapter, &copied
}

// press feeds msg to the model and returns the updated model.
func press(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	updated, ok := next.(browseModel)
	require.True(t, ok)
	return updated, cmd
}

// loaded returns a model that already shows ids.
func loaded(t *testing.T, m browseModel, ids ...string) browseModel {
	t.Helper()

	m, _ = press(t, m, entriesLoadedMsg{ids: ids})
	return m
}

func TestInit_LoadsEntries(t *testing.T) {
	m, serverAdapter, _ := newTestModel(t)
	serverAdapter.EXPECT().ListEntryIDs(gomock.Any()).Return([]string{"a", "b"}, nil)

	msg := m.Init()()

	m, _ = press(t, m, msg)
	assert.False(t, m.loading)
	assert.Equal(t, []string{"a", "b"}, m.ids)
	assert.Contains(t, m.View(), "a")
}

func TestEntriesLoaded_Error(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, entriesLoadedMsg{err: errors.New("connection refused")})

	assert.Equal(t, "connection refused", m.errMsg)
	assert.Contains(t, m.View(), "connection refused")
}

func TestList_Navigation(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = loaded(t, m, "a", "b", "c")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, runes("j"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.idx)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.idx)

	m = loaded(t, m, "a")
	assert.Equal(t, 0, m.idx)
}

func TestList_EnterWithoutEntries(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = loaded(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, stageList, m.stage)
	assert.Equal(t, "No entries yet", m.status)
}

func TestDecryptFlow_Success(t *testing.T) {
	m, serverAdapter, copied := newTestModel(t)
	m = loaded(t, m, "entry-1")
	serverAdapter.EXPECT().DecryptEntry(gomock.Any(), "entry-1", 3).Return("Hello", nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stageKey, m.stage)

	m, _ = press(t, m, runes("3"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Equal(t, stageDecrypted, m.stage)
	assert.Equal(t, "Hello", m.decrypted)
	assert.Contains(t, m.View(), "Hello")

	m, cmd = press(t, m, runes("c"))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	assert.Equal(t, []string{"Hello"}, *copied)
	assert.Equal(t, "Copied to clipboard", m.status)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stageList, m.stage)
	assert.Empty(t, m.decrypted)
}

func TestDecryptFlow_KeyErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "wrong key", err: fmt.Errorf("%w: Incorrect decryption key", adapter.ErrForbidden), want: "Incorrect decryption key"},
		{name: "unknown id", err: fmt.Errorf("%w: Entry not found", adapter.ErrNotFound), want: "Entry not found"},
		{name: "transport", err: errors.New("timeout"), want: "Decrypt failed: timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, serverAdapter, _ := newTestModel(t)
			m = loaded(t, m, "entry-1")
			serverAdapter.EXPECT().DecryptEntry(gomock.Any(), "entry-1", 7).Return("", tt.err)

			m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			m, _ = press(t, m, runes("7"))
			m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			m, _ = press(t, m, cmd())

			assert.Equal(t, stageKey, m.stage)
			assert.Contains(t, m.errMsg, tt.want)
		})
	}
}

func TestDecryptFlow_KeyNotNumber(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = loaded(t, m, "entry-1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, runes("abc"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, errKeyNotNumber.Error(), m.errMsg)
}

func TestDecryptFlow_QuitKeyIsTyped(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = loaded(t, m, "entry-1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, runes("q"))

	assert.Equal(t, stageKey, m.stage)
	assert.Equal(t, "q", m.keyInput.Value())
}

func TestComposeFlow_EncryptsBeforeSaving(t *testing.T) {
	m, serverAdapter, _ := newTestModel(t)
	m = loaded(t, m)

	gomock.InOrder(
		serverAdapter.EXPECT().SaveEntry(gomock.Any(), "Kl").Return("entry-9", nil),
		serverAdapter.EXPECT().ListEntryIDs(gomock.Any()).Return([]string{"entry-9"}, nil),
	)

	m, _ = press(t, m, runes("n"))
	require.Equal(t, stageCompose, m.stage)

	m, _ = press(t, m, runes("Hi"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.saving)

	m, cmd = press(t, m, cmd())
	assert.Equal(t, stageList, m.stage)
	assert.Equal(t, "Entry saved: entry-9", m.status)
	assert.Empty(t, m.compose.Value())
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Equal(t, []string{"entry-9"}, m.ids)
}

func TestComposeFlow_EmptyText(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = loaded(t, m)

	m, _ = press(t, m, runes("n"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to save", m.errMsg)
}

func TestComposeFlow_SaveError(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.stage = stageCompose
	m.saving = true

	m, _ = press(t, m, entrySavedMsg{err: adapter.ErrBadRequest})

	assert.False(t, m.saving)
	assert.Equal(t, stageCompose, m.stage)
	assert.Contains(t, m.errMsg, "Save failed")
}

func TestComposeFlow_Escape(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = loaded(t, m)

	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("draft"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, stageList, m.stage)
	assert.Empty(t, m.compose.Value())
}

func TestCopyError(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, copiedMsg{err: errors.New("no clipboard")})

	assert.Equal(t, "Copy failed: no clipboard", m.errMsg)
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = loaded(t, m, "a")

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m.stage = stageCompose
	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView_EmptyList(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = loaded(t, m)

	assert.Contains(t, m.View(), "No entries yet")
	assert.Contains(t, m.View(), "n new")
}
