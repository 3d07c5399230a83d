package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Secure E-Diary"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	var hotKeys string
	switch m.stage {
	case stageKey:
		id, _ := m.current()
		b.WriteString("Decrypt entry " + id + "\n\n")
		b.WriteString("Key: " + m.keyInput.View() + "\n")
		hotKeys = "enter decrypt  esc back"
	case stageCompose:
		b.WriteString("New entry (shifted before it is sent)\n\n")
		b.WriteString(m.compose.View() + "\n")
		hotKeys = "ctrl+s save  esc cancel"
		if m.saving {
			hotKeys = "saving..."
		}
	case stageDecrypted:
		id, _ := m.current()
		b.WriteString("Entry " + id + "\n\n")
		b.WriteString(decryptedBox.Render(m.decrypted) + "\n")
		hotKeys = "c copy  esc back  q quit"
	default:
		b.WriteString(m.listView())
		hotKeys = "enter decrypt  n new  r refresh  q quit"
	}

	if m.status != "" {
		b.WriteString("\n" + statusMessage.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + uiDivider + "\n")
	b.WriteString(helpStyle.Render(hotKeys + "  ctrl+c exit"))

	return appStyle.Render(b.String())
}

func (m browseModel) listView() string {
	if m.loading {
		return "Loading...\n"
	}
	if len(m.ids) == 0 {
		return "No entries yet. Press n to write the first one.\n"
	}

	lines := make([]string, 0, len(m.ids))
	for i, id := range m.ids {
		if i == m.idx {
			lines = append(lines, cursorStyle.Render("> "+id))
			continue
		}
		lines = append(lines, "  "+id)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
