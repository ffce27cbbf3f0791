package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"counterapp/internal/i18n"
	"counterapp/internal/theme"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler has a deeper buffer (e.g. "SPC x"), shows next-level hints.
// Descriptions that are text keys are localized through texts.
func RenderKeybindHelp(keyHandler *KeyHandler, th theme.Theme, texts i18n.Provider) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	if texts != nil {
		for i := range bindings {
			h := bindings[i].Help()
			bindings[i].SetHelp(h.Key, texts.T(h.Desc))
		}
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(th.Border).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(th.Muted)
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(th.Muted)

	helpContent := helpModel.ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Accent).
		Padding(0, 1).
		MarginTop(1)
	labelStyle := lipgloss.NewStyle().
		Foreground(th.Muted)

	prefix := keyHandler.CurrentSeq()
	if prefix == "" {
		prefix = "SPC"
	}
	return boxStyle.Render(labelStyle.Render(prefix) + " " + helpContent)
}
