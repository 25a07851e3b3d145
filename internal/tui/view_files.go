package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/replybot/internal/library"
	"github.com/sant0-9/replybot/internal/responder"
)

type savedMsg struct{ name string }
type saveErrorMsg struct{ error }
type loadedMsg struct{ bot *responder.Responder }
type loadErrorMsg struct{ error }
type copiedMsg struct{}
type copyErrorMsg struct{ error }

func (a *App) submitSave() tea.Cmd {
	filename := strings.TrimSpace(a.state.input.Value())
	if filename == "" {
		a.setError("Please enter a file name.")
		return nil
	}
	return saveBot(a.state.library, a.state.bot, filename)
}

func (a *App) submitLoad() tea.Cmd {
	filename := strings.TrimSpace(a.state.input.Value())
	if filename == "" {
		a.setError("Please enter a file name.")
		return nil
	}
	return loadBot(a.state.library, filename)
}

func saveBot(lib *library.Library, bot *responder.Responder, filename string) tea.Cmd {
	return func() tea.Msg {
		if err := lib.Save(bot, filename); err != nil {
			return saveErrorMsg{err}
		}
		return savedMsg{name: bot.Name()}
	}
}

// loadBot only reads the file; the bot is added to the library in Update
func loadBot(lib *library.Library, filename string) tea.Cmd {
	return func() tea.Msg {
		bot, err := lib.Load(filename)
		if err != nil {
			return loadErrorMsg{err}
		}
		return loadedMsg{bot: bot}
	}
}

func copyReply(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyErrorMsg{err}
		}
		return copiedMsg{}
	}
}

func (a *App) renderFile() string {
	var b strings.Builder

	if a.view == viewSaveFile {
		a.writeTitle(&b, "Enter the filename to save configuration:")
		a.writeCentered(&b, styleSubtitle.Render(truncate(a.state.bot.Name(), 50)))
	} else {
		a.writeTitle(&b, "Enter the filename to load chatbot configuration:")
	}

	a.writeCentered(&b, styleSubtitle.Render("Relative names are resolved in "+truncate(a.state.library.BotsDir(), 50)))

	a.writeCentered(&b, a.renderInput())

	a.writeNotice(&b)

	a.writeStatus(&b, "[Enter] Confirm  [Esc] Back")

	return a.centerVertically(b.String())
}
