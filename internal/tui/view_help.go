package tui

import (
	"strings"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	a.writeTitle(&b, "Help")

	// Menu
	commands := []string{
		"  Create     Name a chatbot and its default response",
		"  Edit       Change the default or specific responses",
		"  Chat       Try a chatbot with your own input",
		"  Save/Load  Store chatbots as JSON files",
		"  Close      Drop a chatbot from this session",
		"",
		"  A response is used when its user input appears",
		"  anywhere in a message, ignoring case. The first",
		"  added response wins when several match.",
	}

	commandsBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(commands, "\n"))
	a.writeCentered(&b, commandsBox)

	// Keyboard shortcuts
	shortcuts := []string{
		"  j/k, up/down   Move selection",
		"  Enter          Select / submit",
		"  Esc            Go back / Quit from menu",
		"  ctrl+y         Copy last reply (chat)",
		"  ctrl+c         Quit",
	}

	a.writeCentered(&b, styleSubtitle.Render("Keyboard Shortcuts"))

	shortcutsBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(shortcuts, "\n"))
	a.writeCentered(&b, shortcutsBox)

	a.writeStatus(&b, "[Esc] Back")

	return a.centerVertically(b.String())
}
