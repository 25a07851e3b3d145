package tui

import "strings"

func (a *App) renderCreate() string {
	var b strings.Builder

	a.writeTitle(&b, "Create New Chatbot")

	var prompt string
	if a.state.step == 0 {
		prompt = "Enter the chatbot name:"
	} else {
		a.writeCentered(&b, styleSubtitle.Render("Name: "+truncate(a.state.pendingName, 50)))
		prompt = "Enter the default response:"
	}
	a.writeCentered(&b, styleSubtitle.Render(prompt))

	a.writeCentered(&b, a.renderInput())

	a.writeNotice(&b)

	a.writeStatus(&b, "[Enter] Continue  [Esc] Cancel")

	return a.centerVertically(b.String())
}
