package tui

import (
	"fmt"
	"strings"
)

func (a *App) renderSelect() string {
	var b strings.Builder

	var title string
	switch a.state.selectFor {
	case actionEdit:
		title = "Select a chatbot to edit:"
	case actionChat:
		title = "Select a chatbot to chat with:"
	case actionSave:
		title = "Select a chatbot to save configuration:"
	case actionClose:
		title = "Select a chatbot to close:"
	}
	a.writeTitle(&b, title)

	a.writeCentered(&b, a.renderList(a.listItems()))

	a.writeNotice(&b)

	a.writeStatus(&b, "[j/k] Navigate  [Enter] Select  [Esc] Back")

	return a.centerVertically(b.String())
}

func (a *App) renderEditOptions() string {
	var b strings.Builder

	a.writeTitle(&b, "Edit Options")
	a.writeCentered(&b, styleSubtitle.Render(fmt.Sprintf("%s  |  %d responses",
		truncate(a.state.bot.Name(), 40), a.state.bot.Len())))

	a.writeCentered(&b, a.renderList(editOptions))

	a.writeNotice(&b)

	a.writeStatus(&b, "[j/k] Navigate  [Enter] Select  [Esc] Back")

	return a.centerVertically(b.String())
}

func (a *App) renderEditDefault() string {
	var b strings.Builder

	a.writeTitle(&b, "Enter the updated default response:")
	a.writeCentered(&b, styleSubtitle.Render(truncate(a.state.bot.Name(), 50)))

	a.writeCentered(&b, a.renderInput())

	a.writeNotice(&b)

	a.writeStatus(&b, "[Enter] Save  [Esc] Back")

	return a.centerVertically(b.String())
}
