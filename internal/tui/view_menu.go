package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
┬─┐┌─┐┌─┐┬  ┬ ┬┌┐ ┌─┐┌┬┐
├┬┘├┤ ├─┘│  └┬┘├┴┐│ │ │ 
┴└─└─┘┴  ┴─┘ ┴ └─┘└─┘ ┴ 
`

func (a *App) renderMenu() string {
	var b strings.Builder

	// Logo
	a.writeCentered(&b, lipgloss.JoinVertical(
		lipgloss.Center,
		styleLogo.Render(logo),
		styleSubtitle.Render("Chatbot Maker"),
	))

	// Open bots
	count := a.state.library.Count()
	var open string
	switch count {
	case 0:
		open = "No chatbots open"
	case 1:
		open = "1 chatbot open"
	default:
		open = fmt.Sprintf("%d chatbots open", count)
	}
	a.writeCentered(&b, styleSubtitle.Render(open))

	// Menu
	a.writeCentered(&b, a.renderList(menuItems))

	a.writeNotice(&b)

	a.writeStatus(&b, "[j/k] Navigate  [Enter] Select  [?] Help  [Esc] Quit")

	return a.centerVertically(b.String())
}
