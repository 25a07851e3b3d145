package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (a *App) phrases() []string {
	if a.state.bot == nil {
		return nil
	}
	triggers := a.state.bot.Triggers()
	result := make([]string, 0, len(triggers))
	for _, t := range triggers {
		result = append(result, t.Phrase)
	}
	return result
}

func (a *App) selectTrigger() tea.Cmd {
	phrases := a.phrases()
	if a.state.cursor < len(phrases) {
		phrase := phrases[a.state.cursor]
		reply, _ := a.state.bot.Reply(phrase)
		a.state.editPhrase = phrase
		return a.goInput(viewEditReply, reply, "Updated response...")
	}

	switch a.listItems()[a.state.cursor] {
	case itemAddResponse:
		a.state.step = 0
		a.state.pendingName = ""
		return a.goInput(viewAddTrigger, "", "User input that triggers the response...")
	case itemRemoveResponse:
		if a.state.bot.Len() == 0 {
			a.setError("No responses to remove.")
			return nil
		}
		a.goTo(viewRemoveTrigger)
	case itemBackToMenu:
		a.goMenu()
	}
	return nil
}

func (a *App) submitAddTrigger() tea.Cmd {
	value := a.state.input.Value()

	if a.state.step == 0 {
		if strings.TrimSpace(value) == "" {
			a.setError("User input cannot be empty.")
			return nil
		}
		a.state.pendingName = value
		a.state.step = 1
		return a.goInput(viewAddTrigger, "", "Response...")
	}

	a.state.bot.AddTrigger(a.state.pendingName, value)
	a.state.logger.Debug("Response added",
		zap.String("bot", a.state.bot.Name()),
		zap.String("trigger", a.state.pendingName))
	a.setNotice(fmt.Sprintf("Response for '%s' saved.", a.state.pendingName))
	a.goTo(viewTriggers)
	return nil
}

func (a *App) submitRemoveTrigger() {
	phrases := a.phrases()
	if a.state.cursor >= len(phrases) {
		a.goTo(viewTriggers)
		return
	}

	phrase := phrases[a.state.cursor]
	if err := a.state.bot.RemoveTrigger(phrase); err != nil {
		a.setError(errorNotice(err))
	} else {
		a.setNotice(fmt.Sprintf("Response for '%s' removed.", phrase))
	}
	a.goTo(viewTriggers)
}

func (a *App) submitEditReply() {
	if err := a.state.bot.EditReply(a.state.editPhrase, a.state.input.Value()); err != nil {
		a.setError(errorNotice(err))
	} else {
		a.setNotice(fmt.Sprintf("Response for '%s' updated.", a.state.editPhrase))
	}
	a.goTo(viewTriggers)
}

func (a *App) renderTriggers() string {
	var b strings.Builder

	a.writeTitle(&b, fmt.Sprintf("Edit chatbot '%s' responses:", truncate(a.state.bot.Name(), 40)))

	a.writeCentered(&b, a.renderList(a.listItems()))

	// Reply under the cursor
	phrases := a.phrases()
	if a.state.cursor < len(phrases) {
		reply, _ := a.state.bot.Reply(phrases[a.state.cursor])
		preview := styleBox.Copy().
			Width(a.boxWidth()).
			Foreground(colorMuted).
			Render(wrapText(reply, a.boxWidth()-4))
		a.writeCentered(&b, preview)
	}

	a.writeNotice(&b)

	a.writeStatus(&b, "[j/k] Navigate  [Enter] Select  [Esc] Back")

	return a.centerVertically(b.String())
}

func (a *App) renderAddTrigger() string {
	var b strings.Builder

	a.writeTitle(&b, "Add New Response")

	var prompt string
	if a.state.step == 0 {
		prompt = "Enter the user input:"
	} else {
		a.writeCentered(&b, styleSubtitle.Render("> "+truncate(a.state.pendingName, 50)))
		prompt = "Enter the response:"
	}
	a.writeCentered(&b, styleSubtitle.Render(prompt))

	a.writeCentered(&b, a.renderInput())

	a.writeNotice(&b)

	a.writeStatus(&b, "[Enter] Continue  [Esc] Back")

	return a.centerVertically(b.String())
}

func (a *App) renderRemoveTrigger() string {
	var b strings.Builder

	a.writeTitle(&b, "Select a response to remove:")

	a.writeCentered(&b, a.renderList(a.listItems()))

	a.writeNotice(&b)

	a.writeStatus(&b, "[j/k] Navigate  [Enter] Remove  [Esc] Back")

	return a.centerVertically(b.String())
}

func (a *App) renderEditReply() string {
	var b strings.Builder

	a.writeTitle(&b, "Enter the updated response:")
	a.writeCentered(&b, styleSubtitle.Render("> "+truncate(a.state.editPhrase, 50)))

	a.writeCentered(&b, a.renderInput())

	a.writeNotice(&b)

	a.writeStatus(&b, "[Enter] Save  [Esc] Back")

	return a.centerVertically(b.String())
}
