package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

func (a *App) submitChat() {
	input := a.state.input.Value()
	if strings.TrimSpace(input) == "" {
		return
	}

	reply := a.state.bot.Respond(input)
	a.state.chatHistory = append(a.state.chatHistory,
		message{role: "user", content: input},
		message{role: "bot", content: reply},
	)
	a.state.lastReply = reply
	a.state.input.Reset()

	a.state.logger.Debug("Chat turn",
		zap.String("bot", a.state.bot.Name()),
		zap.Int("input_len", len(input)))
}

func (a *App) copyLastReply() tea.Cmd {
	if a.state.lastReply == "" {
		a.setError("Nothing to copy yet.")
		return nil
	}
	return copyReply(a.state.lastReply)
}

func (a *App) renderChat() string {
	boxWidth := a.boxWidth()
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	// Calculate fixed heights
	headerHeight := 3 // Title + default reply + blank line
	footerHeight := 4 // Input box + status bar
	if a.state.notice != "" {
		footerHeight += 3
	}

	availableHeight := a.height - headerHeight - footerHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === HEADER ===
	var header strings.Builder
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Chat [" + truncate(a.state.bot.Name(), 40) + "]")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")

	fallback := styleSubtitle.Render("default: " + truncate(a.state.bot.DefaultReply(), 50))
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, fallback))
	header.WriteString("\n\n")

	// === MESSAGES ===
	var messageLines []string
	for _, msg := range a.state.chatHistory {
		lines := strings.Split(wrapText(msg.content, boxWidth-4), "\n")
		for j, line := range lines {
			var styled string
			if msg.role == "user" {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled = lipgloss.NewStyle().
					Foreground(colorSecondary).
					Render(prefix + line)
			} else {
				styled = lipgloss.NewStyle().
					Foreground(colorWhite).
					Render("  " + line)
			}
			messageLines = append(messageLines, indent+styled)
		}
		messageLines = append(messageLines, "")
	}

	// Keep the newest lines on screen
	if len(messageLines) > availableHeight {
		messageLines = messageLines[len(messageLines)-availableHeight:]
	}

	var messageArea strings.Builder
	messageArea.WriteString(strings.Join(messageLines, "\n"))
	if padding := availableHeight - len(messageLines); padding > 0 {
		messageArea.WriteString(strings.Repeat("\n", padding))
	}

	// === FOOTER ===
	var footer strings.Builder
	a.writeNotice(&footer)
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderInput()))
	footer.WriteString("\n")
	a.writeStatus(&footer, "[Enter] Send  [ctrl+y] Copy reply  [Esc] Back")

	return header.String() + messageArea.String() + "\n" + footer.String()
}
