package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// wrapText wraps text to fit within maxWidth, preserving words
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}
	if len(text) <= maxWidth {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += len(word)
	}

	return result.String()
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)
)

func (a *App) boxWidth() int {
	return max(20, min(70, a.width-4))
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}

func (a *App) writeCentered(b *strings.Builder, s string) {
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s))
	b.WriteString("\n\n")
}

func (a *App) writeTitle(b *strings.Builder, text string) {
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render(text)
	a.writeCentered(b, title)
}

// renderList draws selectable lines with the cursor marked
func (a *App) renderList(items []string) string {
	var lines []string
	for i, item := range items {
		if i == a.state.cursor {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("> %s", truncate(item, a.boxWidth()-6))))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(colorMuted).
				Render(fmt.Sprintf("  %s", truncate(item, a.boxWidth()-6))))
		}
	}

	return styleBox.Copy().
		Width(a.boxWidth()).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderInput() string {
	return styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(colorSecondary).
		Render(a.state.input.View())
}

// writeNotice renders the last success or error message, if any
func (a *App) writeNotice(b *strings.Builder) {
	if a.state.notice == "" {
		return
	}
	color := colorSuccess
	if a.state.noticeErr {
		color = colorError
	}
	notice := styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(color).
		Foreground(color).
		Render(a.state.notice)
	a.writeCentered(b, notice)
}

func (a *App) writeStatus(b *strings.Builder, text string) {
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(text)))
}
