package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/replybot/internal/config"
	"github.com/sant0-9/replybot/internal/library"
	"go.uber.org/zap"
)

type view int

const (
	viewMenu view = iota
	viewCreate
	viewSelect
	viewEditOptions
	viewEditDefault
	viewTriggers
	viewAddTrigger
	viewRemoveTrigger
	viewEditReply
	viewSaveFile
	viewLoadFile
	viewChat
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(cfg *config.Config, lib *library.Library, logger *zap.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := newState()
	s.config = cfg
	s.library = lib
	s.logger = logger

	return &App{
		view:  viewMenu,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case savedMsg:
		a.state.logger.Debug("Save finished", zap.String("bot", msg.name))
		a.setNotice("Chatbot configuration saved successfully!")
		if a.view == viewSaveFile {
			a.goMenu()
		}
		return a, nil

	case saveErrorMsg:
		a.setError(errorNotice(msg.error))
		return a, nil

	case loadedMsg:
		a.state.library.Add(msg.bot)
		a.setNotice("Chatbot configuration loaded successfully!")
		a.goMenu()
		return a, nil

	case loadErrorMsg:
		a.setError(errorNotice(msg.error))
		return a, nil

	case copiedMsg:
		a.setNotice("Reply copied to clipboard")
		return a, nil

	case copyErrorMsg:
		a.state.logger.Warn("Clipboard unavailable", zap.Error(msg.error))
		a.setError("Could not copy: " + msg.error.Error())
		return a, nil
	}

	if a.inInputView() {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) inInputView() bool {
	switch a.view {
	case viewCreate, viewEditDefault, viewAddTrigger, viewEditReply,
		viewSaveFile, viewLoadFile, viewChat:
		return true
	}
	return false
}

func (a *App) inListView() bool {
	switch a.view {
	case viewMenu, viewSelect, viewEditOptions, viewTriggers, viewRemoveTrigger:
		return true
	}
	return false
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Back):
		a.clearNotice()
		return a.back(), true

	case key.Matches(msg, keys.Enter):
		a.clearNotice()
		return a.submit(), true

	case a.view == viewChat && key.Matches(msg, keys.Copy):
		return a.copyLastReply(), true
	}

	if a.inListView() {
		switch {
		case key.Matches(msg, keys.Up):
			if a.state.cursor > 0 {
				a.state.cursor--
			}
			return nil, true
		case key.Matches(msg, keys.Down):
			if a.state.cursor < len(a.listItems())-1 {
				a.state.cursor++
			}
			return nil, true
		case key.Matches(msg, keys.Help) && a.view == viewMenu:
			a.goTo(viewHelp)
			return nil, true
		}
	}

	return nil, false
}

// back handles esc: one level up, or quit from the main menu
func (a *App) back() tea.Cmd {
	switch a.view {
	case viewMenu:
		a.quitting = true
		return tea.Quit
	case viewEditDefault:
		a.goTo(viewEditOptions)
	case viewAddTrigger, viewRemoveTrigger, viewEditReply:
		a.goTo(viewTriggers)
	default:
		a.goMenu()
	}
	return nil
}

func (a *App) submit() tea.Cmd {
	switch a.view {
	case viewMenu:
		return a.selectMenu()
	case viewCreate:
		return a.submitCreate()
	case viewSelect:
		return a.selectBot()
	case viewEditOptions:
		return a.selectEditOption()
	case viewEditDefault:
		a.submitDefault()
	case viewTriggers:
		return a.selectTrigger()
	case viewAddTrigger:
		return a.submitAddTrigger()
	case viewRemoveTrigger:
		a.submitRemoveTrigger()
	case viewEditReply:
		a.submitEditReply()
	case viewSaveFile:
		return a.submitSave()
	case viewLoadFile:
		return a.submitLoad()
	case viewChat:
		a.submitChat()
	case viewHelp:
		a.goMenu()
	}
	return nil
}

func (a *App) selectMenu() tea.Cmd {
	switch menuItems[a.state.cursor] {
	case menuCreate:
		a.state.step = 0
		a.state.pendingName = ""
		return a.goInput(viewCreate, "", "Chatbot name...")
	case menuEdit:
		return a.pickBot(actionEdit)
	case menuChat:
		return a.pickBot(actionChat)
	case menuSave:
		return a.pickBot(actionSave)
	case menuLoad:
		return a.goInput(viewLoadFile, "", "File name, e.g. help.json")
	case menuClose:
		return a.pickBot(actionClose)
	case menuHelp:
		a.goTo(viewHelp)
	case menuQuit:
		a.quitting = true
		return tea.Quit
	}
	return nil
}

func (a *App) pickBot(act action) tea.Cmd {
	if a.state.library.Count() == 0 {
		a.setError("No chatbots available. Please create a chatbot first.")
		return nil
	}
	a.state.selectFor = act
	a.goTo(viewSelect)
	return nil
}

func (a *App) selectBot() tea.Cmd {
	bots := a.state.library.All()
	if a.state.cursor >= len(bots) {
		a.goMenu()
		return nil
	}

	bot := bots[a.state.cursor]
	a.state.bot = bot

	switch a.state.selectFor {
	case actionEdit:
		a.goTo(viewEditOptions)
	case actionChat:
		a.state.chatHistory = nil
		a.state.lastReply = ""
		return a.goInput(viewChat, "", "Say something to "+bot.Name()+"...")
	case actionSave:
		return a.goInput(viewSaveFile, "", "File name, e.g. help.json")
	case actionClose:
		a.state.library.Remove(bot)
		a.state.bot = nil
		a.setNotice("Chatbot '" + bot.Name() + "' closed.")
		a.goMenu()
	}
	return nil
}

func (a *App) selectEditOption() tea.Cmd {
	switch editOptions[a.state.cursor] {
	case optionDefault:
		return a.goInput(viewEditDefault, a.state.bot.DefaultReply(), "Default response...")
	case optionResponses:
		a.goTo(viewTriggers)
	}
	return nil
}

func (a *App) submitCreate() tea.Cmd {
	value := a.state.input.Value()

	if a.state.step == 0 {
		name := strings.TrimSpace(value)
		if name == "" {
			a.setError("Chatbot name cannot be empty.")
			return nil
		}
		a.state.pendingName = name
		a.state.step = 1
		return a.goInput(viewCreate, a.state.config.DefaultReply, "Default response...")
	}

	if strings.TrimSpace(value) == "" {
		a.setError("Default response cannot be empty.")
		return nil
	}

	bot := newBot(a.state.pendingName, value)
	a.state.library.Add(bot)
	a.state.logger.Info("Chatbot created", zap.String("bot", bot.Name()))
	a.setNotice("Chatbot created successfully!")
	a.goMenu()
	return nil
}

func (a *App) submitDefault() {
	value := a.state.input.Value()
	if value == "" {
		a.setError("Invalid response. Default response not updated.")
		a.goMenu()
		return
	}

	a.state.bot.SetDefaultReply(value)
	a.setNotice("Default response updated successfully!")
	a.goMenu()
}

func (a *App) goTo(v view) {
	a.view = v
	a.state.cursor = 0
	a.state.input.Blur()
}

func (a *App) goMenu() {
	a.goTo(viewMenu)
}

// goInput switches to a view that edits text, prefilled with value
func (a *App) goInput(v view, value, placeholder string) tea.Cmd {
	a.goTo(v)
	a.state.input.Reset()
	a.state.input.Placeholder = placeholder
	a.state.input.SetValue(value)
	a.state.input.CursorEnd()
	return a.state.input.Focus()
}

func (a *App) listItems() []string {
	switch a.view {
	case viewMenu:
		return menuItems
	case viewSelect:
		return append(a.state.library.Names(), itemBackToMenu)
	case viewEditOptions:
		return editOptions
	case viewTriggers:
		return append(a.phrases(), itemAddResponse, itemRemoveResponse, itemBackToMenu)
	case viewRemoveTrigger:
		return append(a.phrases(), itemBack)
	}
	return nil
}

func (a *App) setNotice(text string) {
	a.state.notice = text
	a.state.noticeErr = false
}

func (a *App) setError(text string) {
	a.state.notice = text
	a.state.noticeErr = true
}

func (a *App) clearNotice() {
	a.state.notice = ""
	a.state.noticeErr = false
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewMenu:
		return a.renderMenu()
	case viewCreate:
		return a.renderCreate()
	case viewSelect:
		return a.renderSelect()
	case viewEditOptions:
		return a.renderEditOptions()
	case viewEditDefault:
		return a.renderEditDefault()
	case viewTriggers:
		return a.renderTriggers()
	case viewAddTrigger:
		return a.renderAddTrigger()
	case viewRemoveTrigger:
		return a.renderRemoveTrigger()
	case viewEditReply:
		return a.renderEditReply()
	case viewSaveFile, viewLoadFile:
		return a.renderFile()
	case viewChat:
		return a.renderChat()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderMenu()
	}
}
