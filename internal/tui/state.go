package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sant0-9/replybot/internal/config"
	"github.com/sant0-9/replybot/internal/library"
	"github.com/sant0-9/replybot/internal/responder"
	"go.uber.org/zap"
)

// action is what the bot picker was opened for
type action int

const (
	actionEdit action = iota
	actionChat
	actionSave
	actionClose
)

const (
	menuCreate = "Create new chatbot"
	menuEdit   = "Edit chatbot"
	menuChat   = "Chat with chatbot"
	menuSave   = "Save chatbot configuration"
	menuLoad   = "Load chatbot configuration"
	menuClose  = "Close chatbot"
	menuHelp   = "Help"
	menuQuit   = "Quit"

	optionDefault   = "Edit default response"
	optionResponses = "Edit specific responses"

	itemAddResponse    = "[Add New Response]"
	itemRemoveResponse = "[Remove Response]"
	itemBackToMenu     = "[Back to Main Menu]"
	itemBack           = "[Back]"
)

var menuItems = []string{
	menuCreate,
	menuEdit,
	menuChat,
	menuSave,
	menuLoad,
	menuClose,
	menuHelp,
	menuQuit,
}

var editOptions = []string{optionDefault, optionResponses}

type state struct {
	config  *config.Config
	library *library.Library
	logger  *zap.Logger

	// Lists
	cursor    int
	selectFor action

	// Bot being edited, chatted with or saved
	bot *responder.Responder

	// Two-step forms
	step        int
	pendingName string // bot name on create, trigger phrase on add
	editPhrase  string

	// Input
	input textinput.Model

	// Chat
	chatHistory []message
	lastReply   string

	// Feedback
	notice    string
	noticeErr bool
}

type message struct {
	role    string
	content string
}

func newState() *state {
	input := textinput.New()
	input.CharLimit = 0
	input.Width = 60

	return &state{
		input: input,
	}
}

func newBot(name, defaultReply string) *responder.Responder {
	return responder.New(name, nil, defaultReply)
}
