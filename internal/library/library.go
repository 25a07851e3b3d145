package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sant0-9/replybot/internal/responder"
	"go.uber.org/zap"
)

// Library holds the open chatbots in the order they were opened
type Library struct {
	bots    []*responder.Responder
	botsDir string
	logger  *zap.Logger
}

// New creates an empty library resolving relative file names against botsDir
func New(botsDir string, logger *zap.Logger) *Library {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Library{
		botsDir: botsDir,
		logger:  logger,
	}
}

// Add appends a bot. Names are not required to be unique.
func (l *Library) Add(bot *responder.Responder) {
	l.bots = append(l.bots, bot)
	l.logger.Debug("Chatbot opened", zap.String("bot", bot.Name()), zap.Int("count", len(l.bots)))
}

// Get returns the first bot with the given name
func (l *Library) Get(name string) *responder.Responder {
	if l == nil {
		return nil
	}
	for _, bot := range l.bots {
		if bot.Name() == name {
			return bot
		}
	}
	return nil
}

// Remove closes a bot. It reports whether the bot was open.
func (l *Library) Remove(bot *responder.Responder) bool {
	for i, b := range l.bots {
		if b == bot {
			l.bots = append(l.bots[:i], l.bots[i+1:]...)
			l.logger.Debug("Chatbot closed", zap.String("bot", bot.Name()))
			return true
		}
	}
	return false
}

// All returns the open bots in order
func (l *Library) All() []*responder.Responder {
	if l == nil {
		return nil
	}
	result := make([]*responder.Responder, len(l.bots))
	copy(result, l.bots)
	return result
}

// Names returns the bot names in order
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	result := make([]string, 0, len(l.bots))
	for _, bot := range l.bots {
		result = append(result, bot.Name())
	}
	return result
}

// Count returns the number of open bots
func (l *Library) Count() int {
	if l == nil {
		return 0
	}
	return len(l.bots)
}

// BotsDir returns the directory relative file names resolve against
func (l *Library) BotsDir() string {
	return l.botsDir
}

// Path resolves a file name against the bots directory
func (l *Library) Path(filename string) string {
	if filepath.IsAbs(filename) || l.botsDir == "" {
		return filename
	}
	return filepath.Join(l.botsDir, filename)
}

// Load reads a bot file without adding it. Errors from the responder
// package are returned unchanged so callers can tell them apart.
func (l *Library) Load(filename string) (*responder.Responder, error) {
	path := l.Path(filename)

	bot, err := responder.Load(path)
	if err != nil {
		l.logger.Warn("Failed to load chatbot", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	l.logger.Info("Chatbot loaded",
		zap.String("bot", bot.Name()),
		zap.String("path", path),
		zap.Int("responses", bot.Len()))
	return bot, nil
}

// Open loads a bot file and adds it
func (l *Library) Open(filename string) (*responder.Responder, error) {
	bot, err := l.Load(filename)
	if err != nil {
		return nil, err
	}
	l.Add(bot)
	return bot, nil
}

// Save writes a bot to a file
func (l *Library) Save(bot *responder.Responder, filename string) error {
	if bot == nil {
		return errors.New("no chatbot to save")
	}

	path := l.Path(filename)
	if err := bot.Save(path); err != nil {
		l.logger.Error("Failed to save chatbot", zap.String("bot", bot.Name()), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("save %s: %w", bot.Name(), err)
	}

	l.logger.Info("Chatbot saved", zap.String("bot", bot.Name()), zap.String("path", path))
	return nil
}

// Scan opens every *.json file in the bots directory in name order.
// Invalid files are skipped. It returns how many bots were opened.
func (l *Library) Scan() (int, error) {
	if l.botsDir == "" {
		return 0, nil
	}

	entries, err := os.ReadDir(l.botsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	opened := 0
	for _, name := range files {
		if _, err := l.Open(name); err != nil {
			continue // Skip invalid bots
		}
		opened++
	}

	l.logger.Info("Scanned bots directory", zap.String("path", l.botsDir), zap.Int("opened", opened))
	return opened, nil
}
