package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sant0-9/replybot/internal/responder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func helpBot() *responder.Responder {
	return responder.New("Help", []responder.Trigger{
		{Phrase: "hello", Reply: "Hi there!"},
		{Phrase: "bye", Reply: "Goodbye!"},
	}, "I don't understand.")
}

func TestAddGetNames(t *testing.T) {
	lib := New(t.TempDir(), nil)
	first := responder.New("Same", nil, "first")
	second := responder.New("Same", nil, "second")

	lib.Add(helpBot())
	lib.Add(first)
	lib.Add(second)

	assert.Equal(t, 3, lib.Count())
	assert.Equal(t, []string{"Help", "Same", "Same"}, lib.Names())
	assert.Same(t, first, lib.Get("Same"))
	assert.Nil(t, lib.Get("Missing"))
}

func TestNilLibrary(t *testing.T) {
	var lib *Library

	assert.Equal(t, 0, lib.Count())
	assert.Nil(t, lib.Get("x"))
	assert.Nil(t, lib.Names())
	assert.Nil(t, lib.All())
}

func TestRemove(t *testing.T) {
	lib := New("", nil)
	first := responder.New("Same", nil, "")
	second := responder.New("Same", nil, "")
	lib.Add(first)
	lib.Add(second)

	assert.True(t, lib.Remove(second))
	assert.False(t, lib.Remove(second))
	assert.Equal(t, []*responder.Responder{first}, lib.All())
}

func TestPath(t *testing.T) {
	lib := New("/srv/bots", nil)

	assert.Equal(t, "/srv/bots/help.json", lib.Path("help.json"))
	assert.Equal(t, "/srv/bots/sub/help", lib.Path("sub/help"))
	assert.Equal(t, "/tmp/help.json", lib.Path("/tmp/help.json"))
	assert.Equal(t, "help.json", New("", nil).Path("help.json"))
}

func TestSaveThenOpen(t *testing.T) {
	dir := t.TempDir()
	lib := New(dir, nil)
	bot := helpBot()
	lib.Add(bot)

	require.NoError(t, lib.Save(bot, "help.json"))
	assert.FileExists(t, filepath.Join(dir, "help.json"))

	other := New(dir, nil)
	loaded, err := other.Load("help.json")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Count())

	opened, err := other.Open("help.json")
	require.NoError(t, err)
	assert.Equal(t, "Help", opened.Name())
	assert.Equal(t, "Hi there!", opened.Respond("hello and bye"))
	assert.Equal(t, loaded.Triggers(), opened.Triggers())
	assert.Equal(t, 1, other.Count())
}

func TestSaveNilBot(t *testing.T) {
	lib := New(t.TempDir(), nil)

	assert.Error(t, lib.Save(nil, "ghost.json"))
}

func TestSaveIntoFileFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	lib := New(dir, nil)
	err := lib.Save(helpBot(), filepath.Join("blocker", "help.json"))
	assert.Error(t, err)
}

func TestOpenErrorsPassThrough(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("nope"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partial.json"), []byte(`{"name":"x"}`), 0644))

	core, logs := observer.New(zap.WarnLevel)
	lib := New(dir, zap.New(core))

	_, err := lib.Open("absent.json")
	var notFound *responder.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = lib.Open("broken.json")
	var malformed *responder.MalformedDataError
	assert.ErrorAs(t, err, &malformed)

	_, err = lib.Open("partial.json")
	var schemaErr *responder.SchemaError
	assert.ErrorAs(t, err, &schemaErr)

	assert.Equal(t, 0, lib.Count())
	assert.Equal(t, 3, logs.FilterMessage("Failed to load chatbot").Len())
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, responder.New("Zed", nil, "z").Save(filepath.Join(dir, "b.json")))
	require.NoError(t, responder.New("Amy", nil, "a").Save(filepath.Join(dir, "a.json")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte("{bad"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d.json"), 0755))

	lib := New(dir, nil)
	opened, err := lib.Scan()
	require.NoError(t, err)

	assert.Equal(t, 2, opened)
	assert.Equal(t, []string{"Amy", "Zed"}, lib.Names())
}

func TestScanMissingDir(t *testing.T) {
	lib := New(filepath.Join(t.TempDir(), "absent"), nil)

	opened, err := lib.Scan()
	require.NoError(t, err)
	assert.Equal(t, 0, opened)
}
