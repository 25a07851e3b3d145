package responder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newHelpBot() *Responder {
	return New("Help", []Trigger{
		{Phrase: "hello", Reply: "Hi there!"},
		{Phrase: "bye", Reply: "Goodbye!"},
	}, "I don't understand.")
}

func TestRespond(t *testing.T) {
	bot := newHelpBot()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trigger inside sentence",
			input: "Well hello world",
			want:  "Hi there!",
		},
		{
			name:  "trigger at end",
			input: "see you, bye",
			want:  "Goodbye!",
		},
		{
			name:  "no match",
			input: "what?",
			want:  "I don't understand.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "I don't understand.",
		},
		{
			name:  "input case ignored",
			input: "HELLO THERE",
			want:  "Hi there!",
		},
		{
			name:  "earliest trigger wins",
			input: "bye and hello",
			want:  "Hi there!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bot.Respond(tt.input); got != tt.want {
				t.Errorf("Respond(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRespondTriggerCaseIgnored(t *testing.T) {
	bot := New("Case", []Trigger{{Phrase: "Good Morning", Reply: "Morning!"}}, "?")

	if got := bot.Respond("good morning to you"); got != "Morning!" {
		t.Errorf("Respond() = %q, want %q", got, "Morning!")
	}

	got := bot.Triggers()[0].Phrase
	if got != "Good Morning" {
		t.Errorf("stored phrase = %q, want original casing", got)
	}
}

func TestRespondEarliestOfOverlappingTriggers(t *testing.T) {
	bot := New("Overlap", []Trigger{
		{Phrase: "help", Reply: "general"},
		{Phrase: "help me now", Reply: "urgent"},
	}, "?")

	if got := bot.Respond("please help me now"); got != "general" {
		t.Errorf("Respond() = %q, want earliest inserted reply %q", got, "general")
	}
}

func TestRespondEmptyTable(t *testing.T) {
	bot := New("Empty", nil, "")

	if got := bot.Respond("anything"); got != "" {
		t.Errorf("Respond() = %q, want empty default", got)
	}
}

func TestAddTriggerOverwriteKeepsPosition(t *testing.T) {
	bot := newHelpBot()
	bot.AddTrigger("hello", "Hey!")

	if got := bot.Respond("hello and bye"); got != "Hey!" {
		t.Errorf("Respond() = %q, want %q", got, "Hey!")
	}

	want := []Trigger{
		{Phrase: "hello", Reply: "Hey!"},
		{Phrase: "bye", Reply: "Goodbye!"},
	}
	if diff := cmp.Diff(want, bot.Triggers()); diff != "" {
		t.Errorf("Triggers() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddTriggerAppends(t *testing.T) {
	bot := newHelpBot()
	bot.AddTrigger("thanks", "You're welcome!")

	if bot.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", bot.Len())
	}
	if got := bot.Triggers()[2].Phrase; got != "thanks" {
		t.Errorf("last phrase = %q, want %q", got, "thanks")
	}
}

func TestNewWithDuplicatePhrases(t *testing.T) {
	bot := New("Dup", []Trigger{
		{Phrase: "a", Reply: "1"},
		{Phrase: "b", Reply: "2"},
		{Phrase: "a", Reply: "3"},
	}, "?")

	want := []Trigger{
		{Phrase: "a", Reply: "3"},
		{Phrase: "b", Reply: "2"},
	}
	if diff := cmp.Diff(want, bot.Triggers()); diff != "" {
		t.Errorf("Triggers() mismatch (-want +got):\n%s", diff)
	}
}

func TestEditReply(t *testing.T) {
	bot := newHelpBot()

	if err := bot.EditReply("bye", "See ya!"); err != nil {
		t.Fatalf("EditReply() error = %v", err)
	}
	if got, _ := bot.Reply("bye"); got != "See ya!" {
		t.Errorf("Reply(bye) = %q, want %q", got, "See ya!")
	}
	if got := bot.Triggers()[1].Phrase; got != "bye" {
		t.Errorf("edited trigger moved, position 1 = %q", got)
	}
}

func TestEditReplyMissing(t *testing.T) {
	bot := newHelpBot()
	before := bot.Triggers()

	err := bot.EditReply("missing", "x")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("EditReply() error = %v, want *NotFoundError", err)
	}
	if notFound.Trigger != "missing" {
		t.Errorf("NotFoundError.Trigger = %q, want %q", notFound.Trigger, "missing")
	}
	if _, ok := bot.Reply("missing"); ok {
		t.Error("EditReply created the missing trigger")
	}
	if diff := cmp.Diff(before, bot.Triggers()); diff != "" {
		t.Errorf("table changed (-want +got):\n%s", diff)
	}
}

func TestRemoveTrigger(t *testing.T) {
	bot := newHelpBot()

	if err := bot.RemoveTrigger("hello"); err != nil {
		t.Fatalf("RemoveTrigger() error = %v", err)
	}
	if bot.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bot.Len())
	}
	if _, ok := bot.Reply("hello"); ok {
		t.Error("removed trigger still present")
	}
	if got := bot.Respond("hello"); got != "I don't understand." {
		t.Errorf("Respond() = %q, want default", got)
	}
}

func TestRemoveTriggerMissing(t *testing.T) {
	bot := newHelpBot()
	before := bot.Triggers()

	err := bot.RemoveTrigger("nope")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("RemoveTrigger() error = %v, want *NotFoundError", err)
	}
	if diff := cmp.Diff(before, bot.Triggers()); diff != "" {
		t.Errorf("table changed (-want +got):\n%s", diff)
	}
}

func TestSetDefaultReply(t *testing.T) {
	bot := newHelpBot()
	bot.SetDefaultReply("Say again?")

	if got := bot.Respond("what?"); got != "Say again?" {
		t.Errorf("Respond() = %q, want %q", got, "Say again?")
	}
	if bot.DefaultReply() != "Say again?" {
		t.Errorf("DefaultReply() = %q", bot.DefaultReply())
	}
}

func TestTriggersReturnsCopy(t *testing.T) {
	bot := newHelpBot()
	triggers := bot.Triggers()
	triggers[0].Reply = "changed"

	if got, _ := bot.Reply("hello"); got != "Hi there!" {
		t.Errorf("Reply(hello) = %q, table was mutated through Triggers()", got)
	}
}
