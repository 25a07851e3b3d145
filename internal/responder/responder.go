package responder

import (
	"slices"
	"strings"
)

// Trigger is a phrase and the reply it produces
type Trigger struct {
	Phrase string
	Reply  string
}

// Responder picks canned replies by matching trigger phrases in user input
type Responder struct {
	name         string
	order        []string
	replies      map[string]string
	defaultReply string
}

// New creates a responder. Repeated phrases keep their first position.
func New(name string, triggers []Trigger, defaultReply string) *Responder {
	r := &Responder{
		name:         name,
		order:        make([]string, 0, len(triggers)),
		replies:      make(map[string]string, len(triggers)),
		defaultReply: defaultReply,
	}
	for _, t := range triggers {
		r.AddTrigger(t.Phrase, t.Reply)
	}
	return r
}

// Name returns the responder name
func (r *Responder) Name() string {
	return r.name
}

// DefaultReply returns the reply used when nothing matches
func (r *Responder) DefaultReply() string {
	return r.defaultReply
}

// Len returns the number of triggers
func (r *Responder) Len() int {
	return len(r.order)
}

// Triggers returns a copy of the table in insertion order
func (r *Responder) Triggers() []Trigger {
	result := make([]Trigger, 0, len(r.order))
	for _, phrase := range r.order {
		result = append(result, Trigger{Phrase: phrase, Reply: r.replies[phrase]})
	}
	return result
}

// Reply returns the reply stored for an exact phrase
func (r *Responder) Reply(phrase string) (string, bool) {
	reply, ok := r.replies[phrase]
	return reply, ok
}

// Respond returns the reply of the earliest trigger contained in input,
// ignoring case, or the default reply.
func (r *Responder) Respond(input string) string {
	input = strings.ToLower(input)
	for _, phrase := range r.order {
		if strings.Contains(input, strings.ToLower(phrase)) {
			return r.replies[phrase]
		}
	}
	return r.defaultReply
}

// AddTrigger inserts or overwrites a trigger. Overwriting keeps the position.
func (r *Responder) AddTrigger(phrase, reply string) {
	if _, ok := r.replies[phrase]; !ok {
		r.order = append(r.order, phrase)
	}
	r.replies[phrase] = reply
}

// EditReply replaces the reply of an existing trigger
func (r *Responder) EditReply(phrase, reply string) error {
	if _, ok := r.replies[phrase]; !ok {
		return &NotFoundError{Trigger: phrase}
	}
	r.replies[phrase] = reply
	return nil
}

// RemoveTrigger deletes an existing trigger
func (r *Responder) RemoveTrigger(phrase string) error {
	if _, ok := r.replies[phrase]; !ok {
		return &NotFoundError{Trigger: phrase}
	}
	delete(r.replies, phrase)
	r.order = slices.DeleteFunc(r.order, func(p string) bool {
		return p == phrase
	})
	return nil
}

// SetDefaultReply replaces the fallback reply
func (r *Responder) SetDefaultReply(reply string) {
	r.defaultReply = reply
}
