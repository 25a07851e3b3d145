package responder

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire field names of a bot file. Files written by earlier versions use the
// same names, so they must not change.
const (
	fieldName      = "name"
	fieldResponses = "responses"
	fieldDefault   = "default_response"
)

// MarshalJSON encodes the responder with its triggers in table order
func (r *Responder) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	if err := writeMember(&buf, fieldName, r.name); err != nil {
		return nil, err
	}
	buf.WriteByte(',')

	if err := writeString(&buf, fieldResponses); err != nil {
		return nil, err
	}
	buf.WriteString(":{")
	for i, phrase := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, phrase, r.replies[phrase]); err != nil {
			return nil, err
		}
	}
	buf.WriteString("},")

	if err := writeMember(&buf, fieldDefault, r.defaultReply); err != nil {
		return nil, err
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Serialize returns the JSON form of the responder
func (r *Responder) Serialize() []byte {
	// Encoding plain strings cannot fail.
	data, _ := r.MarshalJSON()
	return data
}

// UnmarshalJSON replaces r with the decoded responder
func (r *Responder) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// Parse decodes a bot file. It returns *MalformedDataError for invalid JSON
// and *SchemaError for missing or mistyped fields.
func Parse(data []byte) (*Responder, error) {
	if !json.Valid(data) {
		var v any
		return nil, &MalformedDataError{Err: json.Unmarshal(data, &v)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, &SchemaError{Reason: "top-level value must be an object"}
	}

	name, err := decodeString(fields, fieldName)
	if err != nil {
		return nil, err
	}

	raw, ok := fields[fieldResponses]
	if !ok {
		return nil, &SchemaError{Field: fieldResponses, Reason: "is missing"}
	}
	triggers, err := decodeTriggers(raw)
	if err != nil {
		return nil, err
	}

	defaultReply, err := decodeString(fields, fieldDefault)
	if err != nil {
		return nil, err
	}

	return New(name, triggers, defaultReply), nil
}

func decodeString(fields map[string]json.RawMessage, field string) (string, error) {
	raw, ok := fields[field]
	if !ok {
		return "", &SchemaError{Field: field, Reason: "is missing"}
	}

	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", &SchemaError{Field: field, Reason: "must be a string"}
	}
	return *s, nil
}

// decodeTriggers walks the responses object token by token so the key
// order of the file survives decoding.
func decodeTriggers(raw json.RawMessage) ([]Trigger, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, &SchemaError{Field: fieldResponses, Reason: "must be an object"}
	}

	var triggers []Trigger
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &MalformedDataError{Err: err}
		}
		phrase, ok := tok.(string)
		if !ok {
			return nil, &SchemaError{Field: fieldResponses, Reason: "must be an object"}
		}

		var reply *string
		if err := dec.Decode(&reply); err != nil || reply == nil {
			return nil, &SchemaError{
				Field:  fieldResponses,
				Reason: fmt.Sprintf("value for %q must be a string", phrase),
			}
		}
		triggers = append(triggers, Trigger{Phrase: phrase, Reply: *reply})
	}

	return triggers, nil
}

func writeMember(buf *bytes.Buffer, key, value string) error {
	if err := writeString(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return writeString(buf, value)
}

// writeString encodes s as a JSON string. Invalid UTF-8 bytes become U+FFFD,
// so only valid UTF-8 text survives a round trip unchanged.
func writeString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
