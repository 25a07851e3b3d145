package responder

import "fmt"

// NotFoundError reports a missing trigger or a missing bot file
type NotFoundError struct {
	Trigger string
	Path    string
	Err     error
}

func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("file not found: %s", e.Path)
	}
	return fmt.Sprintf("no response found for '%s'", e.Trigger)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// MalformedDataError reports bot data that is not valid JSON
type MalformedDataError struct {
	Err error
}

func (e *MalformedDataError) Error() string {
	if e.Err == nil {
		return "malformed bot data: invalid JSON"
	}
	return fmt.Sprintf("malformed bot data: %v", e.Err)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// SchemaError reports valid JSON with a missing or mistyped field
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid bot data: %s", e.Reason)
	}
	return fmt.Sprintf("invalid bot data: %q %s", e.Field, e.Reason)
}
