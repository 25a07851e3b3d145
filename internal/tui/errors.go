package tui

import (
	"errors"
	"fmt"

	"github.com/sant0-9/replybot/internal/responder"
)

// errorNotice turns an error into the message shown to the operator
func errorNotice(err error) string {
	var notFound *responder.NotFoundError
	var malformed *responder.MalformedDataError
	var schemaErr *responder.SchemaError

	switch {
	case errors.As(err, &notFound) && notFound.Path != "":
		return "File not found. Please try again with a valid filename."
	case errors.As(err, &notFound):
		return fmt.Sprintf("No response found for '%s'", notFound.Trigger)
	case errors.As(err, &malformed):
		return "Invalid configuration file. Please make sure the file contains valid JSON."
	case errors.As(err, &schemaErr):
		detail := schemaErr.Reason
		if schemaErr.Field != "" {
			detail = schemaErr.Field + " " + detail
		}
		return "Invalid configuration file: " + detail
	default:
		return err.Error()
	}
}
