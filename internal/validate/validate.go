// Package validate checks decoded request fields before any store mutation.
// Functions are pure; invalid input is a normal return value, never a panic.
package validate

import (
	"strings"
	"time"

	"task-manager-api/internal/domain"
)

type Kind int

const (
	KindMissingFields Kind = iota + 1
	KindInvalidDate
	KindInvalidStatus
	KindEmptyUpdate
)

// Error reports one validation failure. The message is part of the API
// contract and is written to the client verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

const dateLayout = "2006-01-02"

var createRequired = []string{"title", "description", "due_date"}

var invalidStatusMessage = func() string {
	names := make([]string, 0, len(domain.Statuses()))
	for _, s := range domain.Statuses() {
		names = append(names, string(s))
	}
	return "Invalid status. Must be one of: " + strings.Join(names, ", ")
}()

// Date succeeds iff value is a real calendar date written as YYYY-MM-DD.
func Date(value string) *Error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return &Error{Kind: KindInvalidDate, Message: "Invalid date format. Use YYYY-MM-DD"}
	}
	return nil
}

// Status succeeds iff value is exactly one of the three status strings.
func Status(value string) *Error {
	if _, ok := domain.ParseStatus(value); !ok {
		return &Error{Kind: KindInvalidStatus, Message: invalidStatusMessage}
	}
	return nil
}

// RequiredFields checks presence only; an empty-string value still counts as
// present. Missing names are reported comma-joined in required order.
func RequiredFields(fields map[string]any, required []string) *Error {
	var missing []string
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &Error{
			Kind:    KindMissingFields,
			Message: "Missing required fields: " + strings.Join(missing, ", "),
		}
	}
	return nil
}

// Create validates fields for task creation: title, description and due_date
// must be present, due_date must parse, and status is checked only when
// supplied. The first failure wins.
func Create(fields map[string]any) *Error {
	if err := RequiredFields(fields, createRequired); err != nil {
		return err
	}
	if err := Date(stringValue(fields["due_date"])); err != nil {
		return err
	}
	if raw, ok := fields["status"]; ok {
		if err := Status(stringValue(raw)); err != nil {
			return err
		}
	}
	return nil
}

// Update validates fields for a partial update. Nothing is required, but an
// empty field set is rejected outright. Unrecognized fields pass through.
func Update(fields map[string]any) *Error {
	if len(fields) == 0 {
		return &Error{Kind: KindEmptyUpdate, Message: "No fields provided for update"}
	}
	if raw, ok := fields["due_date"]; ok {
		if err := Date(stringValue(raw)); err != nil {
			return err
		}
	}
	if raw, ok := fields["status"]; ok {
		if err := Status(stringValue(raw)); err != nil {
			return err
		}
	}
	return nil
}

// stringValue coerces a decoded JSON value; non-strings become "" and fail
// the downstream check.
func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
