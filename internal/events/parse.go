package events

import (
	"errors"

	"github.com/goccy/go-json"
)

// ErrNoRecipients is returned when an outgoing message has no recipients.
var ErrNoRecipients = errors.New("outgoing message has no recipients")

// ParseError is returned when a webhook body does not decode into an EventBatch.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid event batch: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// Parse decodes a webhook body. Unknown fields are ignored and a missing result is an empty batch.
func Parse(body []byte) (*EventBatch, error) {
	if len(body) == 0 {
		return nil, &ParseError{Err: errors.New("empty body")}
	}
	var batch EventBatch
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, &ParseError{Err: err}
	}
	if batch.Result == nil {
		batch.Result = []Event{}
	}
	return &batch, nil
}
