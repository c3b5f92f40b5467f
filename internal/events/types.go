package events

import (
	"fmt"

	"github.com/goccy/go-json"
)

// EventBatch is the payload of a single webhook delivery.
// Result is in delivery order.
type EventBatch struct {
	Result []Event `json:"result"`
}

// Event is one occurrence reported by the platform.
type Event struct {
	ID          string   `json:"id"`
	From        string   `json:"from"`
	FromChannel int64    `json:"fromChannel"`
	To          []string `json:"to"`
	ToChannel   int64    `json:"toChannel"`
	EventType   string   `json:"eventType"`
	// Content is nil when the delivery carried no content.
	Content Content `json:"-"`
}

// Content is the event payload. The concrete type is selected by the event type:
// *MessageContent, *OperationContent or *UnknownContent.
type Content interface {
	eventContent()
}

// MessageContent is a message authored by a user.
type MessageContent struct {
	ID          string   `json:"id"`
	ContentType int      `json:"contentType"`
	From        string   `json:"from"`
	CreatedTime int64    `json:"createdTime"`
	To          []string `json:"to"`
	ToType      int      `json:"toType"`
	Text        string   `json:"text"`
}

// OperationContent is a platform lifecycle operation.
type OperationContent struct {
	Revision int64    `json:"revision"`
	OpType   OpType   `json:"opType"`
	Params   []string `json:"params"`
}

// UnknownContent holds content for event types this service does not handle.
type UnknownContent struct {
	Raw json.RawMessage
}

func (*MessageContent) eventContent()   {}
func (*OperationContent) eventContent() {}
func (*UnknownContent) eventContent()   {}

// Subject returns params[0], the user an operation applies to.
func (o *OperationContent) Subject() (string, bool) {
	if len(o.Params) == 0 || o.Params[0] == "" {
		return "", false
	}
	return o.Params[0], true
}

type rawEvent struct {
	ID          string          `json:"id"`
	From        string          `json:"from"`
	FromChannel int64           `json:"fromChannel"`
	To          []string        `json:"to"`
	ToChannel   int64           `json:"toChannel"`
	EventType   string          `json:"eventType"`
	Content     json.RawMessage `json:"content"`
}

// UnmarshalJSON decodes the envelope and then the content variant selected by eventType.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Event{
		ID:          raw.ID,
		From:        raw.From,
		FromChannel: raw.FromChannel,
		To:          raw.To,
		ToChannel:   raw.ToChannel,
		EventType:   raw.EventType,
	}
	if len(raw.Content) == 0 || string(raw.Content) == "null" {
		return nil
	}

	var content Content
	switch raw.EventType {
	case EventTypeMessage:
		content = &MessageContent{}
	case EventTypeOperation:
		content = &OperationContent{}
	default:
		e.Content = &UnknownContent{Raw: raw.Content}
		return nil
	}
	if err := json.Unmarshal(raw.Content, content); err != nil {
		return fmt.Errorf("failed to decode content of event %q: %w", raw.ID, err)
	}
	e.Content = content
	return nil
}

// OutgoingMessage is the payload the bot posts to send a message.
type OutgoingMessage struct {
	To        []string    `json:"to"`
	ToChannel int64       `json:"toChannel"`
	EventType string      `json:"eventType"`
	Content   TextContent `json:"content"`
}

// TextContent is the content of an outgoing text message.
type TextContent struct {
	ContentType int    `json:"contentType"`
	ToType      int    `json:"toType"`
	Text        string `json:"text"`
}

// NewTextMessage builds a text message addressed to the given users.
func NewTextMessage(to []string, text string) *OutgoingMessage {
	return &OutgoingMessage{
		To:        to,
		ToChannel: ToChannelMessage,
		EventType: EventTypeOutgoingMessage,
		Content: TextContent{
			ContentType: ContentTypeText,
			ToType:      ToTypeUser,
			Text:        text,
		},
	}
}

// Validate checks that the message has at least one recipient.
func (m *OutgoingMessage) Validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}
	for _, mid := range m.To {
		if mid == "" {
			return ErrNoRecipients
		}
	}
	return nil
}

// Profile is a user's public profile.
type Profile struct {
	MID           string `json:"mid"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl"`
	StatusMessage string `json:"statusMessage"`
}

// ProfileList is the response of a profile lookup.
type ProfileList struct {
	Contacts []Profile `json:"contacts"`
	Count    int       `json:"count"`
	Total    int       `json:"total"`
	Start    int       `json:"start"`
	Display  int       `json:"display"`
}
