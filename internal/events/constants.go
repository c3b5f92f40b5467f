package events

// Wire identifiers used by the messaging platform.
const (
	// EventTypeMessage is the event type of a message sent by a user to the bot.
	EventTypeMessage = "138311609000106303"
	// EventTypeOperation is the event type of a lifecycle operation such as a friend add.
	EventTypeOperation = "138311609100106403"
	// EventTypeOutgoingMessage is the event type of messages sent by the bot.
	EventTypeOutgoingMessage = "138311608800106203"

	// ToChannelMessage is the fixed channel id for outgoing messages.
	ToChannelMessage int64 = 1383378250

	// ContentTypeText marks a text message.
	ContentTypeText = 1
	// ToTypeUser addresses a message to users.
	ToTypeUser = 1
)

// OpType identifies the kind of operation event.
type OpType int

const (
	// OpTypeAddedAsFriend is sent when a user adds the bot as a friend. params[0] is the user's mid.
	OpTypeAddedAsFriend OpType = 4
	// OpTypeBlocked is sent when a user blocks the bot.
	OpTypeBlocked OpType = 8
)

func (o OpType) String() string {
	switch o {
	case OpTypeAddedAsFriend:
		return "addedAsFriend"
	case OpTypeBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}
