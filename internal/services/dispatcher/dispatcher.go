//go:generate go tool mockgen -source=dispatcher.go -destination=dispatcher_mock_test.go -package=dispatcher
package dispatcher

import (
	"context"
	"errors"
	"net/http"

	"github.com/DIMO-Network/line-bot-api/internal/clients/line"
	"github.com/DIMO-Network/line-bot-api/internal/events"
	"github.com/DIMO-Network/line-bot-api/internal/metrics"
	"github.com/DIMO-Network/line-bot-api/internal/services/friendsrepo"
	"github.com/DIMO-Network/line-bot-api/internal/signature"
	"github.com/rs/zerolog"
)

const (
	unknownDisplayName = "Unknown"

	msgMissingSignature = "Please provide valid channel signature and try again."
	msgInvalidSignature = "Invalid channel signature."
	msgInvalidBody      = "Invalid request body."
	msgSuccess          = "Events received successfully."
)

var (
	// ErrMissingSignature is returned when the delivery carries no signature.
	ErrMissingSignature = errors.New("missing signature")
	// ErrInvalidSignature is returned when the signature does not match the body.
	ErrInvalidSignature = errors.New("invalid signature")
)

// LineClient is the platform API used to answer events.
type LineClient interface {
	SendMessage(ctx context.Context, msg *events.OutgoingMessage) (*line.SendResponse, error)
	GetProfiles(ctx context.Context, mids []string) (*events.ProfileList, error)
}

// FriendRepo stores the users who added the bot as a friend.
type FriendRepo interface {
	AddFriend(ctx context.Context, mid, displayName string) error
	ListFriendsExcept(ctx context.Context, mid string) ([]string, error)
	GetFriend(ctx context.Context, mid string) (*friendsrepo.FriendRecord, error)
}

// Config holds the credentials the dispatcher needs, captured once at startup.
type Config struct {
	ChannelSecret string
}

// HandlerResult is the outcome of one webhook delivery.
type HandlerResult struct {
	Status  int
	Message string
	// Err is set when the delivery was rejected.
	Err error
}

// Dispatcher verifies webhook deliveries and acts on each event in order.
// Processing is best effort: a failed action is logged and the remaining events still run.
// Nothing is rolled back, so the platform may see duplicate messages if it redelivers.
type Dispatcher struct {
	secret []byte
	client LineClient
	repo   FriendRepo
}

// New creates a new Dispatcher.
func New(cfg Config, client LineClient, repo FriendRepo) (*Dispatcher, error) {
	if cfg.ChannelSecret == "" {
		return nil, errors.New("channel secret is required")
	}
	if client == nil || repo == nil {
		return nil, errors.New("line client and friend repository are required")
	}
	return &Dispatcher{
		secret: []byte(cfg.ChannelSecret),
		client: client,
		repo:   repo,
	}, nil
}

// Handle authenticates and processes one webhook delivery.
func (d *Dispatcher) Handle(ctx context.Context, body []byte, sig string) HandlerResult {
	logger := zerolog.Ctx(ctx)

	if sig == "" {
		metrics.WebhookRequests.WithLabelValues("missing_signature").Inc()
		return HandlerResult{Status: http.StatusBadRequest, Message: msgMissingSignature, Err: ErrMissingSignature}
	}
	if !signature.Verify(body, d.secret, sig) {
		metrics.WebhookRequests.WithLabelValues("invalid_signature").Inc()
		return HandlerResult{Status: http.StatusUnauthorized, Message: msgInvalidSignature, Err: ErrInvalidSignature}
	}

	batch, err := events.Parse(body)
	if err != nil {
		metrics.WebhookRequests.WithLabelValues("invalid_body").Inc()
		return HandlerResult{Status: http.StatusBadRequest, Message: msgInvalidBody, Err: err}
	}

	logger.Debug().Int("events", len(batch.Result)).Msg("processing webhook delivery")
	for i := range batch.Result {
		d.dispatch(ctx, &batch.Result[i])
	}

	metrics.WebhookRequests.WithLabelValues("ok").Inc()
	return HandlerResult{Status: http.StatusOK, Message: msgSuccess}
}

func (d *Dispatcher) dispatch(ctx context.Context, ev *events.Event) {
	logger := zerolog.Ctx(ctx).With().Str("eventId", ev.ID).Str("eventType", ev.EventType).Logger()
	ctx = logger.WithContext(ctx)

	switch content := ev.Content.(type) {
	case *events.MessageContent:
		metrics.Events.WithLabelValues("message").Inc()
		d.echo(ctx, content)
	case *events.OperationContent:
		metrics.Events.WithLabelValues("operation").Inc()
		switch content.OpType {
		case events.OpTypeAddedAsFriend:
			d.welcome(ctx, content)
		default:
			logger.Debug().Str("opType", content.OpType.String()).Msg("ignoring operation")
		}
	default:
		metrics.Events.WithLabelValues("unknown").Inc()
		logger.Debug().Msg("ignoring event")
	}
}

func (d *Dispatcher) echo(ctx context.Context, content *events.MessageContent) {
	if content.From == "" {
		zerolog.Ctx(ctx).Error().Msg("message event has no sender")
		return
	}
	d.send(ctx, "echo", []string{content.From}, "You said: "+content.Text)
}

func (d *Dispatcher) welcome(ctx context.Context, content *events.OperationContent) {
	newFriend, ok := content.Subject()
	if !ok {
		zerolog.Ctx(ctx).Error().Msg("friend operation has no user id")
		return
	}
	logger := zerolog.Ctx(ctx).With().Str("mid", newFriend).Logger()
	ctx = logger.WithContext(ctx)

	displayName := d.displayName(ctx, newFriend)
	d.send(ctx, "welcome", []string{newFriend}, displayName+", welcome to be my friend!")

	others, err := d.repo.ListFriendsExcept(ctx, newFriend)
	if err != nil {
		metrics.ActionFailures.WithLabelValues("list_friends").Inc()
		logger.Error().Err(err).Msg("failed to list friends")
	} else if len(others) > 0 {
		d.send(ctx, "broadcast", others, displayName+" just join us, let's welcome him/her!")
	}

	if err := d.repo.AddFriend(ctx, newFriend, displayName); err != nil {
		if friendsrepo.IsConflict(err) {
			metrics.ActionFailures.WithLabelValues("add_friend_conflict").Inc()
			event := logger.Warn().Err(err)
			if existing, getErr := d.repo.GetFriend(ctx, newFriend); getErr == nil {
				event = event.Time("friendSince", existing.AddedAt)
			}
			event.Msg("friend already recorded")
			return
		}
		metrics.ActionFailures.WithLabelValues("add_friend").Inc()
		logger.Error().Err(err).Msg("failed to record friend")
	}
}

// displayName looks up the user's display name, falling back to "Unknown".
func (d *Dispatcher) displayName(ctx context.Context, mid string) string {
	list, err := d.client.GetProfiles(ctx, []string{mid})
	if err != nil {
		metrics.ActionFailures.WithLabelValues("get_profile").Inc()
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to fetch profile")
		return unknownDisplayName
	}
	if list == nil {
		return unknownDisplayName
	}
	for _, profile := range list.Contacts {
		if profile.MID == mid && profile.DisplayName != "" {
			return profile.DisplayName
		}
	}
	if len(list.Contacts) > 0 && list.Contacts[0].DisplayName != "" {
		return list.Contacts[0].DisplayName
	}
	return unknownDisplayName
}

func (d *Dispatcher) send(ctx context.Context, action string, to []string, text string) {
	if _, err := d.client.SendMessage(ctx, events.NewTextMessage(to, text)); err != nil {
		metrics.ActionFailures.WithLabelValues(action).Inc()
		zerolog.Ctx(ctx).Error().Err(err).Str("action", action).Int("recipients", len(to)).Msg("failed to send message")
	}
}
