//go:generate go tool mockgen -source=webhook_controller.go -destination=webhook_controller_mock_test.go -package=webhook
package webhook

import (
	"context"

	"github.com/DIMO-Network/line-bot-api/internal/services/dispatcher"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SignatureHeader carries the base64 HMAC-SHA256 of the request body.
const SignatureHeader = "X-LINE-CHANNELSIGNATURE"

type Dispatcher interface {
	Handle(ctx context.Context, body []byte, signature string) dispatcher.HandlerResult
}

// WebhookController receives event callbacks from the messaging platform.
type WebhookController struct {
	dispatcher Dispatcher
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(d Dispatcher) *WebhookController {
	return &WebhookController{dispatcher: d}
}

// ReceiveEvents godoc
// @Summary      Receive platform events
// @Description  Accepts a signed batch of events from the messaging platform and processes each event in order. Per-event failures are logged and do not change the response.
// @Tags         Webhooks
// @Accept       json
// @Produce      plain
// @Param        X-LINE-CHANNELSIGNATURE  header  string  true  "Base64 HMAC-SHA256 of the body keyed by the channel secret"
// @Success      200  {string}  string  "Events received successfully."
// @Failure      400  {string}  string  "Missing signature or invalid body"
// @Failure      401  {string}  string  "Invalid channel signature"
// @Router       /events [post]
func (w *WebhookController) ReceiveEvents(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext()).With().Str("deliveryId", uuid.NewString()).Logger()
	ctx := logger.WithContext(c.UserContext())

	result := w.dispatcher.Handle(ctx, c.Body(), c.Get(SignatureHeader))
	if result.Err != nil {
		logger.Warn().Err(result.Err).Int("httpStatusCode", result.Status).Msg("Rejected webhook delivery")
	}
	return c.Status(result.Status).SendString(result.Message)
}
