package line

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/line-bot-api/internal/events"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/goccy/go-json"
)

const (
	// RemoteCallFailureCode is the code returned when a call to the platform API failed.
	RemoteCallFailureCode = -1

	defaultTimeout      = 10 * time.Second
	maxResponseBodySize = 1024

	eventsPath   = "/v1/events"
	profilesPath = "/v1/profiles"
)

// SendResponse is the platform's reply to a sent message.
type SendResponse struct {
	Failed    []string `json:"failed"`
	MessageID string   `json:"messageId"`
	Timestamp int64    `json:"timestamp"`
	Version   int      `json:"version"`
}

// Client calls the messaging platform's REST API with the channel access token.
type Client struct {
	baseURL     string
	accessToken string
	timeout     time.Duration
	httpClient  *http.Client
}

// New creates a new Client. A zero timeout uses the default and a nil httpClient uses http.DefaultClient.
func New(baseURL, accessToken string, timeout time.Duration, httpClient *http.Client) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line API URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("line API URL %q must be absolute", baseURL)
	}
	if accessToken == "" {
		return nil, errors.New("access token is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:     strings.TrimSuffix(parsedURL.String(), "/"),
		accessToken: accessToken,
		timeout:     timeout,
		httpClient:  httpClient,
	}, nil
}

// SendMessage posts an outgoing message.
func (c *Client) SendMessage(ctx context.Context, msg *events.OutgoingMessage) (*SendResponse, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal outgoing message: %w", err)
	}

	var resp SendResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+eventsPath, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfiles fetches the profiles of the given users.
func (c *Client) GetProfiles(ctx context.Context, mids []string) (*events.ProfileList, error) {
	if len(mids) == 0 {
		return &events.ProfileList{Contacts: []events.Profile{}}, nil
	}
	query := url.Values{}
	query.Set("mids", strings.Join(mids, ","))

	var list events.ProfileList
	if err := c.do(ctx, http.MethodGet, c.baseURL+profilesPath+"?"+query.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) do(ctx context.Context, method, target string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: RemoteCallFailureCode,
			Err:  fmt.Errorf("failed to call %s %s: %w", method, req.URL.Path, err),
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: RemoteCallFailureCode,
			Err:  fmt.Errorf("%s %s returned status code %d: %s", method, req.URL.Path, resp.StatusCode, string(respBody)),
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return richerrors.Error{
			Code: RemoteCallFailureCode,
			Err:  fmt.Errorf("failed to read response body: %w", err),
		}
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return richerrors.Error{
			Code: RemoteCallFailureCode,
			Err:  fmt.Errorf("failed to decode response body: %w", err),
		}
	}
	return nil
}

// IsRemoteCallError checks if the error came from a failed call to the platform API.
func IsRemoteCallError(err error) bool {
	richErr, ok := richerrors.AsRichError(err)
	return ok && richErr.Code == RemoteCallFailureCode
}
