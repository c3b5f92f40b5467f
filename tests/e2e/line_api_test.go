package e2e_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/DIMO-Network/line-bot-api/internal/events"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

// mockLineServer stands in for the platform API, recording sent messages and serving profiles.
type mockLineServer struct {
	server   *httptest.Server
	mu       sync.RWMutex
	sent     []events.OutgoingMessage
	profiles map[string]events.Profile
	failFor  map[string]bool
}

func newMockLineServer(t *testing.T, accessToken string) *mockLineServer {
	m := &mockLineServer{
		profiles: make(map[string]events.Profile),
		failFor:  make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/events", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+accessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}
		var msg events.OutgoingMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			http.Error(w, "Invalid message", http.StatusBadRequest)
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		for _, to := range msg.To {
			if m.failFor[to] {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		m.sent = append(m.sent, msg)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"failed":[],"messageId":"1","timestamp":1,"version":1}`))
	})
	mux.HandleFunc("GET /v1/profiles", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+accessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		m.mu.RLock()
		list := events.ProfileList{Contacts: []events.Profile{}}
		for _, mid := range strings.Split(r.URL.Query().Get("mids"), ",") {
			if profile, ok := m.profiles[mid]; ok {
				list.Contacts = append(list.Contacts, profile)
			}
		}
		m.mu.RUnlock()
		list.Count = len(list.Contacts)
		list.Total = len(list.Contacts)
		list.Display = len(list.Contacts)
		list.Start = 1

		body, err := json.Marshal(list)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})

	m.server = httptest.NewServer(mux)
	return m
}

func (m *mockLineServer) URL() string {
	return m.server.URL
}

func (m *mockLineServer) SetProfile(mid, displayName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[mid] = events.Profile{MID: mid, DisplayName: displayName}
}

// FailMessagesTo makes every message addressed to mid fail with a 500.
func (m *mockLineServer) FailMessagesTo(mid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failFor[mid] = true
}

// MessagesTo returns the texts of all recorded messages that include mid as a recipient.
func (m *mockLineServer) MessagesTo(mid string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var texts []string
	for _, msg := range m.sent {
		if slices.Contains(msg.To, mid) {
			texts = append(texts, msg.Content.Text)
		}
	}
	return texts
}

func (m *mockLineServer) Close() {
	m.server.Close()
}
