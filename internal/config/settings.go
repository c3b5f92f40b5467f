package config

import (
	"errors"
	"time"

	"github.com/DIMO-Network/shared/pkg/db"
)

const (
	defaultLineAPIURL        = "https://api.line.me"
	defaultRemoteCallTimeout = 10 * time.Second
)

// Settings contains the application config
type Settings struct {
	Port               int           `env:"PORT"`
	MonPort            int           `env:"MON_PORT"`
	EnablePprof        bool          `env:"ENABLE_PPROF"`
	LogLevel           string        `env:"LOG_LEVEL"`
	ServiceName        string        `env:"SERVICE_NAME"`
	ChannelSecret      string        `env:"CHANNEL_SECRET"`
	ChannelAccessToken string        `env:"CHANNEL_ACCESS_TOKEN"`
	LineAPIURL         string        `env:"LINE_API_URL"`
	RemoteCallTimeout  time.Duration `env:"REMOTE_CALL_TIMEOUT"`

	DB db.Settings `envPrefix:"DB_"`
}

// Validate checks that the channel credentials are present and fills in defaults.
func (s *Settings) Validate() error {
	if s.ChannelSecret == "" || s.ChannelAccessToken == "" {
		return errors.New("CHANNEL_SECRET and CHANNEL_ACCESS_TOKEN must be set")
	}
	if s.LineAPIURL == "" {
		s.LineAPIURL = defaultLineAPIURL
	}
	if s.RemoteCallTimeout <= 0 {
		s.RemoteCallTimeout = defaultRemoteCallTimeout
	}
	if s.ServiceName == "" {
		s.ServiceName = "line-bot-api"
	}
	return nil
}
