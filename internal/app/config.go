package app

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/RubenSilva-Londublis/KeepBotAlive/internal/errors"
)

// Config is loaded once per run from config.json and passed explicitly; it is
// never mutated after LoadOrInit returns.
type Config struct {
	URL               string      `json:"url"`
	ExpectedText      string      `json:"expected_text"`
	RetryDelaySeconds int         `json:"retry_delay_seconds"`
	MaxAttempts       int         `json:"max_attempts"`
	Email             EmailConfig `json:"email"`
}

type EmailConfig struct {
	Enabled      bool     `json:"enabled"`
	SMTPHost     string   `json:"smtp_host"`
	SMTPPort     int      `json:"smtp_port"`
	SMTPUsername string   `json:"smtp_username"`
	SMTPPassword string   `json:"smtp_password"`
	From         string   `json:"from"`
	To           []string `json:"to"`
	Subject      string   `json:"subject"`
}

func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}

// DefaultConfig is the template written on first run.
func DefaultConfig() Config {
	return Config{
		URL:               "https://example.com/",
		ExpectedText:      "I'm alive",
		RetryDelaySeconds: 60,
		MaxAttempts:       2,
		Email: EmailConfig{
			Enabled:      false,
			SMTPHost:     "smtp.example.com",
			SMTPPort:     587,
			SMTPUsername: "alerts@example.com",
			SMTPPassword: "your_password",
			From:         "alerts@example.com",
			To:           []string{"you@example.com"},
			Subject:      "Application is DOWN",
		},
	}
}

// LoadOrInit reads the config at path. If the file does not exist it writes
// the default template instead and reports created=true; the caller should
// skip the check for this invocation so the user can edit the template first.
// An existing file is never overwritten.
func LoadOrInit(path string) (Config, bool, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := writeDefault(path); werr != nil {
			return Config{}, false, errors.Newf(errors.InvalidConfig, werr, "write default config to %s", path)
		}
		return Config{}, true, nil
	}
	if err != nil {
		return Config{}, false, errors.Newf(errors.InvalidConfig, err, "read config %s", path)
	}
	cfg, err := parseConfig(b)
	if err != nil {
		return Config{}, false, err
	}
	return cfg, false, nil
}

func parseConfig(b []byte) (Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Newf(errors.InvalidConfig, err, "parse config")
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, errors.Newf(errors.InvalidConfig, nil, "invalid config: trailing data")
		}
		return Config{}, errors.Newf(errors.InvalidConfig, err, "parse config")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return errors.Newf(errors.InvalidConfig, nil, "url is required")
	}
	if c.ExpectedText == "" {
		return errors.Newf(errors.InvalidConfig, nil, "expected_text is required")
	}
	if c.RetryDelaySeconds < 0 {
		return errors.Newf(errors.InvalidConfig, nil, "retry_delay_seconds must be >= 0, got %d", c.RetryDelaySeconds)
	}
	if c.MaxAttempts < 1 {
		return errors.Newf(errors.InvalidConfig, nil, "max_attempts must be >= 1, got %d", c.MaxAttempts)
	}
	return nil
}

func writeDefault(path string) error {
	b, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	// O_EXCL so a config that appeared between the read and the write can
	// never be clobbered.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
