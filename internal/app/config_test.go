package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/RubenSilva-Londublis/KeepBotAlive/internal/errors"
)

func TestLoadOrInitBootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	_, created, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if !created {
		t.Fatal("expected created=true on first run")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("template not written: %v", err)
	}
	var onDisk Config
	if err := json.Unmarshal(b, &onDisk); err != nil {
		t.Fatalf("template is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(onDisk, DefaultConfig()) {
		t.Fatalf("template does not match defaults:\ngot  %+v\nwant %+v", onDisk, DefaultConfig())
	}

	// second run parses the template instead of bootstrapping again
	cfg, created, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if created {
		t.Fatal("expected created=false on second run")
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("loaded config does not match defaults: %+v", cfg)
	}
}

func TestLoadOrInitNeverOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	want := `{
  "url": "https://bot.example.com/",
  "expected_text": "I'm alive",
  "retry_delay_seconds": 5,
  "max_attempts": 4,
  "email": {
    "enabled": false,
    "smtp_host": "",
    "smtp_port": 0,
    "smtp_username": "",
    "smtp_password": "",
    "from": "",
    "to": [],
    "subject": ""
  }
}
`
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, created, err := LoadOrInit(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if created {
		t.Fatal("expected created=false for an existing file")
	}
	if cfg.MaxAttempts != 4 || cfg.RetryDelaySeconds != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != want {
		t.Fatal("existing config file was modified")
	}
}

func TestLoadOrInitMalformed(t *testing.T) {
	valid := func(mutate func(m map[string]any)) string {
		var m map[string]any
		b, _ := json.Marshal(DefaultConfig())
		_ = json.Unmarshal(b, &m)
		mutate(m)
		out, _ := json.Marshal(m)
		return string(out)
	}

	for _, test := range []struct {
		name string
		body string
	}{
		{"not json", "url = https://bot.example.com"},
		{"trailing data", `{"url":"https://a","expected_text":"x","retry_delay_seconds":0,"max_attempts":1,"email":{"enabled":false,"smtp_host":"","smtp_port":0,"smtp_username":"","smtp_password":"","from":"","to":[],"subject":""}}{}`},
		{"unknown field", valid(func(m map[string]any) { m["extra"] = true })},
		{"wrong type", valid(func(m map[string]any) { m["max_attempts"] = "two" })},
		{"missing url", valid(func(m map[string]any) { m["url"] = "" })},
		{"missing expected_text", valid(func(m map[string]any) { m["expected_text"] = "" })},
		{"zero max_attempts", valid(func(m map[string]any) { m["max_attempts"] = 0 })},
		{"negative delay", valid(func(m map[string]any) { m["retry_delay_seconds"] = -1 })},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(test.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, created, err := LoadOrInit(path)
			if created {
				t.Fatal("created must be false for an existing file")
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Code(err); got != errors.InvalidConfig {
				t.Fatalf("expected InvalidConfig code, got %v (%v)", got, err)
			}
		})
	}
}

func TestRetryDelay(t *testing.T) {
	cfg := Config{RetryDelaySeconds: 60}
	if got := cfg.RetryDelay(); got != time.Minute {
		t.Fatalf("expected 1m, got %v", got)
	}
	cfg.RetryDelaySeconds = 0
	if got := cfg.RetryDelay(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
