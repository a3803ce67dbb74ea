package app

import (
	"context"
	"testing"

	"github.com/RubenSilva-Londublis/KeepBotAlive/internal/errors"
)

func TestCheckPageSubstringMatch(t *testing.T) {
	for _, test := range []struct {
		name     string
		text     string
		expected string
		want     bool
	}{
		{"exact", "I'm alive", "I'm alive", true},
		{"substring", "<header> status: I'm alive, thanks", "I'm alive", true},
		{"absent", "service unavailable", "I'm alive", false},
		{"case sensitive", "I'M ALIVE", "I'm alive", false},
		{"empty page", "", "I'm alive", false},
	} {
		t.Run(test.name, func(t *testing.T) {
			r := &fakeRenderer{steps: []step{{text: test.text}}}
			found, err := checkPage(context.Background(), r, "https://bot.example.com/", test.expected)
			if err != nil {
				t.Fatalf("checkPage: %v", err)
			}
			if found != test.want {
				t.Fatalf("found=%t, want %t", found, test.want)
			}
		})
	}
}

func TestCheckPageRenderError(t *testing.T) {
	r := &fakeRenderer{steps: []step{{err: errors.Newf(errors.Internal, nil, "net::ERR_NAME_NOT_RESOLVED")}}}

	found, err := checkPage(context.Background(), r, "https://bot.example.com/", "I'm alive")
	if found {
		t.Fatal("found must be false on render failure")
	}
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := errors.Code(err); got != errors.Render {
		t.Fatalf("expected Render code, got %v", got)
	}
}
