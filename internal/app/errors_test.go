package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsTransientError(t *testing.T) {
	for _, test := range []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("run: %w", context.DeadlineExceeded), true},
		{"dns", errors.New("dial tcp: lookup bot.example.com: no such host"), true},
		{"refused", errors.New("connection refused"), true},
		{"chromium dns", errors.New("page load error net::ERR_NAME_NOT_RESOLVED"), true},
		{"chromium timeout", errors.New("page load error net::ERR_TIMED_OUT"), true},
		{"chromium connection", errors.New("page load error net::ERR_CONNECTION_RESET"), true},
		{"plain failure", errors.New("boom"), false},
		{"http 500 body", errors.New("unexpected page state"), false},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := isTransientError(test.err); got != test.want {
				t.Fatalf("isTransientError(%v) = %t, want %t", test.err, got, test.want)
			}
		})
	}
}
