package app

import (
	"context"
	"strings"

	"github.com/RubenSilva-Londublis/KeepBotAlive/internal/errors"
)

// Renderer loads a page without a visible UI and returns its visible text.
// The real implementation drives a headless browser; tests substitute a
// canned one.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// checkPage renders url once and reports whether expectedText occurs in the
// visible text. The match is an exact, case-sensitive substring.
func checkPage(ctx context.Context, r Renderer, url, expectedText string) (bool, error) {
	text, err := r.Render(ctx, url)
	if err != nil {
		return false, errors.Newf(errors.Render, err, "load %s", url)
	}
	return strings.Contains(text, expectedText), nil
}
