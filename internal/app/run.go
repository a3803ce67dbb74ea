package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v5"

	"github.com/RubenSilva-Londublis/KeepBotAlive/internal/errors"
)

// Run performs one bounded check pass: up to cfg.MaxAttempts page checks with
// a fixed delay in between, then exactly one alert on exhaustion. The verdict
// never depends on whether the alert itself went out.
func Run(ctx context.Context, cfg Config, r Renderer, notify NotifyFunc) Verdict {
	start := time.Now()
	attempt := 0

	slog.Default().LogAttrs(
		logCtx,
		slog.LevelInfo,
		"starting check",
		slog.String("url", cfg.URL),
		slog.String("expected_text", cfg.ExpectedText),
		slog.Int("max_attempts", cfg.MaxAttempts),
		slog.Duration("retry_delay", cfg.RetryDelay()),
	)

	err := retry.New(
		retry.Context(ctx),
		retry.Attempts(uint(cfg.MaxAttempts)),
		retry.Delay(cfg.RetryDelay()),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logAttemptf(slog.LevelInfo, int(n)+1, cfg.MaxAttempts, "waiting %s before next attempt", cfg.RetryDelay())
		}),
	).Do(func() error {
		attempt++
		found, err := checkPage(ctx, r, cfg.URL, cfg.ExpectedText)
		if err != nil {
			logAttemptf(slog.LevelWarn, attempt, cfg.MaxAttempts,
				"page load failed (transient=%t): %v", isTransientError(err), err)
			return err
		}
		if !found {
			logAttemptf(slog.LevelWarn, attempt, cfg.MaxAttempts, "expected text not found")
			return errors.Newf(errors.NotFound, nil, "expected text %q not found at %s", cfg.ExpectedText, cfg.URL)
		}
		logAttemptf(slog.LevelInfo, attempt, cfg.MaxAttempts, "application is alive")
		return nil
	})

	verdict := VerdictAlive
	switch {
	case err == nil:
	case ctx.Err() != nil:
		logf(slog.LevelInfo, "shutdown before verdict")
		verdict = VerdictAborted
	default:
		logf(slog.LevelError, "application still down after %d attempt(s): %v", attempt, err)
		sendAlert(ctx, cfg, notify)
		verdict = VerdictDown
	}

	slog.Default().LogAttrs(
		logCtx,
		slog.LevelInfo,
		"check finished",
		slog.String("verdict", verdict.String()),
		slog.Int("attempts", attempt),
		slog.Duration("duration", time.Since(start)),
	)
	return verdict
}

func sendAlert(ctx context.Context, cfg Config, notify NotifyFunc) {
	if notify == nil {
		logf(slog.LevelInfo, "email alert is disabled in config")
		return
	}
	if err := notify(ctx, alertSubject(cfg), alertBody(cfg)); err != nil {
		logf(slog.LevelError, "alert email failed: %v", err)
		return
	}
	logf(slog.LevelInfo, "alert email sent")
}

func alertSubject(cfg Config) string {
	if cfg.Email.Subject != "" {
		return cfg.Email.Subject
	}
	return "Application is DOWN"
}

func alertBody(cfg Config) string {
	return fmt.Sprintf(
		"The application at %s does not show the expected message: %q.\nPlease check the service.",
		cfg.URL, cfg.ExpectedText,
	)
}
