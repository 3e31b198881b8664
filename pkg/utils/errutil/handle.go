package errutil

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs a fatal error and reports it to Sentry when a client is
// initialized. goerr values are attached to the event as "values" context.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	ctxlog.From(ctx).Error("publisherr failed", slog.Any("error", err))

	hub := sentry.CurrentHub().Clone()
	if hub.Client() == nil {
		return
	}

	hub.ConfigureScope(func(scope *sentry.Scope) {
		if values := Values(err); len(values) > 0 {
			scope.SetContext("values", sentry.Context(values))
		}
	})

	if eventID := hub.CaptureException(err); eventID != nil {
		ctxlog.From(ctx).Info("Error reported to sentry", "event_id", string(*eventID))
	}
}

// Values collects the goerr values of err and every goerr it wraps
func Values(err error) map[string]any {
	values := map[string]any{}
	for e := goerr.Unwrap(err); e != nil; e = goerr.Unwrap(e.Unwrap()) {
		for k, v := range e.Values() {
			if _, ok := values[k]; !ok {
				values[k] = v
			}
		}
	}
	return values
}
