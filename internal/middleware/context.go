package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyHTMX   ctxKey = "htmx"
	ctxKeyLocale ctxKey = "locale"
)

// WithHTMX stores htmx request metadata in context.
func WithHTMX(ctx context.Context, info HTMXInfo) context.Context {
	return context.WithValue(ctx, ctxKeyHTMX, info)
}

// HTMXFromContext returns the htmx metadata, or the zero value when absent.
func HTMXFromContext(ctx context.Context) HTMXInfo {
	v, _ := ctx.Value(ctxKeyHTMX).(HTMXInfo)
	return v
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	return HTMXFromContext(ctx).IsHTMX
}

// WithLocale stores the resolved UI language in context.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, lang)
}

// LocaleFromContext returns the resolved UI language, if any.
func LocaleFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyLocale).(string)
	return v, ok && v != ""
}
