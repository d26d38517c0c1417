// Package msg propagates a user-facing notify function through context so
// that use cases can surface non-fatal notices (transcript saved, export
// failed) without holding a reference to the interaction that triggered
// them. The controller installs the function per event.
package msg

import (
	"context"
	"fmt"
)

type NotifyFunc func(ctx context.Context, msg string)

type ctxNotifyFuncKey struct{}

func With(ctx context.Context, notify NotifyFunc) context.Context {
	return context.WithValue(ctx, ctxNotifyFuncKey{}, notify)
}

// Notify sends a notice to the user who triggered the current event. It is
// a no-op when no notify function is installed.
func Notify(ctx context.Context, format string, args ...any) {
	if v := ctx.Value(ctxNotifyFuncKey{}); v != nil {
		if fn, ok := v.(NotifyFunc); ok && fn != nil {
			fn(ctx, fmt.Sprintf(format, args...))
		}
	}
}

// WithContext copies the notify function of original into a fresh context,
// for handlers that outlive the triggering event's context.
func WithContext(original context.Context) context.Context {
	ctx := context.Background()
	return context.WithValue(ctx, ctxNotifyFuncKey{}, original.Value(ctxNotifyFuncKey{}))
}
