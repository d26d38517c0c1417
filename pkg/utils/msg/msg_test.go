package msg_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pixel-node/helpdesk/pkg/utils/msg"
)

func TestNotify(t *testing.T) {
	var called bool
	var gotMsg string
	notifyFunc := func(ctx context.Context, msg string) {
		called = true
		gotMsg = msg
	}

	ctx := msg.With(context.Background(), notifyFunc)
	msg.Notify(ctx, "ticket %s", "created")

	gt.True(t, called)
	gt.Equal(t, "ticket created", gotMsg)
}

func TestNotifyWithoutFunc(t *testing.T) {
	// Should not panic
	msg.Notify(context.Background(), "nobody listens")
}

func TestWithContext(t *testing.T) {
	var gotMsg string
	notifyFunc := func(ctx context.Context, msg string) {
		gotMsg = msg
	}

	original := msg.With(context.Background(), notifyFunc)
	detached := msg.WithContext(original)
	msg.Notify(detached, "survives detach")

	gt.Equal(t, "survives detach", gotMsg)
}
