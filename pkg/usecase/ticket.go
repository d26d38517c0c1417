package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pixel-node/helpdesk/pkg/domain/model/chat"
	"github.com/pixel-node/helpdesk/pkg/domain/model/errs"
	ticketmodel "github.com/pixel-node/helpdesk/pkg/domain/model/ticket"
	"github.com/pixel-node/helpdesk/pkg/domain/model/transcript"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
	"github.com/pixel-node/helpdesk/pkg/utils/clock"
	"github.com/pixel-node/helpdesk/pkg/utils/logging"
	"github.com/pixel-node/helpdesk/pkg/utils/msg"
)

// CreateTicket provisions a private ticket channel for the requester. The
// per-key lock covers the duplicate check, the provisioning call, and the
// registry insert, so two concurrent selections of the same category cannot
// both create a channel.
func (uc *UseCases) CreateTicket(ctx context.Context, guildID types.GuildID, requester chat.User, category types.Category) (*chat.Channel, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	key := ticketmodel.NewKey(guildID, requester.ID, category)

	unlock := uc.repo.LockKey(key)
	defer unlock()

	if uc.repo.Has(key) {
		return nil, goerr.Wrap(errs.ErrTicketAlreadyOpen, "rejecting duplicate ticket",
			goerr.V("key", key.String()),
		)
	}

	name := ticketmodel.ChannelName(category, requester.Name, requester.ID)
	channel, err := uc.gateway.CreateTicketChannel(ctx, guildID, chat.TicketChannelRequest{
		Name:      name,
		ParentID:  uc.parentCategory,
		Requester: requester.ID,
		StaffRole: uc.staffRole,
	})
	if err != nil {
		return nil, goerr.Wrap(errs.ErrChannelProvisioning, err.Error(),
			goerr.V("key", key.String()),
			goerr.V("name", name),
		)
	}

	// The topic is the durable ownership record. Losing it only narrows
	// closure to staff, so a failure here must not fail the ticket.
	if err := uc.gateway.SetTopic(ctx, channel.ID, ticketmodel.EncodeTopic(requester.ID)); err != nil {
		logging.From(ctx).Warn("failed to tag ticket channel topic",
			logging.ErrAttr(err),
			"channel_id", channel.ID,
		)
	} else {
		channel.Topic = ticketmodel.EncodeTopic(requester.ID)
	}

	uc.repo.Put(ticketmodel.New(key, channel.ID, clock.Now(ctx)))

	if err := uc.gateway.PostTicketWelcome(ctx, channel.ID, requester.ID, uc.staffRole, category); err != nil {
		return nil, goerr.Wrap(err, "failed to post ticket welcome",
			goerr.V("channel_id", channel.ID),
		)
	}

	logging.From(ctx).Info("ticket created",
		"key", key.String(),
		"channel_id", channel.ID,
		"channel_name", channel.Name,
	)
	return channel, nil
}

// AuthorizeClose reports whether actor may close the ticket channel: staff
// always may, the requester recorded in the channel topic may, nobody else.
// When the topic is missing or garbled only staff qualify.
func (uc *UseCases) AuthorizeClose(ctx context.Context, guildID types.GuildID, actor types.UserID, channelID types.ChannelID) (bool, error) {
	isStaff, err := uc.gateway.MemberHasRole(ctx, guildID, actor, uc.staffRole)
	if err != nil {
		return false, goerr.Wrap(err, "failed to check staff role",
			goerr.V("actor", actor),
		)
	}
	if isStaff {
		return true, nil
	}

	channel, err := uc.gateway.GetChannel(ctx, channelID)
	if err != nil {
		return false, goerr.Wrap(err, "failed to look up ticket channel",
			goerr.V("channel_id", channelID),
		)
	}

	requester, ok := ticketmodel.DecodeTopic(channel.Topic)
	if !ok {
		return false, nil
	}
	return requester == actor, nil
}

// CloseTicket runs the export (when enabled and a log destination exists)
// and schedules channel deletion after the grace delay. Export failures are
// reported to the user but never block closure.
func (uc *UseCases) CloseTicket(ctx context.Context, guildID types.GuildID, channelID types.ChannelID, exportEnabled bool) error {
	if t := uc.repo.GetByChannel(channelID); t != nil {
		t.Status = ticketmodel.StatusClosing
		uc.repo.Put(t)
	}

	if exportEnabled && uc.exporter.HasLogChannel() {
		channel, err := uc.gateway.GetChannel(ctx, channelID)
		if err != nil {
			logging.From(ctx).Error("failed to fetch channel for closing export", logging.ErrAttr(err))
		} else if _, err := uc.exporter.Export(ctx, channel); err != nil {
			logging.From(ctx).Error("transcript export failed during close", logging.ErrAttr(err))
			msg.Notify(ctx, "⚠️ Failed to save transcript; closing anyway.")
		}
	}

	uc.scheduleDeletion(ctx, channelID)
	return nil
}

// scheduleDeletion arms the grace timer for a closing ticket. The timer is
// tracked so Shutdown can cancel it.
func (uc *UseCases) scheduleDeletion(ctx context.Context, channelID types.ChannelID) {
	// The triggering interaction's context ends with its handler; the
	// deletion must not.
	bgCtx := logging.With(msg.WithContext(ctx), logging.From(ctx))

	uc.timerMu.Lock()
	defer uc.timerMu.Unlock()

	if _, ok := uc.timers[channelID]; ok {
		// A close is already pending for this channel.
		return
	}

	uc.wg.Add(1)
	uc.timers[channelID] = time.AfterFunc(uc.closeDelay, func() {
		defer uc.wg.Done()
		uc.deleteTicketChannel(bgCtx, channelID)
	})
}

func (uc *UseCases) deleteTicketChannel(ctx context.Context, channelID types.ChannelID) {
	uc.timerMu.Lock()
	delete(uc.timers, channelID)
	uc.timerMu.Unlock()

	if err := uc.gateway.DeleteChannel(ctx, channelID); err != nil {
		// Not retried. The registry entry still goes away so the requester
		// can open a new ticket in the category.
		logging.From(ctx).Error("failed to delete ticket channel",
			logging.ErrAttr(err),
			"channel_id", channelID,
		)
	} else {
		logging.From(ctx).Info("ticket channel deleted", "channel_id", channelID)
	}

	if t := uc.repo.GetByChannel(channelID); t != nil {
		t.Status = ticketmodel.StatusClosed
	}
	uc.repo.RemoveByChannel(channelID)
}

// ExportTranscript exports the channel history on demand and notifies the
// requesting user where the transcript went.
func (uc *UseCases) ExportTranscript(ctx context.Context, guildID types.GuildID, channelID types.ChannelID) (*transcript.Result, error) {
	channel, err := uc.gateway.GetChannel(ctx, channelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up channel for export",
			goerr.V("channel_id", channelID),
		)
	}

	result, err := uc.exporter.Export(ctx, channel)
	if err != nil {
		return nil, err
	}

	if result.Delivered() {
		msg.Notify(ctx, "✅ Transcript saved to log channel.")
	} else {
		msg.Notify(ctx, "✅ Transcript saved to server path: %s", result.Path)
	}
	return result, nil
}
