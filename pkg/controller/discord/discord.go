// Package discord receives gateway events from the Discord session and
// dispatches them to the ticket use cases. It owns the interaction reply
// protocol: the first notice answers the interaction, later ones become
// followups.
package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pixel-node/helpdesk/pkg/domain/interfaces"
	"github.com/pixel-node/helpdesk/pkg/domain/model/chat"
	"github.com/pixel-node/helpdesk/pkg/domain/model/errs"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
	svc "github.com/pixel-node/helpdesk/pkg/service/discord"
	"github.com/pixel-node/helpdesk/pkg/utils/logging"
	"github.com/pixel-node/helpdesk/pkg/utils/msg"
	"github.com/pixel-node/helpdesk/pkg/utils/request_id"
)

// panelCommand posts the category-selection panel into the channel it is
// typed in. Staff only by convention; the panel itself is harmless.
const panelCommand = "!ticketpanel"

// SessionAPI is the slice of the Discord session the controller replies
// through.
type SessionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Controller struct {
	api SessionAPI
	uc  interfaces.TicketUsecases
}

func New(api SessionAPI, uc interfaces.TicketUsecases) *Controller {
	return &Controller{
		api: api,
		uc:  uc,
	}
}

// Register attaches the controller's handlers to the session.
func (x *Controller) Register(session *discordgo.Session) {
	session.AddHandler(x.OnReady)
	session.AddHandler(x.OnMessageCreate)
	session.AddHandler(x.OnInteractionCreate)
}

func (x *Controller) OnReady(_ *discordgo.Session, event *discordgo.Ready) {
	logging.Default().Info("discord gateway ready",
		"user", event.User.String(),
		"guilds", len(event.Guilds),
	)
}

func (x *Controller) OnMessageCreate(_ *discordgo.Session, event *discordgo.MessageCreate) {
	if event.Author == nil || event.Author.Bot {
		return
	}
	if strings.TrimSpace(event.Content) != panelCommand {
		return
	}

	ctx := newHandlerContext()
	if _, err := x.api.ChannelMessageSendComplex(event.ChannelID, svc.PanelMessage()); err != nil {
		errs.Handle(ctx, goerr.Wrap(err, "failed to post ticket panel",
			goerr.V("channel_id", event.ChannelID),
		))
		return
	}

	if _, err := x.api.ChannelMessageSendComplex(event.ChannelID, &discordgo.MessageSend{
		Content:   "✅ Ticket panel posted.",
		Reference: event.Reference(),
	}); err != nil {
		logging.From(ctx).Warn("failed to acknowledge panel command", logging.ErrAttr(err))
	}

	logging.From(ctx).Info("ticket panel posted",
		"channel_id", event.ChannelID,
		"author", event.Author.ID,
	)
}

func (x *Controller) OnInteractionCreate(_ *discordgo.Session, event *discordgo.InteractionCreate) {
	if event.Type != discordgo.InteractionMessageComponent {
		return
	}

	actor := interactionUser(event)
	if actor == nil {
		return
	}

	ctx := newHandlerContext()
	ctx = logging.With(ctx, logging.From(ctx).With(
		"guild_id", event.GuildID,
		"channel_id", event.ChannelID,
		"user_id", actor.ID,
	))

	rsp := &responder{api: x.api, interaction: event.Interaction}
	ctx = msg.With(ctx, func(ctx context.Context, text string) {
		if err := rsp.Reply(ctx, text, true); err != nil {
			logging.From(ctx).Warn("failed to deliver notice", logging.ErrAttr(err))
		}
	})

	data := event.MessageComponentData()

	var err error
	switch data.CustomID {
	case svc.SelectTicketCategory:
		err = x.handleCreateTicket(ctx, event, rsp, actor, data.Values)
	case svc.ActionCloseTicket:
		err = x.handleCloseTicket(ctx, event, rsp, actor)
	case svc.ActionTranscript:
		err = x.handleTranscript(ctx, event, rsp)
	default:
		return
	}

	if err != nil {
		errs.Handle(ctx, err)
		if rerr := rsp.Reply(ctx, "❌ Something went wrong while handling your request.", true); rerr != nil {
			logging.From(ctx).Warn("failed to send error reply", logging.ErrAttr(rerr))
		}
	}
}

func (x *Controller) handleCreateTicket(ctx context.Context, event *discordgo.InteractionCreate, rsp *responder, actor *discordgo.User, values []string) error {
	if len(values) == 0 {
		return goerr.New("category selection without a value",
			goerr.T(errs.TagValidation),
		)
	}

	requester := chat.User{
		ID:   types.UserID(actor.ID),
		Name: actor.Username,
	}

	ch, err := x.uc.CreateTicket(ctx, types.GuildID(event.GuildID), requester, types.Category(values[0]))
	switch {
	case errors.Is(err, errs.ErrTicketAlreadyOpen):
		return rsp.Reply(ctx, "❗ You already have an open ticket in this category.", true)
	case err != nil:
		return err
	}

	return rsp.Reply(ctx, fmt.Sprintf("✅ Your ticket has been created: <#%s>", ch.ID), true)
}

func (x *Controller) handleCloseTicket(ctx context.Context, event *discordgo.InteractionCreate, rsp *responder, actor *discordgo.User) error {
	guildID := types.GuildID(event.GuildID)
	channelID := types.ChannelID(event.ChannelID)

	ok, err := x.uc.AuthorizeClose(ctx, guildID, types.UserID(actor.ID), channelID)
	if err != nil {
		return err
	}
	if !ok {
		return rsp.Reply(ctx, "❌ You do not have permission to close this ticket.", true)
	}

	// Visible to the whole channel so everyone knows it is going away.
	if err := rsp.Reply(ctx, "🕓 Closing ticket in 5 seconds...", false); err != nil {
		logging.From(ctx).Warn("failed to announce closing", logging.ErrAttr(err))
	}

	return x.uc.CloseTicket(ctx, guildID, channelID, true)
}

func (x *Controller) handleTranscript(ctx context.Context, event *discordgo.InteractionCreate, rsp *responder) error {
	if err := rsp.Reply(ctx, "📄 Saving transcript...", true); err != nil {
		logging.From(ctx).Warn("failed to acknowledge transcript request", logging.ErrAttr(err))
	}

	if _, err := x.uc.ExportTranscript(ctx, types.GuildID(event.GuildID), types.ChannelID(event.ChannelID)); err != nil {
		errs.Handle(ctx, err)
		return rsp.Reply(ctx, "❌ Failed to save transcript.", true)
	}

	return nil
}

// responder answers an interaction exactly once and turns every later reply
// into a followup message.
type responder struct {
	api         SessionAPI
	interaction *discordgo.Interaction

	mu      sync.Mutex
	replied bool
}

func (x *responder) Reply(ctx context.Context, content string, ephemeral bool) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	if !x.replied {
		x.replied = true
		if err := x.api.InteractionRespond(x.interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Flags:   flags,
			},
		}); err != nil {
			return goerr.Wrap(err, "failed to respond to interaction",
				goerr.T(errs.TagExternal),
			)
		}
		return nil
	}

	if _, err := x.api.FollowupMessageCreate(x.interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   flags,
	}); err != nil {
		return goerr.Wrap(err, "failed to send followup",
			goerr.T(errs.TagExternal),
		)
	}
	return nil
}

func interactionUser(event *discordgo.InteractionCreate) *discordgo.User {
	if event.Member != nil && event.Member.User != nil {
		return event.Member.User
	}
	return event.User
}

func newHandlerContext() context.Context {
	ctx, id := request_id.Generate(context.Background())
	return logging.With(ctx, logging.Default().With("request_id", id))
}
