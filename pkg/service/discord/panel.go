package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pixel-node/helpdesk/pkg/domain/types"
)

// Component custom IDs. These are the interaction vocabulary between the
// panel UI and the controller.
const (
	SelectTicketCategory = "select_ticket_category"
	ActionCloseTicket    = "close_ticket"
	ActionTranscript     = "transcript"
)

const (
	panelColor   = 0x00AEFF
	welcomeColor = 0x2ECC71
)

// PanelMessage builds the persistent category-selection panel.
func PanelMessage() *discordgo.MessageSend {
	options := make([]discordgo.SelectMenuOption, 0, len(types.Categories()))
	for _, category := range types.Categories() {
		options = append(options, discordgo.SelectMenuOption{
			Label:       category.Label(),
			Description: category.Description(),
			Value:       category.String(),
			Emoji:       &discordgo.ComponentEmoji{Name: category.Emoji()},
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Pixel Node - Support Tickets",
		Description: "Need help? Create a support ticket by selecting a category from the menu below.\n\nOur team will respond as soon as possible.",
		Color:       panelColor,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.StringSelectMenu,
						CustomID:    SelectTicketCategory,
						Placeholder: "🧾 Select a support category",
						Options:     options,
					},
				},
			},
		},
	}
}

// WelcomeMessage builds the initial message of a ticket channel: it mentions
// the requester and the staff role and attaches the close/export controls.
func WelcomeMessage(requester types.UserID, staffRole types.RoleID, category types.Category) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title: "🎫 New Ticket",
		Description: fmt.Sprintf("Hello <@%s>, a staff member will be with you shortly.\n\n**Category:** %s",
			requester, category.Title()),
		Color:     welcomeColor,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s> <@&%s>", requester, staffRole),
		Embeds:  []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						CustomID: ActionCloseTicket,
						Label:    "🔒 Close Ticket",
						Style:    discordgo.DangerButton,
					},
					discordgo.Button{
						CustomID: ActionTranscript,
						Label:    "📄 Save Transcript",
						Style:    discordgo.SecondaryButton,
					},
				},
			},
		},
	}
}
