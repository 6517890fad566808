package intake

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// interactionUser returns the user behind an interaction, whether it came
// from a guild (Member set) or a direct message (User set).
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// ShiftCommandHandler starts a fresh sign-up conversation. Any unfinished
// record for the user is discarded.
func ShiftCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}

	messenger.TrackChannel(user.ID, i.ChannelID)

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Let's get you signed up for a shift.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})

	ctrl.HandleStart(user.ID)
}

// MessageCreate feeds free-text messages into the field collector. Users
// without an active conversation are ignored by the flow.
func MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	messenger.TrackChannel(m.Author.ID, m.ChannelID)
	ctrl.HandleText(m.Author.ID, m.Content)
}

// SelectionHandler routes a button click into the selection router. The
// click is acknowledged with a deferred update so the flow can edit the
// prompt in place afterwards.
func SelectionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}

	customID := i.MessageComponentData().CustomID
	parts := strings.SplitN(customID, ":", 2)
	if len(parts) != 2 {
		return
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})

	messenger.TrackChannel(user.ID, i.ChannelID)
	messenger.TrackPrompt(user.ID, i.Message.ID)

	ctrl.HandleSelection(user.ID, parts[0], parts[1])
}
