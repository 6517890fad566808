package bot

import (
	"github.com/Cayt99/CheckUp/handler"
	"github.com/Cayt99/CheckUp/handler/intake"

	"github.com/bwmarrin/discordgo"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(intake.MessageCreate)

	// Free-text collection needs message content from both guild channels
	// and DMs.
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
}
