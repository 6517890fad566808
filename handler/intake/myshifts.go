package intake

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Cayt99/CheckUp/db"
	"github.com/Cayt99/CheckUp/model"

	"github.com/bwmarrin/discordgo"
)

const myShiftsLimit = 5

// MyShiftsCommandHandler shows the user their most recent submitted
// sign-ups from the archive, as an ephemeral reply.
func MyShiftsCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		return
	}

	signups, err := db.GetUserSignups(user.ID, myShiftsLimit)
	if err != nil {
		log.Printf("Error getting signups for %s: %v", user.ID, err)
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Could not look up your sign-ups, please try again later.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	content := formatSignups(signups)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func formatSignups(signups []*model.Signup) string {
	if len(signups) == 0 {
		return "You have no submitted sign-ups yet. Use /shift to sign up."
	}

	var b strings.Builder
	b.WriteString("Your recent sign-ups:\n")
	for _, su := range signups {
		submitted := time.Unix(su.CreatedAt, 0).Format("2006-01-02 15:04")
		b.WriteString(fmt.Sprintf("- %s %s as %s (submitted %s)\n", su.Date, su.Time, su.Role, submitted))
	}
	return b.String()
}
