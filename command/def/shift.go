package def

import "github.com/bwmarrin/discordgo"

var ShiftCommand = &discordgo.ApplicationCommand{
	Name:        "shift",
	Description: "Sign up for a shift",
}
