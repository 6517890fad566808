package def

import "github.com/bwmarrin/discordgo"

var MyShiftsCommand = &discordgo.ApplicationCommand{
	Name:        "myshifts",
	Description: "Show your recent shift sign-ups",
}
