package command

import (
	"github.com/Cayt99/CheckUp/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.ShiftCommand,
	def.MyShiftsCommand,
}
