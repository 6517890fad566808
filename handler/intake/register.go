package intake

import (
	"github.com/Cayt99/CheckUp/config"
	"github.com/Cayt99/CheckUp/dates"
	"github.com/Cayt99/CheckUp/db"
	"github.com/Cayt99/CheckUp/flow"
	"github.com/Cayt99/CheckUp/handler"
	"github.com/Cayt99/CheckUp/store"

	"github.com/bwmarrin/discordgo"
)

var (
	ctrl      *flow.Controller
	messenger *DiscordMessenger
)

// Setup wires the sign-up conversation flow to a Discord session and
// registers all intake handlers.
func Setup(s *discordgo.Session) {
	messenger = NewDiscordMessenger(s)
	ctrl = flow.New(
		store.NewMemoryStore(),
		dates.NewWhenResolver(),
		messenger,
		db.Archive{},
		config.Cfg.ShiftBot.IntakeChannelID,
	)

	handler.AddCommandHandler("shift", ShiftCommandHandler)
	handler.AddCommandHandler("myshifts", MyShiftsCommandHandler)
	handler.AddComponentHandler(flow.TagDate, SelectionHandler)
	handler.AddComponentHandler(flow.TagTime, SelectionHandler)
	handler.AddComponentHandler(flow.TagRole, SelectionHandler)
}
