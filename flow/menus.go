package flow

import (
	"fmt"
	"time"

	"github.com/Cayt99/CheckUp/dates"
)

// Selection tags understood by the selection router. Buttons carry a
// "tag:value" payload; the tag picks the dispatch branch.
const (
	TagDate = "date"
	TagTime = "time"
	TagRole = "role"
)

// ManualDate is the sentinel date value that switches the conversation to
// free-text date entry.
const ManualDate = "manual"

// TimeSlots are the selectable shift time ranges, in display order.
var TimeSlots = []string{
	"07:00-17:00",
	"08:00-18:00",
	"09:00-19:00",
	"10:00-20:00",
	"11:00-21:00",
	"11:30-21:30",
	"12:00-22:00",
}

// Roles are the selectable job roles, in display order.
var Roles = []string{
	"Cashier",
	"Consultant",
}

// Option is one selectable button: a label shown to the participant plus
// the tag and value routed back when it is clicked.
type Option struct {
	Label string
	Tag   string
	Value string
}

// Menu is an ordered set of option rows rendered under a prompt.
type Menu struct {
	Rows [][]Option
}

func dateMenu(now time.Time) *Menu {
	today := dates.Today(now)
	tomorrow := dates.Tomorrow(now)

	return &Menu{
		Rows: [][]Option{
			{
				{Label: fmt.Sprintf("Today (%s)", today), Tag: TagDate, Value: today},
				{Label: fmt.Sprintf("Tomorrow (%s)", tomorrow), Tag: TagDate, Value: tomorrow},
			},
			{
				{Label: "Enter manually", Tag: TagDate, Value: ManualDate},
			},
		},
	}
}

func timeMenu() *Menu {
	menu := &Menu{}

	// Two slots per row, matching the button layout of the sign-up form.
	var row []Option
	for _, slot := range TimeSlots {
		row = append(row, Option{Label: slot, Tag: TagTime, Value: slot})
		if len(row) == 2 {
			menu.Rows = append(menu.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		menu.Rows = append(menu.Rows, row)
	}
	return menu
}

func roleMenu() *Menu {
	var row []Option
	for _, role := range Roles {
		row = append(row, Option{Label: role, Tag: TagRole, Value: role})
	}
	return &Menu{Rows: [][]Option{row}}
}
