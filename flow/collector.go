package flow

import (
	"fmt"

	"github.com/Cayt99/CheckUp/model"
)

// collectText advances the record by one free-text field. Name and phone
// are taken verbatim; once the flow is in manual-date mode the text is
// consumed exclusively as a date expression until one parses.
func (c *Controller) collectText(rec *model.Record, text string) {
	if rec.AwaitingManualDate {
		c.collectManualDate(rec, text)
		return
	}

	switch {
	case rec.FullName == "":
		rec.FullName = text
		c.sendPrompt(rec.UserID, "Please enter your phone number:", nil)
	case rec.Phone == "":
		rec.Phone = text
		c.sendPrompt(rec.UserID, "Choose a date:", dateMenu(c.now()))
	}
	// Date, time and role come from selections or manual-date mode, so any
	// other free text is left for the transport to ignore.
}

func (c *Controller) collectManualDate(rec *model.Record, text string) {
	date, ok := c.resolver.Resolve(text)
	if !ok {
		c.sendPrompt(rec.UserID, "Could not recognize that date. Please try again (for example, 'december 25' or '12 25').", nil)
		return
	}

	rec.Date = date
	rec.AwaitingManualDate = false
	c.sendPrompt(rec.UserID, fmt.Sprintf("You picked %s. Now choose a time:", date), timeMenu())
}
