package flow

import (
	"fmt"

	"github.com/Cayt99/CheckUp/model"
)

// selectDate handles a date shortcut click. The manual sentinel switches
// the conversation to free-text date entry; any other value is already a
// canonical date.
func (c *Controller) selectDate(rec *model.Record, value string) {
	if value == ManualDate {
		rec.AwaitingManualDate = true
		c.replacePrompt(rec.UserID, "Enter the date in any format (for example, 'december 25' or '12 25'):", nil)
		return
	}

	rec.Date = value
	rec.AwaitingManualDate = false
	c.replacePrompt(rec.UserID, fmt.Sprintf("You picked %s. Now choose a time:", value), timeMenu())
}

func (c *Controller) selectTime(rec *model.Record, value string) {
	rec.Time = value
	c.replacePrompt(rec.UserID, "Choose a role:", roleMenu())
}

// selectRole stores the final field and immediately submits the record.
func (c *Controller) selectRole(rec *model.Record, value string) {
	rec.Role = value
	c.submit(rec)
}
