package flow

import (
	"fmt"
	"log"

	"github.com/Cayt99/CheckUp/model"
)

// Summary renders a completed record as the fixed-layout message posted to
// the intake channel.
func Summary(rec *model.Record) string {
	return fmt.Sprintf(
		"New shift sign-up:\nName: %s\nPhone: %s\nDate: %s\nTime: %s\nRole: %s",
		rec.FullName, rec.Phone, rec.Date, rec.Time, rec.Role,
	)
}

// submit delivers the finished record to the intake channel, confirms to
// the participant and drops the record. On delivery failure the record is
// kept so the participant can retry from the role menu instead of losing
// everything they entered.
func (c *Controller) submit(rec *model.Record) {
	if !rec.Complete() {
		log.Printf("Submission triggered for incomplete record of %s (state %s)", rec.UserID, rec.State())
		return
	}

	if err := c.messenger.SendToChannel(c.channelID, Summary(rec)); err != nil {
		log.Printf("Error delivering sign-up for %s: %v", rec.UserID, err)
		c.replacePrompt(rec.UserID, "Your sign-up could not be delivered. Pick your role again to retry.", roleMenu())
		return
	}

	if c.archive != nil {
		if err := c.archive.SaveSignup(rec); err != nil {
			log.Printf("Error archiving sign-up for %s: %v", rec.UserID, err)
		}
	}

	c.replacePrompt(rec.UserID, "Your sign-up has been submitted. Thank you! Use /shift to sign up again.", nil)
	c.store.Remove(rec.UserID)
}
