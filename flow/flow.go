package flow

import (
	"log"
	"sync"
	"time"

	"github.com/Cayt99/CheckUp/dates"
	"github.com/Cayt99/CheckUp/model"
	"github.com/Cayt99/CheckUp/store"
)

// Messenger delivers outbound prompts and summaries to the chat transport.
type Messenger interface {
	// SendPrompt sends a new prompt to the participant's conversation,
	// optionally rendering a menu of selectable options under it.
	SendPrompt(participantID, text string, menu *Menu) error
	// ReplacePrompt edits the most recently shown prompt in place. Used
	// when a menu follows a button click rather than a free-text message.
	ReplacePrompt(participantID, text string, menu *Menu) error
	// SendToChannel posts a message to a channel by ID.
	SendToChannel(channelID, text string) error
}

// Archive records completed sign-ups after delivery. Archiving is best
// effort; the conversation itself never depends on it.
type Archive interface {
	SaveSignup(rec *model.Record) error
}

// Controller routes inbound conversation events to the right step of the
// sign-up flow: free text to the field collector, button clicks to the
// selection router, and triggers submission once the record is complete.
type Controller struct {
	store     store.Store
	resolver  dates.Resolver
	messenger Messenger
	archive   Archive
	channelID string
	now       func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(st store.Store, resolver dates.Resolver, messenger Messenger, archive Archive, intakeChannelID string) *Controller {
	return &Controller{
		store:     st,
		resolver:  resolver,
		messenger: messenger,
		archive:   archive,
		channelID: intakeChannelID,
		now:       time.Now,
		locks:     make(map[string]*sync.Mutex),
	}
}

// lock returns the participant's mutex, creating it on first use. Events
// for the same participant are handled one at a time, in arrival order;
// distinct participants proceed in parallel.
func (c *Controller) lock(participantID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	mu, found := c.locks[participantID]
	if !found {
		mu = &sync.Mutex{}
		c.locks[participantID] = mu
	}
	return mu
}

// HandleStart begins a fresh conversation, discarding any unfinished
// record the participant may have.
func (c *Controller) HandleStart(participantID string) {
	mu := c.lock(participantID)
	mu.Lock()
	defer mu.Unlock()

	c.store.Reset(participantID)
	c.sendPrompt(participantID, "Please enter your full name:", nil)
}

// HandleText routes a free-text message to the field collector. Messages
// from participants with no active conversation are ignored.
func (c *Controller) HandleText(participantID, text string) {
	mu := c.lock(participantID)
	mu.Lock()
	defer mu.Unlock()

	rec, found := c.store.Get(participantID)
	if !found {
		return
	}
	c.collectText(rec, text)
}

// HandleSelection routes a button click to the selection router branch
// picked by its tag. Unknown tags and clicks from participants with no
// active conversation are ignored.
func (c *Controller) HandleSelection(participantID, tag, value string) {
	mu := c.lock(participantID)
	mu.Lock()
	defer mu.Unlock()

	rec, found := c.store.Get(participantID)
	if !found {
		return
	}

	switch tag {
	case TagDate:
		c.selectDate(rec, value)
	case TagTime:
		c.selectTime(rec, value)
	case TagRole:
		c.selectRole(rec, value)
	}
}

func (c *Controller) sendPrompt(participantID, text string, menu *Menu) {
	if err := c.messenger.SendPrompt(participantID, text, menu); err != nil {
		log.Printf("Error sending prompt to %s: %v", participantID, err)
	}
}

func (c *Controller) replacePrompt(participantID, text string, menu *Menu) {
	if err := c.messenger.ReplacePrompt(participantID, text, menu); err != nil {
		log.Printf("Error replacing prompt for %s: %v", participantID, err)
	}
}
