package intake

import (
	"fmt"
	"sync"

	"github.com/Cayt99/CheckUp/flow"

	"github.com/bwmarrin/discordgo"
)

// conversation tracks where a participant's sign-up dialogue is happening
// and which prompt message was shown last, so menus reached via a button
// click can be edited in place.
type conversation struct {
	channelID    string
	lastPromptID string
}

// DiscordMessenger implements flow.Messenger on top of a Discord session.
type DiscordMessenger struct {
	session *discordgo.Session

	mu     sync.Mutex
	convos map[string]*conversation
}

func NewDiscordMessenger(s *discordgo.Session) *DiscordMessenger {
	return &DiscordMessenger{
		session: s,
		convos:  make(map[string]*conversation),
	}
}

// TrackChannel records the channel of the participant's latest inbound
// event as their conversation channel.
func (m *DiscordMessenger) TrackChannel(participantID, channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	convo, found := m.convos[participantID]
	if !found {
		convo = &conversation{}
		m.convos[participantID] = convo
	}
	if convo.channelID != channelID {
		convo.channelID = channelID
		convo.lastPromptID = ""
	}
}

// TrackPrompt records the message a button click came from, making it the
// prompt that ReplacePrompt edits.
func (m *DiscordMessenger) TrackPrompt(participantID, messageID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if convo, found := m.convos[participantID]; found {
		convo.lastPromptID = messageID
	}
}

func (m *DiscordMessenger) SendPrompt(participantID, text string, menu *flow.Menu) error {
	m.mu.Lock()
	convo, found := m.convos[participantID]
	m.mu.Unlock()
	if !found || convo.channelID == "" {
		return fmt.Errorf("no conversation channel known for participant %s", participantID)
	}

	msg, err := m.session.ChannelMessageSendComplex(convo.channelID, &discordgo.MessageSend{
		Content:    text,
		Components: buildComponents(menu),
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	convo.lastPromptID = msg.ID
	m.mu.Unlock()
	return nil
}

func (m *DiscordMessenger) ReplacePrompt(participantID, text string, menu *flow.Menu) error {
	m.mu.Lock()
	convo, found := m.convos[participantID]
	m.mu.Unlock()
	if !found || convo.channelID == "" {
		return fmt.Errorf("no conversation channel known for participant %s", participantID)
	}

	// Without a prompt to edit, fall back to sending a new one.
	if convo.lastPromptID == "" {
		return m.SendPrompt(participantID, text, menu)
	}

	components := buildComponents(menu)
	_, err := m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    convo.channelID,
		ID:         convo.lastPromptID,
		Content:    &text,
		Components: &components,
	})
	return err
}

func (m *DiscordMessenger) SendToChannel(channelID, text string) error {
	_, err := m.session.ChannelMessageSend(channelID, text)
	return err
}

// buildComponents renders a flow menu as rows of buttons with "tag:value"
// custom IDs, the payload format the component router splits on.
func buildComponents(menu *flow.Menu) []discordgo.MessageComponent {
	if menu == nil {
		return []discordgo.MessageComponent{}
	}

	var components []discordgo.MessageComponent
	for _, row := range menu.Rows {
		var buttons []discordgo.MessageComponent
		for _, opt := range row {
			buttons = append(buttons, discordgo.Button{
				Label:    opt.Label,
				Style:    discordgo.PrimaryButton,
				CustomID: fmt.Sprintf("%s:%s", opt.Tag, opt.Value),
			})
		}
		components = append(components, discordgo.ActionsRow{Components: buttons})
	}
	return components
}
