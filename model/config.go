package model

// Config mirrors the top-level structure of config.yaml.
type Config struct {
	Token    string   `mapstructure:"TOKEN"`
	Commands Commands `mapstructure:"commands"`
	ShiftBot ShiftBot `mapstructure:"shiftBot"`
}

// ShiftBot corresponds to the "shiftBot" section.
type ShiftBot struct {
	// IntakeChannelID is the channel that receives completed sign-ups.
	IntakeChannelID string `mapstructure:"intake_channel_id"`
}

// Commands corresponds to the "commands" section.
type Commands struct {
	Allowguils []string `mapstructure:"allowguils"`
}
