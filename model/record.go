package model

import "time"

// Conversation states, derived from which record fields are filled.
// The state is never stored; State() is the single derivation rule.
const (
	StateAwaitingName  = "awaiting_name"
	StateAwaitingPhone = "awaiting_phone"
	StateAwaitingDate  = "awaiting_date"
	StateAwaitingTime  = "awaiting_time"
	StateAwaitingRole  = "awaiting_role"
	StateComplete      = "complete"
)

// Record holds the fields collected so far for one participant's shift
// sign-up conversation. Fields are filled in a fixed order: name, phone,
// date, time, role.
type Record struct {
	UserID   string
	FullName string
	Phone    string
	Date     string // canonical YYYY-MM-DD
	Time     string
	Role     string

	// AwaitingManualDate is true while the next free-text message must be
	// interpreted as a date expression. Only valid after phone is filled
	// and before date is filled.
	AwaitingManualDate bool

	CreatedAt time.Time
}

// Complete reports whether all five data fields have been collected.
func (r *Record) Complete() bool {
	return r.FullName != "" && r.Phone != "" && r.Date != "" && r.Time != "" && r.Role != ""
}

// State derives the conversation state from field presence.
func (r *Record) State() string {
	switch {
	case r.FullName == "":
		return StateAwaitingName
	case r.Phone == "":
		return StateAwaitingPhone
	case r.Date == "":
		return StateAwaitingDate
	case r.Time == "":
		return StateAwaitingTime
	case r.Role == "":
		return StateAwaitingRole
	default:
		return StateComplete
	}
}
