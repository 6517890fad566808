package model

// Signup is one delivered sign-up, archived in the signups table.
type Signup struct {
	ID        string
	UserID    string
	FullName  string
	Phone     string
	Date      string
	Time      string
	Role      string
	CreatedAt int64
}
