package db

import (
	"time"

	"github.com/Cayt99/CheckUp/model"

	"github.com/google/uuid"
)

// SaveSignup archives a delivered sign-up.
func SaveSignup(rec *model.Record) error {
	insertSQL := `
	INSERT INTO signups (id, user_id, full_name, phone, shift_date, shift_time, role, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := DB.Exec(insertSQL,
		uuid.New().String(),
		rec.UserID,
		rec.FullName,
		rec.Phone,
		rec.Date,
		rec.Time,
		rec.Role,
		time.Now().Unix(),
	)
	return err
}

// GetUserSignups returns the user's most recent archived sign-ups, newest
// first.
func GetUserSignups(userID string, limit int) ([]*model.Signup, error) {
	querySQL := `
	SELECT id, user_id, full_name, phone, shift_date, shift_time, role, created_at
	FROM signups
	WHERE user_id = ?
	ORDER BY created_at DESC
	LIMIT ?`

	rows, err := DB.Query(querySQL, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signups []*model.Signup
	for rows.Next() {
		s := &model.Signup{}
		err := rows.Scan(&s.ID, &s.UserID, &s.FullName, &s.Phone, &s.Date, &s.Time, &s.Role, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		signups = append(signups, s)
	}
	return signups, rows.Err()
}

// Archive adapts the signups table to the flow layer's Archive interface.
type Archive struct{}

func (Archive) SaveSignup(rec *model.Record) error {
	return SaveSignup(rec)
}
