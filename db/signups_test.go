package db

import (
	"testing"

	"github.com/Cayt99/CheckUp/model"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	open(":memory:")
	t.Cleanup(func() {
		DB.Close()
		DB = nil
	})
}

func TestSaveAndGetSignups(t *testing.T) {
	setupTestDB(t)

	rec := &model.Record{
		UserID:   "u1",
		FullName: "Jane Doe",
		Phone:    "+1-555-0100",
		Date:     "2024-06-01",
		Time:     "09:00-19:00",
		Role:     "Consultant",
	}
	require.NoError(t, SaveSignup(rec))

	signups, err := GetUserSignups("u1", 5)
	require.NoError(t, err)
	require.Len(t, signups, 1)

	got := signups[0]
	require.NotEmpty(t, got.ID)
	require.Equal(t, "u1", got.UserID)
	require.Equal(t, "Jane Doe", got.FullName)
	require.Equal(t, "+1-555-0100", got.Phone)
	require.Equal(t, "2024-06-01", got.Date)
	require.Equal(t, "09:00-19:00", got.Time)
	require.Equal(t, "Consultant", got.Role)
	require.NotZero(t, got.CreatedAt)
}

func TestGetUserSignupsScopedToUser(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SaveSignup(&model.Record{
		UserID: "u1", FullName: "Jane Doe", Phone: "1", Date: "2024-06-01", Time: "09:00-19:00", Role: "Consultant",
	}))
	require.NoError(t, SaveSignup(&model.Record{
		UserID: "u2", FullName: "John Roe", Phone: "2", Date: "2024-06-02", Time: "07:00-17:00", Role: "Cashier",
	}))

	signups, err := GetUserSignups("u1", 5)
	require.NoError(t, err)
	require.Len(t, signups, 1)
	require.Equal(t, "Jane Doe", signups[0].FullName)

	signups, err = GetUserSignups("u3", 5)
	require.NoError(t, err)
	require.Empty(t, signups)
}

func TestGetUserSignupsLimit(t *testing.T) {
	setupTestDB(t)

	for i := 0; i < 8; i++ {
		require.NoError(t, SaveSignup(&model.Record{
			UserID: "u1", FullName: "Jane Doe", Phone: "1", Date: "2024-06-01", Time: "09:00-19:00", Role: "Cashier",
		}))
	}

	signups, err := GetUserSignups("u1", 5)
	require.NoError(t, err)
	require.Len(t, signups, 5)
}
