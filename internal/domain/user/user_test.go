package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(100, "alice", "Alice", "Smith", "en")
	require.NoError(t, err)
	assert.Equal(t, int64(100), u.ID())
	assert.Equal(t, "alice", u.Username())
	assert.False(t, u.IsBanned())
	assert.Equal(t, 0, u.UrgentToday())
	assert.Empty(t, u.LastUrgentDate())
	assert.False(t, u.RegisteredAt().IsZero())

	_, err = NewUser(0, "", "", "", "en")
	require.Error(t, err)

	_, err = NewUser(100, "", "", "", "")
	require.Error(t, err)
}

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		firstName string
		lastName  string
		want      string
	}{
		{"full name", "alice", "Alice", "Smith", "Alice Smith"},
		{"first name only", "alice", "Alice", "", "Alice"},
		{"username fallback", "alice", "", "", "@alice"},
		{"raw id fallback", "", "", "", "100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := NewUser(100, tc.username, tc.firstName, tc.lastName, "en")
			require.NoError(t, err)
			assert.Equal(t, tc.want, u.DisplayName())
		})
	}
}

func TestUser_SyncProfile(t *testing.T) {
	u, err := NewUser(100, "alice", "Alice", "Smith", "en")
	require.NoError(t, err)

	assert.False(t, u.SyncProfile("alice", "Alice", "Smith"), "identical profile must not report change")

	assert.True(t, u.SyncProfile("alice2", "Alice", "Smith"))
	assert.Equal(t, "alice2", u.Username())
}

func TestUser_SetBanned(t *testing.T) {
	u, err := NewUser(100, "alice", "Alice", "", "en")
	require.NoError(t, err)

	u.SetBanned(true)
	assert.True(t, u.IsBanned())
	u.SetBanned(false)
	assert.False(t, u.IsBanned())
}

func TestReconstructUser(t *testing.T) {
	now := time.Now()
	u, err := ReconstructUser(100, "alice", "Alice", "Smith", true, "ru", 2, "2026-08-29", now, now)
	require.NoError(t, err)
	assert.True(t, u.IsBanned())
	assert.Equal(t, "ru", u.Language())
	assert.Equal(t, 2, u.UrgentToday())
	assert.Equal(t, "2026-08-29", u.LastUrgentDate())

	_, err = ReconstructUser(0, "", "", "", false, "en", 0, "", now, now)
	require.Error(t, err)
}

func TestNewRating_ScoreBounds(t *testing.T) {
	for _, score := range []int{1, 3, 5} {
		r, err := NewRating(100, 200, score, "")
		require.NoError(t, err)
		assert.Equal(t, score, r.Score())
	}
	for _, score := range []int{0, 6, -1} {
		_, err := NewRating(100, 200, score, "")
		require.Error(t, err, "score %d must be rejected", score)
	}
}

func TestNewNote(t *testing.T) {
	n, err := NewNote(100, 200, "repeat customer, handle gently")
	require.NoError(t, err)
	assert.Equal(t, int64(100), n.UserID())
	assert.Equal(t, int64(200), n.AdminID())

	_, err = NewNote(100, 200, "")
	require.Error(t, err)
}
