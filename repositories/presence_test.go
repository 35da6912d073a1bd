package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPresenceRepository_MarkOnline_Then_Snapshot(t *testing.T) {
	req := require.New(t)
	repository := NewPresenceRepository(openTestDB(t))
	now := time.Now().UTC().Truncate(time.Millisecond)

	req.NoError(repository.MarkOnline("alice", now))

	snapshot, err := repository.Snapshot()
	req.NoError(err)
	req.Len(snapshot, 1)
	req.Equal("alice", snapshot[0].UserID)
	req.True(snapshot[0].Online)
	req.Equal(now, snapshot[0].LastActiveAt)
}

func TestPresenceRepository_MarkOffline_Preserves_Entry(t *testing.T) {
	req := require.New(t)
	repository := NewPresenceRepository(openTestDB(t))
	loginAt := time.Now().UTC().Truncate(time.Millisecond)
	logoutAt := loginAt.Add(time.Minute)

	req.NoError(repository.MarkOnline("alice", loginAt))
	req.NoError(repository.MarkOffline("alice", logoutAt))

	// Logging out flips the flag but keeps the last-seen timestamp around
	snapshot, err := repository.Snapshot()
	req.NoError(err)
	req.Len(snapshot, 1)
	req.False(snapshot[0].Online)
	req.Equal(logoutAt, snapshot[0].LastActiveAt)
}

func TestPresenceRepository_MarkOffline_Unknown_User_Is_A_NoOp(t *testing.T) {
	req := require.New(t)
	repository := NewPresenceRepository(openTestDB(t))

	req.NoError(repository.MarkOffline("ghost", time.Now()))

	snapshot, err := repository.Snapshot()
	req.NoError(err)
	req.Empty(snapshot)
}

func TestPresenceRepository_Touch_Refreshes_Online_Users_Only(t *testing.T) {
	req := require.New(t)
	repository := NewPresenceRepository(openTestDB(t))
	start := time.Now().UTC().Truncate(time.Millisecond)
	later := start.Add(30 * time.Second)

	req.NoError(repository.MarkOnline("alice", start))
	req.NoError(repository.MarkOnline("bob", start))
	req.NoError(repository.MarkOffline("bob", start))

	req.NoError(repository.Touch("alice", later))
	req.NoError(repository.Touch("bob", later))

	snapshot, err := repository.Snapshot()
	req.NoError(err)
	req.Len(snapshot, 2)

	// alice is online, so touching her moved the clock
	req.Equal("alice", snapshot[0].UserID)
	req.Equal(later, snapshot[0].LastActiveAt)

	// bob is offline, so the touch left him alone
	req.Equal("bob", snapshot[1].UserID)
	req.Equal(start, snapshot[1].LastActiveAt)
}

func TestPresenceRepository_Snapshot_Is_Sorted_By_User(t *testing.T) {
	req := require.New(t)
	repository := NewPresenceRepository(openTestDB(t))
	now := time.Now().UTC()

	for _, userID := range []string{"zoe", "alice", "mallory", "bob"} {
		req.NoError(repository.MarkOnline(userID, now))
	}

	snapshot, err := repository.Snapshot()
	req.NoError(err)
	req.Len(snapshot, 4)
	req.Equal("alice", snapshot[0].UserID)
	req.Equal("bob", snapshot[1].UserID)
	req.Equal("mallory", snapshot[2].UserID)
	req.Equal("zoe", snapshot[3].UserID)
}

func TestPresenceRepository_MarkOnline_Again_Overwrites(t *testing.T) {
	req := require.New(t)
	repository := NewPresenceRepository(openTestDB(t))
	first := time.Now().UTC().Truncate(time.Millisecond)
	second := first.Add(time.Hour)

	req.NoError(repository.MarkOnline("alice", first))
	req.NoError(repository.MarkOffline("alice", first))
	req.NoError(repository.MarkOnline("alice", second))

	snapshot, err := repository.Snapshot()
	req.NoError(err)
	req.Len(snapshot, 1)
	req.True(snapshot[0].Online)
	req.Equal(second, snapshot[0].LastActiveAt)
}
