package chat

import "time"

// Presence is the connection state of one user. An entry is created on
// first login and never deleted, so LastActiveAt still answers
// "last seen" after a logout.
type Presence struct {
	UserID       string
	Online       bool
	LastActiveAt time.Time
}
