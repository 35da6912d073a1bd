package chat

import (
	"sort"
	"strings"

	"dmchat/errors"
)

// Separator joins the two participant ids inside a ConversationID.
// User ids containing it are rejected upstream, which keeps the mapping
// between an id and its unordered pair bijective.
const Separator = ":"

// ConversationID identifies the single conversation between an unordered
// pair of users. (a,b) and (b,a) map to the same id.
type ConversationID string

// ConversationIDFor derives the canonical id for a pair of users by
// sorting the two ids and joining them. Pure function.
func ConversationIDFor(a, b string) (ConversationID, error) {
	if a == "" || b == "" {
		return "", errors.ErrEmptyUserID
	}
	if strings.Contains(a, Separator) || strings.Contains(b, Separator) {
		return "", errors.ErrInvalidUserID
	}
	if a == b {
		return "", errors.ErrSelfConversation
	}
	pair := []string{a, b}
	sort.Strings(pair)
	return ConversationID(pair[0] + Separator + pair[1]), nil
}

// ParseConversationID checks that a raw string could have been produced by
// ConversationIDFor and returns the participant pair in sorted order.
func ParseConversationID(raw string) (string, string, error) {
	parts := strings.Split(raw, Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || parts[0] >= parts[1] {
		return "", "", errors.ErrMalformedConversation
	}
	return parts[0], parts[1], nil
}

// Participants returns the two user ids of a conversation.
func (c ConversationID) Participants() (string, string, error) {
	return ParseConversationID(string(c))
}
