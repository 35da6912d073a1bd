package chat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dmchat/errors"
)

func TestConversationIDFor_Is_Symmetric(t *testing.T) {
	req := require.New(t)

	idAB, err := ConversationIDFor("alice", "bob")
	req.NoError(err)
	idBA, err := ConversationIDFor("bob", "alice")
	req.NoError(err)

	// (a,b) and (b,a) map to the same conversation
	req.Equal(idAB, idBA)
	req.Equal(ConversationID("alice:bob"), idAB)
}

func TestConversationIDFor_Rejects_Self_Conversation(t *testing.T) {
	req := require.New(t)

	_, err := ConversationIDFor("alice", "alice")

	req.ErrorIs(err, errors.ErrSelfConversation)
	req.ErrorIs(err, errors.ErrValidation)
}

func TestConversationIDFor_Rejects_Bad_Identifiers(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected error
	}{
		{name: "Empty first id", a: "", b: "bob", expected: errors.ErrEmptyUserID},
		{name: "Empty second id", a: "alice", b: "", expected: errors.ErrEmptyUserID},
		{name: "Separator inside id", a: "ali:ce", b: "bob", expected: errors.ErrInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConversationIDFor(tt.a, tt.b)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParseConversationID_Roundtrip(t *testing.T) {
	req := require.New(t)

	id, err := ConversationIDFor("carol", "bob")
	req.NoError(err)

	first, second, err := id.Participants()
	req.NoError(err)
	req.Equal("bob", first)
	req.Equal("carol", second)
}

func TestParseConversationID_Rejects_Malformed_Input(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "No separator", raw: "alicebob"},
		{name: "Empty side", raw: "alice:"},
		{name: "Too many parts", raw: "a:b:c"},
		{name: "Unsorted pair", raw: "bob:alice"},
		{name: "Identical pair", raw: "alice:alice"},
		{name: "Empty string", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseConversationID(tt.raw)
			require.ErrorIs(t, err, errors.ErrNotFound)
		})
	}
}
