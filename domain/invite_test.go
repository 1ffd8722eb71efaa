package domain

import (
	"boozbaal-chat/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInviteLink_RoundTrip(t *testing.T) {
	req := require.New(t)
	chatID := NewChatID()

	link := InviteLink("http://localhost:5173/", chatID)
	req.Equal("http://localhost:5173/#/chat/"+chatID, link)

	parsed, err := ParseInviteLink(link)
	req.NoError(err)
	req.Equal(chatID, parsed)
}

func TestInviteLink_Replaces_Existing_Fragment(t *testing.T) {
	req := require.New(t)
	link := InviteLink("https://chat.example.com/app/#/chat/old", "new")
	req.Equal("https://chat.example.com/app/#/chat/new", link)
}

func TestParseInviteLink(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "full url", input: "https://chat.example.com/#/chat/chat_1_abc", expected: "chat_1_abc"},
		{name: "fragment only", input: "#/chat/chat_1_abc", expected: "chat_1_abc"},
		{name: "path route", input: "/chat/chat_1_abc", expected: "chat_1_abc"},
		{name: "bare id", input: "  chat_1_abc ", expected: "chat_1_abc"},
		{name: "trailing slash", input: "#/chat/chat_1_abc/", expected: "chat_1_abc"},
		{name: "empty", input: "   ", err: errors.ErrInvalidInviteLink},
		{name: "no chat route", input: "https://chat.example.com/#/", err: errors.ErrInvalidInviteLink},
		{name: "empty chat id", input: "#/chat/", err: errors.ErrInvalidInviteLink},
		{name: "nested path", input: "#/chat/a/b", err: errors.ErrInvalidInviteLink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			chatID, err := ParseInviteLink(tt.input)
			if tt.err != nil {
				req.ErrorIs(err, tt.err)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, chatID)
		})
	}
}
