// Package domain contains core concepts of the chat client.
// This file defines ChatSession and ChatTab.
// A session owns its messages; a tab only references a session.
package domain

import "github.com/samber/lo"

// ChatSession is the durable record of a two-party conversation.
// Participants are fixed at creation and messages are append-only.
type ChatSession struct {
	ID           string    `json:"id"`
	Participants []User    `json:"participants"`
	Messages     []Message `json:"messages"`
}

// NewChatSession builds an empty session between the initiator and the invitee.
func NewChatSession(id string, initiator, invitee User) ChatSession {
	return ChatSession{
		ID:           id,
		Participants: []User{initiator, invitee},
		Messages:     []Message{},
	}
}

// HasParticipant reports whether userID takes part in the session.
func (s ChatSession) HasParticipant(userID string) bool {
	return lo.ContainsBy(s.Participants, func(u User) bool {
		return u.ID == userID
	})
}

// OtherParticipant returns the first participant whose id differs from userID.
func (s ChatSession) OtherParticipant(userID string) (User, bool) {
	return lo.Find(s.Participants, func(u User) bool {
		return u.ID != userID
	})
}

// Claim binds user to the unclaimed invitee slot of the session.
// It reports false when user already takes part or no slot is left.
func (s ChatSession) Claim(user User) (ChatSession, bool) {
	if s.HasParticipant(user.ID) {
		return s, false
	}
	_, index, ok := lo.FindIndexOf(s.Participants, func(u User) bool {
		return u.Unclaimed()
	})
	if !ok {
		return s, false
	}
	participants := make([]User, len(s.Participants))
	copy(participants, s.Participants)
	participants[index] = user
	s.Participants = participants
	return s, true
}

// LastMessage returns the most recent message, if any.
func (s ChatSession) LastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// ChatTab is a user-local weak reference to a session.
// Closing a tab never touches the referenced session.
type ChatTab struct {
	ChatID      string `json:"chatId"`
	Participant User   `json:"participant"`
}
