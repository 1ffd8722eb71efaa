// Package domain contains core concepts of the chat client.
// This file defines the User identity.
// No storage, network, or UI logic should be added here.
package domain

import "strings"

// User is a chat identity. ID never changes once allocated.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser allocates a fresh identity for the given name and email.
func NewUser(name, email string) User {
	return User{ID: NewUserID(), Name: name, Email: email}
}

// NewInvitee allocates the placeholder identity of someone invited to a chat.
// The first user opening the invitation takes over this slot.
func NewInvitee(name, email string) User {
	return User{ID: NewInviteeID(), Name: name, Email: email}
}

// Unclaimed reports whether u is an invitation placeholder nobody joined yet.
func (u User) Unclaimed() bool {
	return strings.HasPrefix(u.ID, inviteeKind+"_")
}
