// Package domain contains core concepts of the chat client.
// This file defines Message and related rules.
// Messages are immutable once appended to a session.
package domain

import (
	"strings"
	"time"
)

// Message represents an immutable chat entry.
// Timestamp is expressed in milliseconds since the Unix epoch.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// At returns the creation time of the message in local time.
func (m Message) At() time.Time {
	return time.UnixMilli(m.Timestamp)
}

// NormalizeContent trims surrounding whitespace.
// An empty result means the content must be rejected.
func NormalizeContent(content string) string {
	return strings.TrimSpace(content)
}
