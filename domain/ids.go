package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	suffixLength = 7
	inviteeKind  = "invite"
)

// NewUserID returns an identifier shaped like user_<unixms>_<suffix>.
func NewUserID() string { return newID("user") }

// NewChatID returns an identifier shaped like chat_<unixms>_<suffix>.
func NewChatID() string { return newID("chat") }

// NewInviteeID returns an identifier shaped like invite_<unixms>_<suffix>.
// It marks a participant slot that no device has claimed yet.
func NewInviteeID() string { return newID(inviteeKind) }

// NewMessageID returns an identifier shaped like msg_<unixms>_<suffix>.
func NewMessageID() string { return newID("msg") }

// newID combines the current time with a random suffix taken from a v4 UUID,
// which keeps ids unique when several are allocated within the same millisecond.
func newID(kind string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
	return fmt.Sprintf("%s_%d_%s", kind, time.Now().UnixMilli(), suffix)
}
