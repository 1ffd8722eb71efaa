package domain

import (
	"boozbaal-chat/errors"
	"fmt"
	"net/url"
	"strings"
)

const chatRoute = "/chat/"

// InviteLink builds the shareable link of a chat: <base>#/chat/<chatId>.
// Any fragment already present on base is replaced.
func InviteLink(base, chatID string) string {
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	return fmt.Sprintf("%s#%s%s", base, chatRoute, url.PathEscape(chatID))
}

// ParseInviteLink extracts the chat id carried by an invitation link.
// It accepts a full URL, a "#/chat/<id>" fragment, a "/chat/<id>" path
// or a bare chat id.
func ParseInviteLink(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.ErrInvalidInviteLink
	}
	if !strings.ContainsAny(raw, "/#:") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidInviteLink, err)
	}

	route := u.Fragment
	if route == "" {
		route = u.Path
	}
	i := strings.LastIndex(route, chatRoute)
	if i < 0 {
		return "", errors.ErrInvalidInviteLink
	}
	chatID := strings.Trim(route[i+len(chatRoute):], "/")
	if chatID == "" || strings.Contains(chatID, "/") {
		return "", errors.ErrInvalidInviteLink
	}
	return chatID, nil
}
