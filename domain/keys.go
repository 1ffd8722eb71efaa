package domain

import "fmt"

// DefaultAppPrefix is the <app> part of every persisted key.
const DefaultAppPrefix = "boozbaal-chat"

// UserKey holds the currently logged-in user.
func UserKey(app string) string {
	return fmt.Sprintf("%s-user", app)
}

// TabsKey holds the ordered tab list of a single user.
func TabsKey(app, userID string) string {
	return fmt.Sprintf("%s-tabs-%s", app, userID)
}

// SessionKey holds one chat session record.
func SessionKey(app, chatID string) string {
	return fmt.Sprintf("%s-session-%s", app, chatID)
}

// SessionPrefix matches every session record of the application.
func SessionPrefix(app string) string {
	return fmt.Sprintf("%s-session-", app)
}
