package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrKeyNotFound       = fmt.Errorf("key not found")
	ErrSessionNotFound   = fmt.Errorf("chat session not found")
	ErrEmptyContent      = fmt.Errorf("message content is empty")
	ErrNotParticipant    = fmt.Errorf("sender is not a participant of the session")
	ErrInvalidUser       = fmt.Errorf("invalid user")
	ErrInvalidInviteLink = fmt.Errorf("invalid invitation link")
	ErrNoActiveChat      = fmt.Errorf("no active chat")
	ErrSuggestionPending = fmt.Errorf("a suggestion is already pending")
	ErrTooManyConflicts  = fmt.Errorf("too many write conflicts")
)
