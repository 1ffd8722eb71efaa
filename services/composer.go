package services

import (
	"boozbaal-chat/errors"
	"sync"
)

// Ticket identifies the view a suggestion was requested from.
type Ticket struct {
	ChatID     string
	generation uint64
}

// Composer is the draft of the chat view currently mounted.
// Mounting another chat disposes the previous draft: a suggestion that
// completes afterwards is dropped instead of leaking into the new view.
type Composer struct {
	mu         sync.Mutex
	chatID     string
	draft      string
	pending    bool
	generation uint64
}

func NewComposer() *Composer {
	return &Composer{}
}

// Mount attaches the composer to chatID with an empty draft.
func (c *Composer) Mount(chatID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chatID = chatID
	c.draft = ""
	c.pending = false
	c.generation++
}

func (c *Composer) ChatID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatID
}

func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Composer) SetDraft(draft string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = draft
}

func (c *Composer) Append(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft += text
}

func (c *Composer) Clear() {
	c.SetDraft("")
}

// Pending reports whether the suggestion control is disabled.
func (c *Composer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// BeginSuggestion disables the suggestion control of the mounted view.
func (c *Composer) BeginSuggestion() (Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return Ticket{}, errors.ErrSuggestionPending
	}
	c.pending = true
	return Ticket{ChatID: c.chatID, generation: c.generation}, nil
}

// CompleteSuggestion writes text into the draft when the view that asked for
// it is still mounted, and re-enables its control. It reports whether the
// draft was written.
func (c *Composer) CompleteSuggestion(ticket Ticket, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ticket.generation != c.generation {
		return false
	}
	c.pending = false
	c.draft = text
	return true
}
