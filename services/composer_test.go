package services

import (
	"boozbaal-chat/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposer_Draft(t *testing.T) {
	req := require.New(t)
	composer := NewComposer()
	composer.Mount("c1")

	composer.SetDraft("hello")
	composer.Append(" 😀")
	req.Equal("hello 😀", composer.Draft())

	composer.Clear()
	req.Empty(composer.Draft())
}

func TestComposer_Suggestion_Completes_On_Same_View(t *testing.T) {
	req := require.New(t)
	composer := NewComposer()
	composer.Mount("c1")

	// When a suggestion is requested
	ticket, err := composer.BeginSuggestion()
	req.NoError(err)
	req.Equal("c1", ticket.ChatID)
	req.True(composer.Pending())

	// Then a second request is refused while the first is in flight
	_, err = composer.BeginSuggestion()
	req.ErrorIs(err, errors.ErrSuggestionPending)

	// And the answer lands in the draft, re-enabling the control
	req.True(composer.CompleteSuggestion(ticket, "Sure!"))
	req.Equal("Sure!", composer.Draft())
	req.False(composer.Pending())
}

func TestComposer_Suggestion_Dropped_After_Remount(t *testing.T) {
	req := require.New(t)
	composer := NewComposer()
	composer.Mount("c1")
	ticket, err := composer.BeginSuggestion()
	req.NoError(err)

	// Given the user switched to another chat and back
	composer.Mount("c2")
	composer.Mount("c1")
	composer.SetDraft("typed meanwhile")

	// When the old answer arrives
	applied := composer.CompleteSuggestion(ticket, "Sure!")

	// Then it is dropped
	req.False(applied)
	req.Equal("typed meanwhile", composer.Draft())
	req.False(composer.Pending())
}
