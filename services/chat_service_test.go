package services

import (
	"boozbaal-chat/ai"
	"boozbaal-chat/domain"
	"boozbaal-chat/errors"
	"boozbaal-chat/identity"
	"boozbaal-chat/mocks"
	"boozbaal-chat/repositories"
	"boozbaal-chat/storage"
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testApp    = "test-chat"
	inviteBase = "http://localhost:5173/"
)

var alice = domain.User{ID: "user_1_aaaaaaa", Name: "Alice", Email: "alice@example.com"}

type window struct {
	service  *ChatService
	sessions *repositories.SessionRepository
	tabs     *repositories.TabRepository
}

// newWindow builds the chat service of user over a shared store,
// the way every window of the application is wired.
func newWindow(store storage.Store, user domain.User, suggester ai.Suggester) window {
	log := logs.GetLoggerFromLevel(slog.LevelError)
	sessions := repositories.NewSessionRepository(store, testApp, log)
	tabs := repositories.NewTabRepository(store, testApp, user, sessions, log)
	return window{
		service:  NewChatService(user, sessions, tabs, suggester, inviteBase, log),
		sessions: sessions,
		tabs:     tabs,
	}
}

func setupStore(t *testing.T) storage.Store {
	db, err := storage.Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewBadgerStore(db, logs.GetLoggerFromLevel(slog.LevelError))
}

func TestChatService_CreateChat(t *testing.T) {
	req := require.New(t)
	w := newWindow(setupStore(t), alice, ai.Unavailable{})

	// When
	chatID, link, err := w.service.CreateChat("Bob", "bob@example.com")

	// Then the chat is open, active and shareable
	req.NoError(err)
	req.Equal(inviteBase+"#/chat/"+chatID, link)
	active, ok := w.service.Active()
	req.True(ok)
	req.Equal(chatID, active)
	req.Equal(chatID, w.service.Composer().ChatID())

	tabs := w.service.Tabs()
	req.Len(tabs, 1)
	req.Equal("Bob", tabs[0].Participant.Name)

	session, ok := w.service.ActiveSession()
	req.True(ok)
	req.True(session.HasParticipant(alice.ID))
	req.True(session.HasParticipant(tabs[0].Participant.ID))
}

func TestChatService_CreateChat_Invalid_Invitee(t *testing.T) {
	req := require.New(t)
	w := newWindow(setupStore(t), alice, ai.Unavailable{})

	_, _, err := w.service.CreateChat("Bob", "")

	req.ErrorIs(err, errors.ErrInvalidUser)
	req.Empty(w.service.Tabs())
}

func TestChatService_Invite_Flow_Between_Windows(t *testing.T) {
	req := require.New(t)
	store := setupStore(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	first := newWindow(store, alice, ai.Unavailable{})

	// Given Alice invites Bob
	chatID, link, err := first.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)
	_, err = first.service.Send("hi Bob")
	req.NoError(err)

	// And Bob logs in on another device with a fresh identity
	login := NewLoginService(repositories.NewUserRepository(store, testApp, log), log)
	bob, err := login.Login("Bob", "bob@example.com")
	req.NoError(err)
	req.NotEqual(first.service.Tabs()[0].Participant.ID, bob.ID)

	// When Bob opens the link in another window
	second := newWindow(store, bob, ai.Unavailable{})
	routed, err := second.service.Navigate(link)

	// Then Bob gets a tab towards Alice on the same session
	req.NoError(err)
	req.Equal(chatID, routed)
	req.Equal([]domain.ChatTab{{ChatID: chatID, Participant: alice}}, second.service.Tabs())

	// And both write to the same message list
	_, err = second.service.Send("hi Alice")
	req.NoError(err)
	_, err = first.service.Send("welcome")
	req.NoError(err)
	session, ok := first.service.ActiveSession()
	req.True(ok)
	req.Len(session.Messages, 3)
	req.Equal(bob.ID, session.Messages[1].SenderID)
	other, ok := session.OtherParticipant(alice.ID)
	req.True(ok)
	req.Equal(bob, other)
}

func TestChatService_Invite_Claimed_Once(t *testing.T) {
	req := require.New(t)
	store := setupStore(t)
	first := newWindow(store, alice, ai.Unavailable{})
	_, link, err := first.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)

	bob, err := identity.NewUser(identity.Request{Name: "Bob", Email: "bob@example.com"})
	req.NoError(err)
	carol, err := identity.NewUser(identity.Request{Name: "Carol", Email: "carol@example.com"})
	req.NoError(err)

	// Given Bob joined first
	_, err = newWindow(store, bob, ai.Unavailable{}).service.Navigate(link)
	req.NoError(err)

	// When Carol opens the same link
	late := newWindow(store, carol, ai.Unavailable{})
	_, err = late.service.Navigate(link)
	req.NoError(err)

	// Then Carol can read the chat but not write to it
	_, err = late.service.Send("me too")
	req.ErrorIs(err, errors.ErrNotParticipant)
}

func TestChatService_Navigate_Stale_Link(t *testing.T) {
	req := require.New(t)
	w := newWindow(setupStore(t), alice, ai.Unavailable{})

	// When the link points to a chat unknown to this store
	chatID, err := w.service.Navigate(inviteBase + "#/chat/chat_1_0000000")

	// Then the route is followed but no tab is created
	req.NoError(err)
	req.Equal("chat_1_0000000", chatID)
	req.Empty(w.service.Tabs())
	_, ok := w.service.ActiveSession()
	req.False(ok)

	// And sending there fails
	_, err = w.service.Send("anyone?")
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func TestChatService_Navigate_Invalid_Link(t *testing.T) {
	w := newWindow(setupStore(t), alice, ai.Unavailable{})

	_, err := w.service.Navigate("https://example.com/#/settings")

	require.ErrorIs(t, err, errors.ErrInvalidInviteLink)
}

func TestChatService_CloseTab_Policy(t *testing.T) {
	req := require.New(t)
	w := newWindow(setupStore(t), alice, ai.Unavailable{})
	c1, _, err := w.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)
	c2, _, err := w.service.CreateChat("Carol", "carol@example.com")
	req.NoError(err)

	// Given c2 is active
	active, _ := w.service.Active()
	req.Equal(c2, active)

	// When closing c1, the selection does not move
	next, ok := w.service.CloseTab(c1)
	req.True(ok)
	req.Equal(c2, next)

	// When closing c2, nothing is selected anymore
	_, ok = w.service.CloseTab(c2)
	req.False(ok)
	req.Empty(w.service.Tabs())

	// And the sessions are still there
	_, ok = w.sessions.LoadSession(c1)
	req.True(ok)
	_, ok = w.sessions.LoadSession(c2)
	req.True(ok)
}

func TestChatService_CloseTab_Active_Selects_First_Remaining(t *testing.T) {
	req := require.New(t)
	w := newWindow(setupStore(t), alice, ai.Unavailable{})
	c1, _, err := w.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)
	c2, _, err := w.service.CreateChat("Carol", "carol@example.com")
	req.NoError(err)
	_, err = w.service.Navigate(c1)
	req.NoError(err)

	next, ok := w.service.CloseTab(c1)

	req.True(ok)
	req.Equal(c2, next)
}

func TestChatService_Send_Without_Active_Chat(t *testing.T) {
	w := newWindow(setupStore(t), alice, ai.Unavailable{})

	_, err := w.service.Send("hello")

	require.ErrorIs(t, err, errors.ErrNoActiveChat)
}

func TestChatService_SendDraft(t *testing.T) {
	req := require.New(t)
	w := newWindow(setupStore(t), alice, ai.Unavailable{})
	_, _, err := w.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)

	// Blank drafts are refused and kept
	w.service.Composer().SetDraft("   ")
	_, err = w.service.SendDraft()
	req.ErrorIs(err, errors.ErrEmptyContent)
	req.Equal("   ", w.service.Composer().Draft())

	// A real draft is sent and cleared
	w.service.Composer().SetDraft("hello 😀")
	message, err := w.service.SendDraft()
	req.NoError(err)
	req.Equal("hello 😀", message.Content)
	req.Empty(w.service.Composer().Draft())
}

func TestChatService_Suggest_Fills_Draft(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	suggester := mocks.NewMockSuggester(ctrl)
	w := newWindow(setupStore(t), alice, suggester)
	_, _, err := w.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)
	_, err = w.service.Send("See you at 5?")
	req.NoError(err)

	suggester.EXPECT().
		SuggestReply(gomock.Any(), gomock.Len(1)).
		Return("Sure, see you then!")

	text, applied, err := w.service.Suggest(context.Background())

	req.NoError(err)
	req.True(applied)
	req.Equal("Sure, see you then!", text)
	req.Equal(text, w.service.Composer().Draft())
	req.False(w.service.Composer().Pending())
}

func TestChatService_Suggest_Unavailable(t *testing.T) {
	req := require.New(t)
	w := newWindow(setupStore(t), alice, ai.Unavailable{})
	_, _, err := w.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)
	_, err = w.service.Send("See you at 5?")
	req.NoError(err)

	text, applied, err := w.service.Suggest(context.Background())

	req.NoError(err)
	req.True(applied)
	req.Equal(ai.UnavailableReply, text)
}

func TestChatService_Suggest_Dropped_After_Switch(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	suggester := mocks.NewMockSuggester(ctrl)
	w := newWindow(setupStore(t), alice, suggester)
	c1, _, err := w.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)
	c2, _, err := w.service.CreateChat("Carol", "carol@example.com")
	req.NoError(err)

	// Given the user switches chat while the model is thinking
	suggester.EXPECT().
		SuggestReply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []domain.Message) string {
			_, err := w.service.Navigate(c1)
			req.NoError(err)
			return "Hello! How can I help you today?"
		})

	// When
	_, applied, err := w.service.Suggest(context.Background())

	// Then the answer never reaches the new view
	req.NoError(err)
	req.False(applied)
	req.Equal(c1, w.service.Composer().ChatID())
	req.Empty(w.service.Composer().Draft())
	req.False(w.service.Composer().Pending())

	// And switching back leaves the control enabled
	_, err = w.service.Navigate(c2)
	req.NoError(err)
	req.False(w.service.Composer().Pending())
}

func TestChatService_Suggest_Refused_While_Pending(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	suggester := mocks.NewMockSuggester(ctrl)
	w := newWindow(setupStore(t), alice, suggester)
	_, _, err := w.service.CreateChat("Bob", "bob@example.com")
	req.NoError(err)

	suggester.EXPECT().
		SuggestReply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []domain.Message) string {
			// A second click while the first request runs
			_, _, err := w.service.Suggest(ctx)
			req.ErrorIs(err, errors.ErrSuggestionPending)
			return ai.GreetingReply
		}).
		Times(1)

	_, applied, err := w.service.Suggest(context.Background())

	req.NoError(err)
	req.True(applied)
}

func TestChatService_Suggest_Without_Chat(t *testing.T) {
	req := require.New(t)
	w := newWindow(setupStore(t), alice, ai.Unavailable{})

	_, _, err := w.service.Suggest(context.Background())
	req.ErrorIs(err, errors.ErrNoActiveChat)

	_, err = w.service.Navigate("chat_1_0000000")
	req.NoError(err)
	_, _, err = w.service.Suggest(context.Background())
	req.ErrorIs(err, errors.ErrSessionNotFound)
	req.False(w.service.Composer().Pending())
}
