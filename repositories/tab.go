//go:generate go run go.uber.org/mock/mockgen -source=tab.go -destination=../mocks/mock_tab_repository.go -package=mocks
package repositories

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/state"
	"boozbaal-chat/storage"
	stderrors "errors"
	"log/slog"

	"github.com/samber/lo"
)

// errUnchanged aborts an update that would rewrite the same record.
var errUnchanged = stderrors.New("record unchanged")

type ITabRepository interface {
	Tabs() []domain.ChatTab
	OpenTab(chatID string, participant domain.User) bool
	CloseTab(chatID string) []domain.ChatTab
	JoinFromInvite(chatID string) bool
	Value() *state.Value[[]domain.ChatTab]
}

// TabRepository is the tab registry of a single user.
type TabRepository struct {
	user     domain.User
	tabs     *state.Value[[]domain.ChatTab]
	sessions ISessionRepository
	log      *slog.Logger
}

func NewTabRepository(store storage.Store, app string, user domain.User,
	sessions ISessionRepository, log *slog.Logger) *TabRepository {
	return &TabRepository{
		user:     user,
		tabs:     state.NewValue(store, domain.TabsKey(app, user.ID), []domain.ChatTab{}, log),
		sessions: sessions,
		log:      log,
	}
}

func (r *TabRepository) Value() *state.Value[[]domain.ChatTab] { return r.tabs }

// Tabs returns the tabs in opening order.
func (r *TabRepository) Tabs() []domain.ChatTab {
	return r.tabs.Get()
}

// OpenTab appends a tab unless one already references chatID.
// It reports whether a tab was added.
func (r *TabRepository) OpenTab(chatID string, participant domain.User) bool {
	err := r.tabs.Update(func(old []domain.ChatTab) ([]domain.ChatTab, error) {
		if hasTab(old, chatID) {
			return nil, errUnchanged
		}
		next := make([]domain.ChatTab, 0, len(old)+1)
		next = append(next, old...)
		return append(next, domain.ChatTab{ChatID: chatID, Participant: participant}), nil
	})
	return err == nil
}

// CloseTab removes the tab referencing chatID and returns the remaining ones.
// The underlying session is left untouched.
func (r *TabRepository) CloseTab(chatID string) []domain.ChatTab {
	var remaining []domain.ChatTab
	err := r.tabs.Update(func(old []domain.ChatTab) ([]domain.ChatTab, error) {
		remaining = lo.Filter(old, func(tab domain.ChatTab, _ int) bool {
			return tab.ChatID != chatID
		})
		if len(remaining) == len(old) {
			return nil, errUnchanged
		}
		return remaining, nil
	})
	if err != nil {
		return r.tabs.Get()
	}
	return remaining
}

// JoinFromInvite synthesizes a tab for a chat reached through an invitation
// link. The tab targets the session participant who is not the current user,
// who first takes over the invitee slot when it is still unclaimed.
// Nothing happens when the chat is already open or no session backs it.
func (r *TabRepository) JoinFromInvite(chatID string) bool {
	if hasTab(r.Tabs(), chatID) {
		return false
	}
	session, ok := r.sessions.JoinSession(chatID, r.user)
	if !ok {
		r.log.Debug("Invitation ignored, no session", "chat_id", chatID)
		return false
	}
	participant, ok := session.OtherParticipant(r.user.ID)
	if !ok {
		r.log.Debug("Invitation ignored, no other participant", "chat_id", chatID)
		return false
	}
	return r.OpenTab(chatID, participant)
}

func hasTab(tabs []domain.ChatTab, chatID string) bool {
	return lo.ContainsBy(tabs, func(tab domain.ChatTab) bool {
		return tab.ChatID == chatID
	})
}
