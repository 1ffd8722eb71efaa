package services

import (
	"boozbaal-chat/ai"
	"boozbaal-chat/contract"
	"boozbaal-chat/domain"
	"boozbaal-chat/errors"
	"boozbaal-chat/identity"
	"boozbaal-chat/repositories"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

type IChatService interface {
	User() domain.User
	CreateChat(name, email string) (chatID, link string, err error)
	Navigate(target string) (string, error)
	CloseTab(chatID string) (string, bool)
	Active() (string, bool)
	Tabs() []domain.ChatTab
	TabWatcher() contract.Worker
	InviteLink(chatID string) string
	ActiveSession() (domain.ChatSession, bool)
	Send(content string) (domain.Message, error)
	SendDraft() (domain.Message, error)
	Suggest(ctx context.Context) (string, bool, error)
	Composer() *Composer
}

// ChatService drives the chat data flow of one logged-in user:
// tab registry -> active chat -> session record.
type ChatService struct {
	user       domain.User
	sessions   repositories.ISessionRepository
	tabs       repositories.ITabRepository
	suggester  ai.Suggester
	composer   *Composer
	inviteBase string
	log        *slog.Logger

	mu     sync.RWMutex
	active string
}

func NewChatService(user domain.User,
	sessions repositories.ISessionRepository,
	tabs repositories.ITabRepository,
	suggester ai.Suggester,
	inviteBase string, log *slog.Logger) *ChatService {
	return &ChatService{
		user:       user,
		sessions:   sessions,
		tabs:       tabs,
		suggester:  suggester,
		composer:   NewComposer(),
		inviteBase: inviteBase,
		log:        log.With("user_id", user.ID),
	}
}

func (s *ChatService) User() domain.User { return s.user }

func (s *ChatService) Composer() *Composer { return s.composer }

func (s *ChatService) Tabs() []domain.ChatTab { return s.tabs.Tabs() }

// TabWatcher follows the tab registry of the user across windows.
func (s *ChatService) TabWatcher() contract.Worker { return s.tabs.Value() }

// InviteLink returns the link another person opens to join chatID.
func (s *ChatService) InviteLink(chatID string) string {
	return domain.InviteLink(s.inviteBase, chatID)
}

// CreateChat starts a session with a new invitee, opens and activates its
// tab, and returns the invitation link to share with the invitee.
func (s *ChatService) CreateChat(name, email string) (string, string, error) {
	invitee, err := identity.NewInvitee(identity.Request{Name: name, Email: email})
	if err != nil {
		return "", "", err
	}
	chatID, err := s.sessions.CreateSession(s.user, invitee)
	if err != nil {
		return "", "", fmt.Errorf("create chat: %w", err)
	}
	s.tabs.OpenTab(chatID, invitee)
	s.activate(chatID)
	s.log.Info("Chat created", "chat_id", chatID, "invitee", invitee.Email)
	return chatID, domain.InviteLink(s.inviteBase, chatID), nil
}

// Navigate routes to the chat referenced by target, a link or a chat id.
// A chat missing from the tabs is joined when a session backs it; a stale
// link still routes but creates no tab, and the view shows "not found".
func (s *ChatService) Navigate(target string) (string, error) {
	chatID, err := domain.ParseInviteLink(target)
	if err != nil {
		return "", err
	}
	if s.tabs.JoinFromInvite(chatID) {
		s.log.Info("Joined chat from invitation", "chat_id", chatID)
	}
	s.activate(chatID)
	return chatID, nil
}

// CloseTab removes a tab. When it was the active one, the first remaining
// tab becomes active, or nothing is selected when none is left.
func (s *ChatService) CloseTab(chatID string) (string, bool) {
	remaining := s.tabs.CloseTab(chatID)

	s.mu.RLock()
	wasActive := s.active == chatID
	s.mu.RUnlock()

	if wasActive {
		next := ""
		if len(remaining) > 0 {
			next = remaining[0].ChatID
		}
		s.activate(next)
	}
	return s.Active()
}

// Active returns the selected chat id; false means the empty selection.
func (s *ChatService) Active() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.active != ""
}

func (s *ChatService) ActiveSession() (domain.ChatSession, bool) {
	chatID, ok := s.Active()
	if !ok {
		return domain.ChatSession{}, false
	}
	return s.sessions.LoadSession(chatID)
}

// Send appends content to the active session as the current user.
func (s *ChatService) Send(content string) (domain.Message, error) {
	chatID, ok := s.Active()
	if !ok {
		return domain.Message{}, errors.ErrNoActiveChat
	}
	return s.sessions.AppendMessage(chatID, s.user.ID, content)
}

// SendDraft sends the composer draft and clears it on success.
func (s *ChatService) SendDraft() (domain.Message, error) {
	message, err := s.Send(s.composer.Draft())
	if err != nil {
		return domain.Message{}, err
	}
	s.composer.Clear()
	return message, nil
}

// Suggest asks for a reply to the active session and writes it into the
// draft. It reports false when the view was replaced before the answer came.
// Sending messages meanwhile is allowed: both paths share no state.
func (s *ChatService) Suggest(ctx context.Context) (string, bool, error) {
	chatID, ok := s.Active()
	if !ok {
		return "", false, errors.ErrNoActiveChat
	}
	session, ok := s.sessions.LoadSession(chatID)
	if !ok {
		return "", false, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, chatID)
	}
	ticket, err := s.composer.BeginSuggestion()
	if err != nil {
		return "", false, err
	}

	text := s.suggester.SuggestReply(ctx, session.Messages)

	applied := s.composer.CompleteSuggestion(ticket, text)
	if !applied {
		s.log.Debug("Suggestion dropped, view disposed", "chat_id", ticket.ChatID)
	}
	return text, applied, nil
}

func (s *ChatService) activate(chatID string) {
	s.mu.Lock()
	changed := s.active != chatID
	s.active = chatID
	s.mu.Unlock()

	if changed {
		s.composer.Mount(chatID)
	}
}
