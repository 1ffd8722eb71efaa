//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/errors"
	"boozbaal-chat/state"
	"boozbaal-chat/storage"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"
)

type ISessionRepository interface {
	CreateSession(initiator, invitee domain.User) (string, error)
	AppendMessage(sessionID, senderID, content string) (domain.Message, error)
	LoadSession(sessionID string) (domain.ChatSession, bool)
	JoinSession(sessionID string, user domain.User) (domain.ChatSession, bool)
	Session(sessionID string) *state.Value[*domain.ChatSession]
}

type SessionRepository struct {
	store storage.Store
	app   string
	log   *slog.Logger
	now   func() time.Time
}

func NewSessionRepository(store storage.Store, app string, log *slog.Logger) *SessionRepository {
	return &SessionRepository{store: store, app: app, log: log, now: time.Now}
}

// Session returns a hook bound to the record of sessionID.
// A nil value means the session does not exist (yet) in this store.
func (r *SessionRepository) Session(sessionID string) *state.Value[*domain.ChatSession] {
	return state.NewValue[*domain.ChatSession](r.store, domain.SessionKey(r.app, sessionID), nil, r.log)
}

// CreateSession stores an empty session between two distinct users
// and returns its freshly allocated identifier.
func (r *SessionRepository) CreateSession(initiator, invitee domain.User) (string, error) {
	if initiator.ID == "" || invitee.ID == "" || initiator.ID == invitee.ID {
		return "", fmt.Errorf("%w: a session needs two distinct participants", errors.ErrInvalidUser)
	}
	id := domain.NewChatID()
	session := domain.NewChatSession(id, initiator, invitee)
	r.Session(id).Set(&session)
	r.log.Debug("Session created", "chat_id", id, "initiator", initiator.ID, "invitee", invitee.ID)
	return id, nil
}

// AppendMessage rewrites the session with the new message at the end.
// Timestamps never go backwards within a session even if the clock does.
// Concurrent writers from other windows are not merged: the last write wins.
func (r *SessionRepository) AppendMessage(sessionID, senderID, content string) (domain.Message, error) {
	content = domain.NormalizeContent(content)
	if content == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}

	var message domain.Message
	err := r.Session(sessionID).Update(func(old *domain.ChatSession) (*domain.ChatSession, error) {
		if old == nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, sessionID)
		}
		if !old.HasParticipant(senderID) {
			return nil, fmt.Errorf("%w: %s", errors.ErrNotParticipant, senderID)
		}

		timestamp := r.now().UnixMilli()
		if last, ok := old.LastMessage(); ok && last.Timestamp > timestamp {
			timestamp = last.Timestamp
		}
		message = domain.Message{
			ID:        domain.NewMessageID(),
			SenderID:  senderID,
			Content:   content,
			Timestamp: timestamp,
		}

		next := *old
		next.Messages = make([]domain.Message, 0, len(old.Messages)+1)
		next.Messages = append(next.Messages, old.Messages...)
		next.Messages = append(next.Messages, message)
		return &next, nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// LoadSession reads the session once. Absence is not an error.
func (r *SessionRepository) LoadSession(sessionID string) (domain.ChatSession, bool) {
	session := r.Session(sessionID).Get()
	if session == nil {
		return domain.ChatSession{}, false
	}
	return *session, true
}

// JoinSession lets user enter the session reached through an invitation.
// The unclaimed invitee slot is bound to user in the same read-modify-write,
// so the joiner can send right away. A session whose slots are all taken is
// returned unchanged. It reports false when no session backs sessionID.
func (r *SessionRepository) JoinSession(sessionID string, user domain.User) (domain.ChatSession, bool) {
	var session domain.ChatSession
	err := r.Session(sessionID).Update(func(old *domain.ChatSession) (*domain.ChatSession, error) {
		if old == nil {
			return nil, errors.ErrSessionNotFound
		}
		claimed, ok := old.Claim(user)
		session = claimed
		if !ok {
			return nil, errUnchanged
		}
		return &claimed, nil
	})
	switch {
	case stderrors.Is(err, errors.ErrSessionNotFound):
		return domain.ChatSession{}, false
	case err == nil:
		r.log.Info("Invitation claimed", "chat_id", sessionID, "user_id", user.ID)
	}
	return session, true
}
