//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/state"
	"boozbaal-chat/storage"
	"log/slog"
)

type IUserRepository interface {
	Current() (domain.User, bool)
	Save(user domain.User)
	Logout()
}

// UserRepository holds the user logged in on this device.
type UserRepository struct {
	current *state.Value[*domain.User]
}

func NewUserRepository(store storage.Store, app string, log *slog.Logger) *UserRepository {
	return &UserRepository{current: state.NewValue[*domain.User](store, domain.UserKey(app), nil, log)}
}

func (u *UserRepository) Current() (domain.User, bool) {
	user := u.current.Get()
	if user == nil {
		return domain.User{}, false
	}
	return *user, true
}

func (u *UserRepository) Save(user domain.User) {
	u.current.Set(&user)
}

// Logout forgets the current user. Tabs and sessions stay in the store.
func (u *UserRepository) Logout() {
	u.current.Set(nil)
}
