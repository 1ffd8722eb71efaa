package services

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/identity"
	"boozbaal-chat/repositories"
	"log/slog"
)

type ILoginService interface {
	Login(name, email string) (domain.User, error)
	Current() (domain.User, bool)
	Logout()
}

type LoginService struct {
	userRepository repositories.IUserRepository
	log            *slog.Logger
}

func NewLoginService(repo repositories.IUserRepository, log *slog.Logger) ILoginService {
	return &LoginService{userRepository: repo, log: log}
}

// Login creates a new identity and remembers it on this device.
// There is no password and no server: the identity is only local.
func (s *LoginService) Login(name, email string) (domain.User, error) {
	user, err := identity.NewUser(identity.Request{Name: name, Email: email})
	if err != nil {
		return domain.User{}, err
	}
	s.userRepository.Save(user)
	s.log.Info("User logged in", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// Current returns the identity stored by a previous Login, if any.
func (s *LoginService) Current() (domain.User, bool) {
	return s.userRepository.Current()
}

func (s *LoginService) Logout() {
	s.userRepository.Logout()
}
