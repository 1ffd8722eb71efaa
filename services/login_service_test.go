package services

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/errors"
	"boozbaal-chat/mocks"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginService_Login(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIUserRepository(ctrl)
	service := NewLoginService(repo, slog.Default())

	// Then the created user is saved
	var saved domain.User
	repo.EXPECT().Save(gomock.Any()).Do(func(user domain.User) { saved = user })

	// When
	user, err := service.Login(" Alice ", "alice@example.com")

	req.NoError(err)
	req.Equal("Alice", user.Name)
	req.Equal(user, saved)
}

func TestLoginService_Login_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIUserRepository(ctrl)
	service := NewLoginService(repo, slog.Default())

	repo.EXPECT().Save(gomock.Any()).Times(0)

	_, err := service.Login("Alice", "not-an-email")

	require.ErrorIs(t, err, errors.ErrInvalidUser)
}

func TestLoginService_Current_And_Logout(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIUserRepository(ctrl)
	service := NewLoginService(repo, slog.Default())
	alice := domain.User{ID: "user_1", Name: "Alice", Email: "alice@example.com"}

	gomock.InOrder(
		repo.EXPECT().Current().Return(alice, true),
		repo.EXPECT().Logout(),
		repo.EXPECT().Current().Return(domain.User{}, false),
	)

	user, ok := service.Current()
	req.True(ok)
	req.Equal(alice, user)

	service.Logout()

	_, ok = service.Current()
	req.False(ok)
}
