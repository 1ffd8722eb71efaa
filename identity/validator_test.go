package identity

import (
	"boozbaal-chat/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{Name: "Alice", Email: "alice@example.com"}, false},
		{"surrounding spaces", Request{Name: "  Alice ", Email: " alice@example.com  "}, false},
		{"missing name", Request{Name: "   ", Email: "alice@example.com"}, true},
		{"missing email", Request{Name: "Alice"}, true},
		{"malformed email", Request{Name: "Alice", Email: "alice.example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.req)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidUser)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Alice", user.Name)
			require.Equal(t, "alice@example.com", user.Email)
			require.Regexp(t, `^user_\d+_[0-9a-f]{7}$`, user.ID)
		})
	}
}

func TestNewUser_Allocates_Fresh_Ids(t *testing.T) {
	req := Request{Name: "Alice", Email: "alice@example.com"}

	first, err := NewUser(req)
	require.NoError(t, err)
	second, err := NewUser(req)
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
}
