package repositories

import (
	"boozbaal-chat/domain"
	"boozbaal-chat/storage"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const testApp = "test-chat"

var (
	alice = domain.User{ID: "user_1_aaaaaaa", Name: "Alice", Email: "alice@example.com"}
	bob   = domain.User{ID: "user_2_bbbbbbb", Name: "Bob", Email: "bob@example.com"}
	carol = domain.User{ID: "user_3_ccccccc", Name: "Carol", Email: "carol@example.com"}
)

// setupStore opens an in-memory store shared by every repository of a test,
// as all windows of the application share it.
func setupStore(t *testing.T) (*storage.BadgerStore, *slog.Logger) {
	db, err := storage.Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	log := logs.GetLoggerFromLevel(slog.LevelError)
	return storage.NewBadgerStore(db, log), log
}
