//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
package storage

import (
	"boozbaal-chat/errors"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const maxModifyAttempts = 16

// Store is a synchronous string-keyed store with change notification.
// Single-key reads and writes are atomic.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Modify(key string, fn func(current []byte, found bool) ([]byte, error)) error
	Keys(prefix string) ([]string, error)
	Subscribe(key string) Subscription
}

type BadgerStore struct {
	db       *badger.DB
	notifier *Notifier
	log      *slog.Logger
}

// NewBadgerStore wraps db. Every window of the application must share the
// same BadgerStore so that they share its notifier.
func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, notifier: NewNotifier(), log: log}
}

// Open opens the Badger database backing the store.
// An in-memory database ignores path and is lost on close.
func Open(path string, inMemory bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	return badger.Open(opts)
}

// Get returns a copy of the raw value stored under key,
// or errors.ErrKeyNotFound when the key is absent.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set durably writes value under key, then notifies subscribers.
func (s *BadgerStore) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	s.notifier.Publish(key)
	return nil
}

// Delete removes key, then notifies subscribers.
func (s *BadgerStore) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.notifier.Publish(key)
	return nil
}

// Modify runs a read-modify-write on key inside a single transaction.
// When a concurrent writer commits the same key first, Badger reports a
// conflict and the whole cycle is replayed against the fresh value.
func (s *BadgerStore) Modify(key string, fn func(current []byte, found bool) ([]byte, error)) error {
	for attempt := 1; attempt <= maxModifyAttempts; attempt++ {
		err := s.db.Update(func(txn *badger.Txn) error {
			var current []byte
			found := true
			item, err := txn.Get([]byte(key))
			switch {
			case stderrors.Is(err, badger.ErrKeyNotFound):
				found = false
			case err != nil:
				return err
			default:
				if current, err = item.ValueCopy(nil); err != nil {
					return err
				}
			}

			next, err := fn(current, found)
			if err != nil {
				return err
			}
			return txn.Set([]byte(key), next)
		})
		if stderrors.Is(err, badger.ErrConflict) {
			s.log.Debug("Write conflict, replaying", "key", key, "attempt", attempt)
			continue
		}
		if err != nil {
			return fmt.Errorf("modify %s: %w", key, err)
		}
		s.notifier.Publish(key)
		return nil
	}
	return fmt.Errorf("modify %s: %w", key, errors.ErrTooManyConflicts)
}

// Keys lists every key starting with prefix in lexicographical order.
func (s *BadgerStore) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("keys %s: %w", prefix, err)
	}
	return keys, nil
}

// Subscribe attaches a listener to key. See Notifier.
func (s *BadgerStore) Subscribe(key string) Subscription {
	return s.notifier.Subscribe(key)
}

// Subscribers returns the number of listeners attached to key.
func (s *BadgerStore) Subscribers(key string) int {
	return s.notifier.Subscribers(key)
}
