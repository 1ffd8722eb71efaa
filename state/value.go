// Package state binds typed values to keys of a storage.Store.
//
// A Value keeps an in-memory copy of a JSON record, writes through to the
// store on every change and follows the changes other writers make to the
// same key. It never returns storage or decoding failures to its caller:
// they are logged and the value falls back to its default (on read) or keeps
// its previous content (on a write that could not be serialized).
package state

import (
	"boozbaal-chat/errors"
	"boozbaal-chat/storage"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"sync"
)

type Value[T any] struct {
	store        storage.Store
	key          string
	defaultValue T
	log          *slog.Logger

	mu        sync.RWMutex
	current   T
	loaded    bool
	listeners []func(T)
}

func NewValue[T any](store storage.Store, key string, defaultValue T, log *slog.Logger) *Value[T] {
	return &Value[T]{store: store, key: key, defaultValue: defaultValue, log: log}
}

func (v *Value[T]) Key() string { return v.key }

// Get returns the in-memory value, reading the store on first access.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	if v.loaded {
		defer v.mu.RUnlock()
		return v.current
	}
	v.mu.RUnlock()

	value := v.read()

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		v.current = value
		v.loaded = true
	}
	return v.current
}

// Set replaces the value and persists it immediately.
func (v *Value[T]) Set(value T) {
	data, err := json.Marshal(value)
	if err != nil {
		v.log.Error("Cannot serialize value, keeping previous one", "key", v.key, "error", err)
		return
	}
	v.setCurrent(value)
	if err = v.store.Set(v.key, data); err != nil {
		v.log.Error("Cannot persist value", "key", v.key, "error", err)
	}
}

// Update computes the next value from the stored one and persists it in a
// single read-modify-write. An error returned by fn aborts the update and is
// handed back unchanged; nothing is written in that case.
func (v *Value[T]) Update(fn func(old T) (T, error)) error {
	var (
		next       T
		serialized bool
		aborted    error
	)
	err := v.store.Modify(v.key, func(current []byte, found bool) ([]byte, error) {
		serialized = false
		old := v.defaultValue
		if found {
			old = v.decode(current)
		}
		var err error
		next, err = fn(old)
		if err != nil {
			aborted = err
			return nil, err
		}
		data, err := json.Marshal(next)
		if err != nil {
			return nil, err
		}
		serialized = true
		return data, nil
	})
	if aborted != nil {
		return aborted
	}
	if serialized {
		v.setCurrent(next)
	}
	if err != nil {
		v.log.Error("Cannot update value", "key", v.key, "error", err)
	}
	return nil
}

// OnChange registers fn to be called with the fresh value after every
// re-read triggered by a store notification.
func (v *Value[T]) OnChange(fn func(T)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

// Refresh re-reads the key and replaces the in-memory value.
func (v *Value[T]) Refresh() {
	value := v.read()

	v.mu.Lock()
	v.current = value
	v.loaded = true
	listeners := make([]func(T), len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// Run follows the key until ctx is done. It re-reads once right after
// subscribing so that writes issued before the subscription are not missed.
func (v *Value[T]) Run(ctx context.Context) error {
	sub := v.store.Subscribe(v.key)
	defer sub.Close()

	v.Refresh()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sub.C:
			v.Refresh()
		}
	}
}

func (v *Value[T]) setCurrent(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = value
	v.loaded = true
}

func (v *Value[T]) read() T {
	raw, err := v.store.Get(v.key)
	if stderrors.Is(err, errors.ErrKeyNotFound) {
		return v.defaultValue
	}
	if err != nil {
		v.log.Error("Cannot read value, using default", "key", v.key, "error", err)
		return v.defaultValue
	}
	return v.decode(raw)
}

func (v *Value[T]) decode(raw []byte) T {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		v.log.Error("Cannot parse stored value, using default", "key", v.key, "error", err)
		return v.defaultValue
	}
	return value
}
