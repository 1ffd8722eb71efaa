package storage

import "sync"

// Subscription receives a signal each time its key is written or deleted.
// Signals are coalesced: a reader that falls behind sees one pending signal
// and is expected to re-read the key.
type Subscription struct {
	C     <-chan struct{}
	close func()
}

// Close detaches the subscription. It is safe to call more than once.
func (s Subscription) Close() {
	if s.close != nil {
		s.close()
	}
}

// Notifier is an in-process publish/subscribe channel keyed by storage key.
// Every writer publishes and every reader of the same key is notified,
// whether it lives in the writing window or in another one.
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]chan struct{} // map key -> subscriber id -> signal
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string]map[int]chan struct{})}
}

// Subscribe registers a listener for key. Registration is effective as soon
// as Subscribe returns, so no write issued afterwards can be missed.
func (n *Notifier) Subscribe(key string) Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	ch := make(chan struct{}, 1)
	if _, ok := n.subs[key]; !ok {
		n.subs[key] = make(map[int]chan struct{})
	}
	n.subs[key][id] = ch

	var once sync.Once
	return Subscription{C: ch, close: func() {
		once.Do(func() { n.unsubscribe(key, id) })
	}}
}

// Publish signals every subscriber of key without blocking.
func (n *Notifier) Publish(key string) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subs[key] {
		select {
		case ch <- struct{}{}:
		default:
			// a signal is already pending
		}
	}
}

// Subscribers returns the number of listeners currently attached to key.
func (n *Notifier) Subscribers(key string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs[key])
}

func (n *Notifier) unsubscribe(key string, id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if members, ok := n.subs[key]; ok {
		delete(members, id)
		// If no one is left on the key, remove the entry entirely
		if len(members) == 0 {
			delete(n.subs, key)
		}
	}
}
