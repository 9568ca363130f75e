package session

import "sync"

// Fixed storage keys. These are the de-facto wire format of a persisted
// session; existing deployments rely on the exact names.
const (
	KeyToken      = "token"
	KeyUserEmail  = "userEmail"
	KeyUserName   = "userName"
	KeyClientID   = "clientId"
	KeyClientName = "clientName"
)

// Store is the client-side session state: a small string key-value map
// shared by every component of a running application. Reads are always
// synchronous so a consumer that attaches after a profile update still
// observes current state without having seen the notification.
type Store interface {
	// Get returns the value for key and whether it is present.
	Get(key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns the currently stored key names.
	Keys() []string

	// Subscribe registers fn to run on every profile-updated notification.
	// The returned cancel function removes the subscription.
	Subscribe(fn func()) (cancel func())

	// NotifyProfileUpdated signals that persisted profile state changed.
	// The notification carries no payload; subscribers re-read the store.
	NotifyProfileUpdated()
}

// notifier implements the subscribe/notify half of Store.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

func (n *notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	// Invoked outside the lock so a subscriber can re-read the store.
	for _, fn := range fns {
		fn()
	}
}
