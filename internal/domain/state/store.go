package state

import "sync"

// Subscriber receives the previous and the new state after every dispatch.
type Subscriber func(previous, current ApplicationState)

// Store owns the single ApplicationState instance. It is constructed once at
// application start and passed by reference to consumers; there is no hidden
// package-level singleton. Dispatch is safe for concurrent use; subscribers
// are notified outside the lock, in registration order.
type Store struct {
	mu          sync.RWMutex
	state       ApplicationState
	subscribers map[int]Subscriber
	nextSubID   int
}

// NewStore creates a store seeded with InitialState.
func NewStore() *Store {
	return &Store{
		state:       InitialState(),
		subscribers: make(map[int]Subscriber),
	}
}

// GetState returns a copy of the current state.
func (st *Store) GetState() ApplicationState {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// Dispatch runs the action through the reducer and notifies subscribers with
// the previous and resulting state.
func (st *Store) Dispatch(action Action) {
	st.mu.Lock()
	previous := st.state
	st.state = Reduce(st.state, action)
	current := st.state

	subs := make([]Subscriber, 0, len(st.subscribers))
	for id := 0; id < st.nextSubID; id++ {
		if sub, ok := st.subscribers[id]; ok {
			subs = append(subs, sub)
		}
	}
	st.mu.Unlock()

	for _, sub := range subs {
		sub(previous, current)
	}
}

// Subscribe registers a subscriber and returns a function that removes it.
func (st *Store) Subscribe(sub Subscriber) (unsubscribe func()) {
	st.mu.Lock()
	id := st.nextSubID
	st.nextSubID++
	st.subscribers[id] = sub
	st.mu.Unlock()

	return func() {
		st.mu.Lock()
		delete(st.subscribers, id)
		st.mu.Unlock()
	}
}
