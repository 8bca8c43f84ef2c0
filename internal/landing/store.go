package landing

import (
	"log"
	"runtime/debug"
	"sync"

	"m3search/internal/domain"
)

// Store is the state container for one landing screen session.
// All transitions go through Submit; observers read Current or Subscribe.
type Store struct {
	mu     sync.Mutex
	state  domain.State
	subs   map[uint64]*Subscription
	nextID uint64
	closed bool
}

// New creates a store holding the default snapshot
func New() *Store {
	return NewWithState(domain.DefaultState())
}

// NewWithState creates a store seeded with the given snapshot
func NewWithState(s domain.State) *Store {
	return &Store{
		state: s,
		subs:  make(map[uint64]*Subscription),
	}
}

// Current returns the latest snapshot
func (st *Store) Current() domain.State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Submit reduces the event into a new snapshot and publishes it to every
// subscriber. Publishing happens under the store lock so all subscribers
// observe snapshots in the same order.
func (st *Store) Submit(event domain.Event) {
	if event == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	// Query updates fire on every keystroke
	if event.Type() != domain.EventSearchQueryUpdate {
		log.Printf("Landing: applying event %s", event.Type())
	}

	st.state = domain.Reduce(st.state, event)
	for _, sub := range st.subs {
		sub.push(st.state)
	}
}

// SubmitAll submits events in order
func (st *Store) SubmitAll(events ...domain.Event) {
	for _, e := range events {
		st.Submit(e)
	}
}

// Subscribe returns a subscription whose channel yields the current
// snapshot followed by every later one.
func (st *Store) Subscribe() *Subscription {
	st.mu.Lock()
	defer st.mu.Unlock()

	sub := newSubscription()
	if st.closed {
		sub.Cancel()
		return sub
	}

	id := st.nextID
	st.nextID++
	sub.detach = func() {
		st.mu.Lock()
		delete(st.subs, id)
		st.mu.Unlock()
	}
	st.subs[id] = sub

	sub.push(st.state)
	go sub.pump()

	return sub
}

// Close ends the session: every subscription is cancelled and later
// subscriptions start closed. Current and Submit keep working.
func (st *Store) Close() {
	st.mu.Lock()
	subs := make([]*Subscription, 0, len(st.subs))
	for _, sub := range st.subs {
		subs = append(subs, sub)
	}
	st.subs = make(map[uint64]*Subscription)
	st.closed = true
	st.mu.Unlock()

	for _, sub := range subs {
		sub.stop()
	}
}

// Forward relays every snapshot of a new subscription to fn on its own
// goroutine until the subscription ends. The returned function cancels it.
func (st *Store) Forward(fn func(domain.State)) func() {
	sub := st.Subscribe()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Landing: snapshot forwarder panic: %v\nStack: %s", r, debug.Stack())
				sub.Cancel()
			}
		}()
		for s := range sub.C() {
			fn(s)
		}
	}()
	return sub.Cancel
}

// Subscription is one observer's ordered view of a store's snapshots
type Subscription struct {
	mu     sync.Mutex
	queue  []domain.State
	wake   chan struct{}
	out    chan domain.State
	done   chan struct{}
	once   sync.Once
	detach func()
}

func newSubscription() *Subscription {
	return &Subscription{
		wake: make(chan struct{}, 1),
		out:  make(chan domain.State),
		done: make(chan struct{}),
	}
}

// C returns the snapshot channel. It is closed when the subscription ends.
func (s *Subscription) C() <-chan domain.State {
	return s.out
}

// Cancel detaches the subscription from its store and closes its channel.
// Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.detach != nil {
		s.detach()
	}
	s.stop()
}

func (s *Subscription) stop() {
	s.once.Do(func() {
		close(s.done)
		// pump closes out; a subscription that never started pumping closes it here
		if s.detach == nil {
			close(s.out)
		}
	})
}

// push queues a snapshot without blocking the publisher
func (s *Subscription) push(state domain.State) {
	s.mu.Lock()
	s.queue = append(s.queue, state)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// pump drains the queue into the output channel in order
func (s *Subscription) pump() {
	defer close(s.out)

	for {
		s.mu.Lock()
		pending := s.queue
		s.queue = nil
		s.mu.Unlock()

		for _, state := range pending {
			select {
			case s.out <- state:
			case <-s.done:
				return
			}
		}

		select {
		case <-s.wake:
		case <-s.done:
			return
		}
	}
}
