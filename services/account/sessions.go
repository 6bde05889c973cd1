package account

import "sync"

// SessionEventKind classifies a session change.
type SessionEventKind int

const (
	// SessionStarted fires when a token is issued for an account.
	SessionStarted SessionEventKind = iota
	// SessionEnded fires when an account's token is revoked.
	SessionEnded
)

// SessionEvent describes a change in an account's session state.
type SessionEvent struct {
	Kind      SessionEventKind
	AccountID string
}

// sessionBroadcaster fans session events out to subscribers. Unsubscribing
// removes the callback before returning, so a released subscriber never
// observes a later event.
type sessionBroadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(SessionEvent)
}

func (b *sessionBroadcaster) subscribe(fn func(SessionEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[int]func(SessionEvent))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *sessionBroadcaster) publish(ev SessionEvent) {
	b.mu.Lock()
	fns := make([]func(SessionEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// SubscribeSessionChanges registers a callback for session events and returns
// an unsubscribe handle.
func (s *DefaultAccountService) SubscribeSessionChanges(fn func(SessionEvent)) func() {
	return s.sessions.subscribe(fn)
}
