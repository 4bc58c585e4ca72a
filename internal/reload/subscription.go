package reload

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/stylecfg/internal/theme"
)

// Subscription receives change events. Its channel holds at most one
// pending event; a newer event replaces an unread one.
type Subscription struct {
	id     string
	ch     chan Event
	parent *Theme
}

// Subscribe registers a new subscription. On a closed Theme the returned
// subscription is already closed.
func (t *Theme) Subscribe() *Subscription {
	sub := &Subscription{
		id:     uuid.NewString(),
		ch:     make(chan Event, 1),
		parent: t,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		close(sub.ch)
		return sub
	}
	t.subs[sub.id] = sub
	t.logger.Debug().Str("subscription", sub.id).Msg("subscribed")
	return sub
}

// ID returns the subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// C returns the event channel. It is closed when the subscription or its
// Theme is closed.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Wait blocks until the next event. It returns ErrClosed once the
// subscription is closed.
func (s *Subscription) Wait(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case ev, ok := <-s.ch:
		if !ok {
			return Event{}, ErrClosed
		}
		return ev, nil
	}
}

// Close unregisters the subscription. Closing twice is a no-op.
func (s *Subscription) Close() {
	t := s.parent
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.subs[s.id]; !ok {
		return
	}
	delete(t.subs, s.id)
	close(s.ch)
}

// notify must be called with the parent's lock held.
func (s *Subscription) notify(ev Event) {
	for {
		select {
		case s.ch <- ev:
			return
		default:
		}
		// Drop the stale event and retry.
		select {
		case <-s.ch:
		default:
		}
	}
}

// Follow reloads the theme after every change and passes the result to fn.
// Bursts of events within debounce are coalesced into one reload. fn
// receives the active theme and the reload error, if any; on error the
// theme is the previous one. Follow returns when ctx is done or the Theme
// is closed.
func (t *Theme) Follow(ctx context.Context, debounce time.Duration, fn func(*theme.Theme, error)) error {
	sub := t.Subscribe()
	defer sub.Close()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case _, ok := <-sub.C():
			if !ok {
				return ErrClosed
			}
			if debounce <= 0 {
				err := t.Reload()
				fn(t.Current(), err)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			err := t.Reload()
			fn(t.Current(), err)
		}
	}
}
