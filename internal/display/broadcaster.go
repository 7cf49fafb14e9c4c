package display

import "sync"

// Broadcaster is a Target that remembers the latest text and forwards it
// to any number of subscribers. Delivery is latest-value-wins: a subscriber
// that has not consumed the previous value gets it replaced, so SetText
// never blocks on a slow reader.
type Broadcaster struct {
	mu   sync.Mutex
	last string
	subs map[chan string]struct{}
}

// NewBroadcaster creates an empty Broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan string]struct{}),
	}
}

// SetText implements Target
func (b *Broadcaster) SetText(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = text
	for ch := range b.subs {
		select {
		case ch <- text:
		default:
			// Drop the stale value and retry once.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- text:
			default:
			}
		}
	}
	return nil
}

// Text returns the most recent text, or "" if nothing has been set yet
func (b *Broadcaster) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Subscribe registers a new subscriber. The returned cancel func
// unregisters it and closes the channel; it is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 1)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}

// Subscribers returns the number of active subscribers
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
