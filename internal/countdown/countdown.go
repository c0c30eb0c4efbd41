package countdown

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is how often the remaining time is recomputed
const DefaultInterval = time.Second

// State of an auction countdown. Ended is terminal.
type State int

const (
	Running State = iota
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// MarshalText renders the state by name in JSON
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Tick is one recomputation of the remaining time
type Tick struct {
	State     State         `json:"state"`
	Remaining time.Duration `json:"remainingNanos"`
	Seconds   int64         `json:"remainingSeconds"`
	At        time.Time     `json:"at"`
}

// Evaluate computes the countdown at now. At or after endsAt the state is Ended with zero remaining.
// Seconds rounds up, so a Running tick never displays zero.
func Evaluate(endsAt, now time.Time) Tick {
	remaining := endsAt.Sub(now)
	if remaining <= 0 {
		return Tick{State: Ended, At: now}
	}
	seconds := int64((remaining + time.Second - 1) / time.Second)
	return Tick{State: Running, Remaining: remaining, Seconds: seconds, At: now}
}

// Clock abstracts time so tests can drive the countdown
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker is the part of time.Ticker the countdown uses
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker { return realTicker{time.NewTicker(d)} }

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// Option configures a Countdown
type Option func(*Countdown)

// WithInterval overrides the tick interval
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithClock injects a clock
func WithClock(clock Clock) Option {
	return func(c *Countdown) {
		c.clock = clock
	}
}

// Countdown recomputes the remaining time until endsAt on every tick and
// publishes it to subscribers. It stops by itself once Ended is reached;
// Stop or cancelling the start context clears it earlier. Either way every
// subscriber channel is closed and no goroutine outlives it.
type Countdown struct {
	endsAt   time.Time
	interval time.Duration
	clock    Clock

	mu      sync.Mutex
	subs    map[chan Tick]struct{}
	last    Tick
	started bool
	closed  bool

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a countdown to endsAt; call Start to run it
func New(endsAt time.Time, opts ...Option) *Countdown {
	c := &Countdown{
		endsAt:   endsAt,
		interval: DefaultInterval,
		clock:    realClock{},
		subs:     make(map[chan Tick]struct{}),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.last = Evaluate(endsAt, c.clock.Now())
	return c
}

// Start launches the timer. Calling it more than once has no effect.
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	go c.run(ctx)
}

// Stop clears the timer and waits for it to exit. Safe to call repeatedly, and before Start.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })

	c.mu.Lock()
	started := c.started
	c.mu.Unlock()

	if started {
		<-c.done
		return
	}
	c.closeSubscribers()
}

// Done is closed once the timer goroutine has exited
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}

// Current returns the most recently published tick
func (c *Countdown) Current() Tick {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Subscribe returns a channel receiving every tick (the latest one wins when the reader lags)
// and a function that unsubscribes. The channel is closed when the countdown stops.
func (c *Countdown) Subscribe() (<-chan Tick, func()) {
	ch := make(chan Tick, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		ch <- c.last
		close(ch)
		return ch, func() {}
	}
	c.subs[ch] = struct{}{}

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[ch]; ok {
			delete(c.subs, ch)
			close(ch)
		}
	}
}

func (c *Countdown) run(ctx context.Context) {
	defer close(c.done)
	defer c.closeSubscribers()

	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	if c.publish(c.clock.Now()) == Ended {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case now := <-ticker.C():
			if c.publish(now) == Ended {
				return
			}
		}
	}
}

func (c *Countdown) publish(now time.Time) State {
	tick := Evaluate(c.endsAt, now)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = tick
	for ch := range c.subs {
		select {
		case ch <- tick:
		default:
			// drop the unread tick so the newest one is delivered
			select {
			case <-ch:
			default:
			}
			ch <- tick
		}
	}
	return tick.State
}

func (c *Countdown) closeSubscribers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for ch := range c.subs {
		close(ch)
		delete(c.subs, ch)
	}
}
