package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
)

// ErrStale is returned to a load whose response arrived after a newer load started.
// Its result was discarded.
var ErrStale = errors.New("superseded by a newer request")

// StaleError tells which load was discarded and which one overtook it. It matches ErrStale.
type StaleError struct {
	Generation uint64 // the discarded load
	Current    uint64 // the newest load when it was discarded
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("%s (generation %d, current %d)", ErrStale, e.Generation, e.Current)
}

func (e *StaleError) Unwrap() error { return ErrStale }

// EmptyMessage is shown for a successful load with no items
const EmptyMessage = "nothing found"

const fallbackMessage = "failed to load, please try again"

// Status is the fetch state of a list
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name in JSON
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is a snapshot of a list
type State[T any] struct {
	Status     Status `json:"status"`
	Query      Query  `json:"query"`
	Items      []T    `json:"items"`
	TotalPages int    `json:"totalPages"`
	Message    string `json:"message,omitempty"`
	Generation uint64 `json:"generation"`
}

// FetchFunc loads one page
type FetchFunc[T any] func(ctx context.Context, q Query) (models.Page[T], error)

// Lister runs the Idle -> Loading -> Success | Error cycle for one collection.
// Every Load bumps the generation and cancels the previous in-flight fetch;
// only the latest generation's response is applied.
type Lister[T any] struct {
	fetch FetchFunc[T]

	mu         sync.Mutex
	state      State[T]
	generation uint64
	cancel     context.CancelFunc
}

// NewLister creates an idle lister
func NewLister[T any](fetch FetchFunc[T]) *Lister[T] {
	return &Lister[T]{fetch: fetch}
}

// Load fetches the page described by q. A load overtaken by a newer one
// returns the newer state together with a *StaleError.
func (l *Lister[T]) Load(ctx context.Context, q Query) (State[T], error) {
	q = q.Normalize()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state = State[T]{Status: StatusLoading, Query: q, Generation: gen}
	l.mu.Unlock()

	page, err := l.fetch(fetchCtx, q)

	l.mu.Lock()
	defer l.mu.Unlock()
	cancel()

	if gen != l.generation {
		return l.snapshot(), &StaleError{Generation: gen, Current: l.generation}
	}
	l.cancel = nil

	if err != nil {
		l.state = State[T]{
			Status:     StatusError,
			Query:      q,
			Message:    marketerrors.UserMessage(err, fallbackMessage),
			Generation: gen,
		}
		return l.snapshot(), err
	}

	items := page.Items
	if items == nil {
		items = []T{}
	}
	l.state = State[T]{
		Status:     StatusSuccess,
		Query:      q,
		Items:      items,
		TotalPages: page.TotalPages,
		Generation: gen,
	}
	if len(items) == 0 {
		l.state.Message = EmptyMessage
	}
	return l.snapshot(), nil
}

// State returns the current snapshot
func (l *Lister[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Close cancels any in-flight fetch
func (l *Lister[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	// bump so a fetch still returning is treated as stale
	l.generation++
}

func (l *Lister[T]) snapshot() State[T] {
	s := l.state
	if s.Items != nil {
		s.Items = append([]T(nil), s.Items...)
	}
	return s
}

// Registry keeps one Lister per key (session id) for a collection
type Registry[T any] struct {
	fetch FetchFunc[T]

	mu      sync.Mutex
	listers map[string]*Lister[T]
}

// NewRegistry creates an empty registry whose listers share fetch
func NewRegistry[T any](fetch FetchFunc[T]) *Registry[T] {
	return &Registry[T]{fetch: fetch, listers: make(map[string]*Lister[T])}
}

// For returns the lister for key, creating it on first use
func (r *Registry[T]) For(key string) *Lister[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listers[key]
	if !ok {
		l = NewLister(r.fetch)
		r.listers[key] = l
	}
	return l
}

// Drop closes and forgets the lister for key
func (r *Registry[T]) Drop(key string) {
	r.mu.Lock()
	l, ok := r.listers[key]
	delete(r.listers, key)
	r.mu.Unlock()
	if ok {
		l.Close()
	}
}

// Len returns the number of live listers
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listers)
}
