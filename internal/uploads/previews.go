package uploads

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/utils"
)

// HandlePrefix marks preview handles, much like a browser object URL
const HandlePrefix = "preview:"

const (
	// DefaultMaxPerOwner matches the most images a product listing accepts
	DefaultMaxPerOwner = 10
	// DefaultPreviewTTL is how long an uncommitted preview is kept
	DefaultPreviewTTL = time.Hour
)

// Preview is an image staged in memory until it is committed or revoked
type Preview struct {
	Handle      string    `json:"handle"`
	Owner       string    `json:"-"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int       `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
	Data        []byte    `json:"-"`
}

// Previews holds staged images per session. Handles are only visible to their owner.
// Each owner keeps at most maxPerOwner previews (the oldest is evicted) and none outlive ttl.
type Previews struct {
	mu          sync.RWMutex
	items       map[string]Preview
	now         func() time.Time
	maxPerOwner int
	ttl         time.Duration
}

// PreviewOption configures a Previews registry
type PreviewOption func(*Previews)

// WithMaxPerOwner caps the previews a single session may hold
func WithMaxPerOwner(n int) PreviewOption {
	return func(p *Previews) {
		if n > 0 {
			p.maxPerOwner = n
		}
	}
}

// WithPreviewTTL sets how long a preview survives without being committed
func WithPreviewTTL(d time.Duration) PreviewOption {
	return func(p *Previews) {
		if d > 0 {
			p.ttl = d
		}
	}
}

// NewPreviews creates an empty registry
func NewPreviews(opts ...PreviewOption) *Previews {
	p := &Previews{
		items:       make(map[string]Preview),
		now:         time.Now,
		maxPerOwner: DefaultMaxPerOwner,
		ttl:         DefaultPreviewTTL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsHandle reports whether s looks like a preview handle
func IsHandle(s string) bool {
	id, ok := strings.CutPrefix(s, HandlePrefix)
	return ok && utils.IsID(id)
}

// Stage stores an already checked image for owner and returns its handle
func (p *Previews) Stage(owner, filename, contentType string, data []byte) Preview {
	pv := Preview{
		Handle:      HandlePrefix + utils.GenerateID(),
		Owner:       owner,
		Filename:    filename,
		ContentType: contentType,
		Size:        len(data),
		CreatedAt:   p.now().UTC(),
		Data:        data,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.pruneLocked(pv.CreatedAt)
	p.evictOldestLocked(owner)
	p.items[pv.Handle] = pv
	return pv
}

// evictOldestLocked drops the oldest previews of owner until one more fits
func (p *Previews) evictOldestLocked(owner string) {
	var owned []Preview
	for _, pv := range p.items {
		if pv.Owner == owner {
			owned = append(owned, pv)
		}
	}
	if len(owned) < p.maxPerOwner {
		return
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.Before(owned[j].CreatedAt) })
	for _, pv := range owned[:len(owned)-p.maxPerOwner+1] {
		delete(p.items, pv.Handle)
		utils.Debug("preview evicted", map[string]any{"session_id": owner, "handle": pv.Handle})
	}
}

// Prune releases every preview older than the ttl and returns how many were dropped
func (p *Previews) Prune() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pruneLocked(p.now().UTC())
}

func (p *Previews) pruneLocked(now time.Time) int {
	dropped := 0
	for handle, pv := range p.items {
		if now.Sub(pv.CreatedAt) >= p.ttl {
			delete(p.items, handle)
			dropped++
		}
	}
	return dropped
}

// Get returns a staged preview owned by owner
func (p *Previews) Get(owner, handle string) (Preview, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	pv, ok := p.items[handle]
	if !ok || pv.Owner != owner || p.now().UTC().Sub(pv.CreatedAt) >= p.ttl {
		return Preview{}, fmt.Errorf("uploads: %w - %s", marketerrors.ErrPreviewMissing, handle)
	}
	return pv, nil
}

// Revoke releases one preview
func (p *Previews) Revoke(owner, handle string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	pv, ok := p.items[handle]
	if !ok || pv.Owner != owner {
		return fmt.Errorf("uploads: %w - %s", marketerrors.ErrPreviewMissing, handle)
	}
	delete(p.items, handle)
	return nil
}

// RevokeAll releases every preview of owner and returns how many were dropped
func (p *Previews) RevokeAll(owner string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	dropped := 0
	for handle, pv := range p.items {
		if pv.Owner == owner {
			delete(p.items, handle)
			dropped++
		}
	}
	if dropped > 0 {
		utils.Debug("previews revoked", map[string]any{"session_id": owner, "count": dropped})
	}
	return dropped
}

// Len returns the number of staged previews
func (p *Previews) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}
