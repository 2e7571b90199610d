// Package reactionsync keeps a page's like/dislike counters in sync with the
// server. Each reaction-capable post or comment is a Target driven by its own
// Controller; a Controller issues at most one mutation at a time for its
// Target and applies the server's counts as they come back.
package reactionsync

import (
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
)

// CounterView re-renders a target's two counter labels.
type CounterView interface {
	Render(likes, dislikes int)
}

// Target is one post or comment with its displayed reaction counts.
type Target struct {
	id       string
	kind     entity.TargetKind
	endpoint *url.URL

	mu       sync.Mutex
	likes    int
	dislikes int
	view     CounterView

	pending atomic.Bool
}

// NewTarget registers a target. endpoint must be an absolute URL.
func NewTarget(id string, kind entity.TargetKind, endpoint string, likes, dislikes int, view CounterView) (*Target, error) {
	if id == "" {
		return nil, errors.New("target id is required")
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("target %s: unknown kind %q", id, kind)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("target %s: invalid endpoint: %w", id, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("target %s: endpoint %q is not absolute", id, endpoint)
	}
	if likes < 0 || dislikes < 0 {
		return nil, fmt.Errorf("target %s: negative counts %d/%d", id, likes, dislikes)
	}
	return &Target{
		id:       id,
		kind:     kind,
		endpoint: u,
		likes:    likes,
		dislikes: dislikes,
		view:     view,
	}, nil
}

func (t *Target) ID() string              { return t.id }
func (t *Target) Kind() entity.TargetKind { return t.kind }

// Endpoint returns a copy of the mutation endpoint.
func (t *Target) Endpoint() *url.URL {
	u := *t.endpoint
	return &u
}

// Counts returns both counters as of the same applied response.
func (t *Target) Counts() (likes, dislikes int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.likes, t.dislikes
}

func (t *Target) LikeLabel() string {
	likes, _ := t.Counts()
	return LikeLabel(likes)
}

func (t *Target) DislikeLabel() string {
	_, dislikes := t.Counts()
	return DislikeLabel(dislikes)
}

// ApplySuccess overwrites both counters with the server's values and re-renders
// the labels. The server is authoritative: nothing is incremented locally.
func (t *Target) ApplySuccess(likes, dislikes int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.likes = likes
	t.dislikes = dislikes
	if t.view != nil {
		t.view.Render(likes, dislikes)
	}
}

// Pending reports whether a mutation for this target is in flight.
func (t *Target) Pending() bool {
	return t.pending.Load()
}

func (t *Target) tryBegin() bool {
	return t.pending.CompareAndSwap(false, true)
}

func (t *Target) finish() {
	t.pending.Store(false)
}

// LikeLabel formats a like counter.
func LikeLabel(n int) string {
	return fmt.Sprintf("↑ %d", n)
}

// DislikeLabel formats a dislike counter.
func DislikeLabel(n int) string {
	return fmt.Sprintf("↓ %d", n)
}
