package reactionsync

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu     sync.Mutex
	lines  []string
	errors int
}

func (l *recordingLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
	if level == "ERROR" {
		l.errors++
	}
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) { l.record("DEBUG", format, args...) }
func (l *recordingLogger) Infof(format string, args ...interface{})  { l.record("INFO", format, args...) }
func (l *recordingLogger) Warnf(format string, args ...interface{})  { l.record("WARN", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...interface{}) { l.record("ERROR", format, args...) }
func (l *recordingLogger) Fatalf(format string, args ...interface{}) { l.record("FATAL", format, args...) }

func (l *recordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// labelView remembers the last rendered labels.
type labelView struct {
	mu      sync.Mutex
	like    string
	dislike string
	renders int
}

func (v *labelView) Render(likes, dislikes int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.like = LikeLabel(likes)
	v.dislike = DislikeLabel(dislikes)
	v.renders++
}

func (v *labelView) Labels() (string, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.like, v.dislike
}

// countingNavigator counts Replace calls.
type countingNavigator struct {
	mu       sync.Mutex
	replaced []string
}

func (n *countingNavigator) Replace(rawURL string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replaced = append(n.replaced, rawURL)
}

func (n *countingNavigator) Calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.replaced...)
}

// gatedSubmitter blocks every Submit until released and counts calls.
type gatedSubmitter struct {
	calls   atomic.Int32
	started chan MutationRequest
	release chan Outcome
}

func newGatedSubmitter() *gatedSubmitter {
	return &gatedSubmitter{started: make(chan MutationRequest, 16), release: make(chan Outcome)}
}

func (s *gatedSubmitter) Submit(ctx context.Context, req MutationRequest) Outcome {
	s.calls.Add(1)
	s.started <- req
	select {
	case outcome := <-s.release:
		return outcome
	case <-ctx.Done():
		return Failure("%v", ctx.Err())
	}
}

// fixedSubmitter returns the same outcome every time.
type fixedSubmitter struct {
	outcome Outcome
	calls   atomic.Int32
	tokens  []string
	mu      sync.Mutex
}

func (s *fixedSubmitter) Submit(ctx context.Context, req MutationRequest) Outcome {
	s.calls.Add(1)
	s.mu.Lock()
	s.tokens = append(s.tokens, req.Token())
	s.mu.Unlock()
	return s.outcome
}

func newTestTarget(t *testing.T, id string, kind entity.TargetKind, endpoint string, likes, dislikes int) (*Target, *labelView) {
	t.Helper()
	view := &labelView{like: LikeLabel(likes), dislike: DislikeLabel(dislikes)}
	target, err := NewTarget(id, kind, endpoint, likes, dislikes, view)
	require.NoError(t, err)
	return target, view
}
