package reactionsync

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forumStub serves a post page and answers reaction mutations.
type forumStub struct {
	mu       sync.Mutex
	counts   map[string][2]int
	tokens   []string
	requests int
	reject   bool
}

func (f *forumStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/post/42/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(postPageHTML))
	})
	mux.HandleFunc("/api/v1/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests++
		if f.reject {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_ = r.ParseForm()
		f.tokens = append(f.tokens, r.PostForm.Get("csrf_token"))
		c := f.counts[r.URL.Path]
		if r.PostForm.Get("direction") == "like" {
			c[0]++
		} else {
			c[1]++
		}
		f.counts[r.URL.Path] = c
		_, _ = fmt.Fprintf(w, `{"likes":%d,"dislikes":%d}`, c[0], c[1])
	})
	return mux
}

func newStubSession(t *testing.T, stub *forumStub, cfg config.ClientConfig) (*Session, *Location, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	page, err := LoadPage(context.Background(), srv.Client(), srv.URL+"/post/42/", cfg.TokenField, nil)
	require.NoError(t, err)
	location := NewLocation(page.URL())
	session := NewSession(page, NewMutationClient(srv.Client(), cfg, nil), location, cfg, nil)
	return session, location, srv
}

func TestSession_LikeUpdatesPage(t *testing.T) {
	stub := &forumStub{counts: map[string][2]int{"/api/v1/posts/42/reactions": {3, 1}}}
	session, location, srv := newStubSession(t, stub, config.DefaultClientConfig())

	outcome, sent, err := session.Activate(context.Background(), "post-42", entity.ReactionLike)
	require.NoError(t, err)
	require.True(t, sent)
	assert.Equal(t, Success(4, 1), outcome)

	html, err := session.Page().HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `value="↑ 4"`)
	assert.Contains(t, html, `value="↓ 1"`)
	assert.Equal(t, srv.URL+"/post/42/", location.Current())
	assert.Equal(t, []string{"meta-token"}, stub.tokens)
}

func TestSession_ForbiddenRedirectsToLogin(t *testing.T) {
	stub := &forumStub{counts: map[string][2]int{}, reject: true}
	session, location, srv := newStubSession(t, stub, config.DefaultClientConfig())

	outcome, _, err := session.Activate(context.Background(), "post-42", entity.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnauthorized, outcome.Kind)
	assert.Equal(t, srv.URL+"/accounts/login/?next=/post/42/", location.Current())
	assert.Len(t, location.History(), 1)

	post, _ := session.Page().Target("post-42")
	assert.Equal(t, "↑ 3", post.LikeLabel())
	assert.Equal(t, "↓ 1", post.DislikeLabel())
}

func TestSession_TokenRefreshPerRequest(t *testing.T) {
	stub := &forumStub{counts: map[string][2]int{}}
	cfg := config.DefaultClientConfig()
	cfg.RefreshTokenPerRequest = true
	session, _, _ := newStubSession(t, stub, cfg)

	_, _, err := session.Activate(context.Background(), "comment-7", entity.ReactionLike)
	require.NoError(t, err)
	session.Page().SetToken("rotated")
	_, _, err = session.Activate(context.Background(), "comment-7", entity.ReactionDislike)
	require.NoError(t, err)

	assert.Equal(t, []string{"meta-token", "rotated"}, stub.tokens)
}

func TestSession_StaticTokenIgnoresRotation(t *testing.T) {
	stub := &forumStub{counts: map[string][2]int{}}
	session, _, _ := newStubSession(t, stub, config.DefaultClientConfig())

	session.Page().SetToken("rotated")
	_, _, err := session.Activate(context.Background(), "comment-7", entity.ReactionLike)
	require.NoError(t, err)

	assert.Equal(t, []string{"meta-token"}, stub.tokens)
}

func TestSession_UnknownTarget(t *testing.T) {
	stub := &forumStub{counts: map[string][2]int{}}
	session, _, _ := newStubSession(t, stub, config.DefaultClientConfig())

	_, sent, err := session.Activate(context.Background(), "comment-404", entity.ReactionLike)
	assert.Error(t, err)
	assert.False(t, sent)
	assert.Equal(t, 0, stub.requests)
	_, ok := session.Controller("comment-404")
	assert.False(t, ok)
}

func TestSession_CommentsDoNotShareCounters(t *testing.T) {
	stub := &forumStub{counts: map[string][2]int{
		"/api/v1/comments/7/reactions": {2, 0},
		"/api/v1/comments/8/reactions": {5, 9},
	}}
	session, _, _ := newStubSession(t, stub, config.DefaultClientConfig())

	_, _, err := session.Activate(context.Background(), "comment-7", entity.ReactionLike)
	require.NoError(t, err)

	html, err := session.Page().HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `<button data-reaction="like">↑ 3</button>`)
	assert.True(t, strings.Contains(html, `data-reaction-count="5">↑ 5</button>`))
	post, _ := session.Page().Target("post-42")
	assert.Equal(t, "↑ 3", post.LikeLabel())
}
