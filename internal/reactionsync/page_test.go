package reactionsync

import (
	"strings"
	"testing"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postPageHTML = `<!DOCTYPE html>
<html><head><meta name="csrf-token" content="meta-token"></head>
<body>
<div id="auth_links"><a href="/accounts/register/">Sign up</a> <a href="/accounts/login/?next=/post/42/">Log in</a></div>
<article data-reaction-target="post-42" data-reaction-kind="post" data-reaction-endpoint="/api/v1/posts/42/reactions">
  <form name="post_rating_form">
    <input type="hidden" name="csrf_token" value="form-token">
    <input type="submit" data-reaction="like" value="↑ 3">
    <input type="submit" data-reaction="dislike" value="↓ 1">
  </form>
  <section class="comments">
    <div data-reaction-target="comment-7" data-reaction-kind="comment" data-reaction-endpoint="/api/v1/comments/7/reactions">
      <button data-reaction="like">↑ 2</button><button data-reaction="dislike">↓ 0</button>
    </div>
    <div data-reaction-target="comment-8" data-reaction-kind="comment" data-reaction-endpoint="https://api.forum.test/api/v1/comments/8/reactions">
      <button data-reaction="like" data-reaction-count="5">↑ 5</button><button data-reaction="dislike" data-reaction-count="9">↓ 9</button>
    </div>
    <div data-reaction-target="comment-8" data-reaction-kind="comment" data-reaction-endpoint="/dup">
      <button data-reaction="like">↑ 1</button><button data-reaction="dislike">↓ 1</button>
    </div>
    <div data-reaction-target="comment-9" data-reaction-kind="comment">
      <button data-reaction="like">↑ 1</button><button data-reaction="dislike">↓ 1</button>
    </div>
    <div data-reaction-target="blog-1" data-reaction-kind="blog" data-reaction-endpoint="/b/1">
      <button data-reaction="like">↑ 1</button><button data-reaction="dislike">↓ 1</button>
    </div>
  </section>
</article>
</body></html>`

func parseTestPage(t *testing.T, html string, log usecasecontract.IAppLogger) *Page {
	t.Helper()
	page, err := ParsePage("http://forum.test/post/42/", strings.NewReader(html), "csrf_token", log)
	require.NoError(t, err)
	return page
}

func TestParsePage_RegistersTargetsByID(t *testing.T) {
	log := &recordingLogger{}
	page := parseTestPage(t, postPageHTML, log)

	var ids []string
	for _, target := range page.Targets() {
		ids = append(ids, target.ID())
	}
	assert.Equal(t, []string{"post-42", "comment-7", "comment-8"}, ids)

	post, ok := page.Target("post-42")
	require.True(t, ok)
	assert.Equal(t, entity.TargetKindPost, post.Kind())
	assert.Equal(t, "http://forum.test/api/v1/posts/42/reactions", post.Endpoint().String())
	likes, dislikes := post.Counts()
	assert.Equal(t, 3, likes)
	assert.Equal(t, 1, dislikes)

	comment, ok := page.Target("comment-7")
	require.True(t, ok)
	assert.Equal(t, entity.TargetKindComment, comment.Kind())
	likes, dislikes = comment.Counts()
	assert.Equal(t, 2, likes)
	assert.Equal(t, 0, dislikes)

	other, ok := page.Target("comment-8")
	require.True(t, ok)
	assert.Equal(t, "https://api.forum.test/api/v1/comments/8/reactions", other.Endpoint().String())
	likes, dislikes = other.Counts()
	assert.Equal(t, 5, likes)
	assert.Equal(t, 9, dislikes)

	assert.True(t, containsLine(log.Lines(), "duplicate reaction target comment-8"))
	assert.True(t, containsLine(log.Lines(), "comment-9 has no endpoint"))
	assert.True(t, containsLine(log.Lines(), `unknown kind "blog"`))
}

func TestParsePage_LoginLinkAndToken(t *testing.T) {
	page := parseTestPage(t, postPageHTML, nil)

	login, ok := page.LoginURL()
	require.True(t, ok)
	assert.Equal(t, "http://forum.test/accounts/login/?next=/post/42/", login)
	assert.Equal(t, "meta-token", page.LoadToken())

	page.SetToken("rotated")
	assert.Equal(t, "rotated", page.Token())
	assert.Equal(t, "meta-token", page.LoadToken())
}

func TestParsePage_TokenFallsBackToFormField(t *testing.T) {
	html := strings.Replace(postPageHTML, `<meta name="csrf-token" content="meta-token">`, "", 1)
	page := parseTestPage(t, html, nil)

	assert.Equal(t, "form-token", page.LoadToken())
}

func TestParsePage_NoLoginLinkWhenLoggedIn(t *testing.T) {
	html := strings.Replace(postPageHTML, `<a href="/accounts/login/?next=/post/42/">Log in</a>`, `<a href="/accounts/logout/">Log out</a>`, 1)
	page := parseTestPage(t, html, nil)

	_, ok := page.LoginURL()
	assert.False(t, ok)
}

func TestApplySuccess_RendersOnlyOwnCounters(t *testing.T) {
	page := parseTestPage(t, postPageHTML, nil)
	comment, _ := page.Target("comment-7")
	post, _ := page.Target("post-42")

	comment.ApplySuccess(3, 1)

	html, err := page.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `<button data-reaction="like">↑ 3</button><button data-reaction="dislike">↓ 1</button>`)
	// The post's counters are untouched.
	assert.Contains(t, html, `value="↑ 3"`)
	assert.Contains(t, html, `value="↓ 1"`)
	likes, dislikes := post.Counts()
	assert.Equal(t, 3, likes)
	assert.Equal(t, 1, dislikes)

	post.ApplySuccess(4, 1)
	html, err = page.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `value="↑ 4"`)

	other, _ := page.Target("comment-8")
	other.ApplySuccess(6, 9)
	html, err = page.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `data-reaction-count="6">↑ 6</button>`)
}
