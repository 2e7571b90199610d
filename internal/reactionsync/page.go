package reactionsync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	applogger "github.com/mikiasgoitom/reactsync/internal/infrastructure/logger"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// Markup contract shared with the page templates.
const (
	targetSelector   = "[data-reaction-target]"
	attrTargetID     = "data-reaction-target"
	attrTargetKind   = "data-reaction-kind"
	attrEndpoint     = "data-reaction-endpoint"
	attrCount        = "data-reaction-count"
	loginSelector    = "#auth_links a[href*=login]"
	tokenMetaSel     = "meta[name=csrf-token]"
	tokenInputSelFmt = "input[name=%q]"
)

// Page is a loaded document with its reaction targets registered by id.
type Page struct {
	url        *url.URL
	tokenField string
	logger     usecasecontract.IAppLogger

	mu  sync.Mutex // guards doc
	doc *goquery.Document

	targets  []*Target
	byID     map[string]*Target
	loginURL string
	token    string
}

// LoadPage fetches pageURL with hc and parses it.
func LoadPage(ctx context.Context, hc *http.Client, pageURL, tokenField string, logger usecasecontract.IAppLogger) (*Page, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build page request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page: HTTP %d", resp.StatusCode)
	}
	return ParsePage(resp.Request.URL.String(), resp.Body, tokenField, logger)
}

// ParsePage parses an HTML document served from pageURL.
func ParsePage(pageURL string, r io.Reader, tokenField string, logger usecasecontract.IAppLogger) (*Page, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page url: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	if tokenField == "" {
		tokenField = "csrf_token"
	}
	p := &Page{
		url:        base,
		tokenField: tokenField,
		logger:     applogger.OrNop(logger),
		doc:        doc,
		byID:       map[string]*Target{},
	}
	p.token = p.readToken()
	p.loginURL = p.readLoginURL()
	p.registerTargets()
	return p, nil
}

func (p *Page) URL() string { return p.url.String() }

// Targets returns the registered targets in document order.
func (p *Page) Targets() []*Target {
	return append([]*Target(nil), p.targets...)
}

func (p *Page) Target(id string) (*Target, bool) {
	t, ok := p.byID[id]
	return t, ok
}

// LoginURL is the absolute address of the page's login link, if any.
func (p *Page) LoginURL() (string, bool) {
	return p.loginURL, p.loginURL != ""
}

// LoadToken is the anti-forgery token as read at load time.
func (p *Page) LoadToken() string { return p.token }

// Token re-reads the anti-forgery token from the current document.
func (p *Page) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readToken()
}

// SetToken replaces the token in the document, as a host page does when it rotates tokens.
func (p *Page) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc.Find(tokenMetaSel).SetAttr("content", token)
	p.doc.Find(fmt.Sprintf(tokenInputSelFmt, p.tokenField)).SetAttr("value", token)
}

// HTML renders the current document, including any re-rendered counters.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return goquery.OuterHtml(p.doc.Selection)
}

func (p *Page) readToken() string {
	if token, ok := p.doc.Find(tokenMetaSel).First().Attr("content"); ok && token != "" {
		return token
	}
	token, _ := p.doc.Find(fmt.Sprintf(tokenInputSelFmt, p.tokenField)).First().Attr("value")
	return token
}

func (p *Page) readLoginURL() string {
	href, ok := p.doc.Find(loginSelector).First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		p.logger.Warnf("ignoring malformed login link %q: %v", href, err)
		return ""
	}
	return p.url.ResolveReference(ref).String()
}

func (p *Page) registerTargets() {
	p.doc.Find(targetSelector).Each(func(_ int, s *goquery.Selection) {
		target, err := p.newTarget(s)
		if err != nil {
			p.logger.Warnf("skipping reaction target: %v", err)
			return
		}
		if _, dup := p.byID[target.ID()]; dup {
			p.logger.Warnf("skipping duplicate reaction target %s", target.ID())
			return
		}
		p.byID[target.ID()] = target
		p.targets = append(p.targets, target)
	})
}

func (p *Page) newTarget(container *goquery.Selection) (*Target, error) {
	id := strings.TrimSpace(container.AttrOr(attrTargetID, ""))
	if id == "" {
		return nil, fmt.Errorf("element without an id")
	}
	kind := entity.TargetKind(container.AttrOr(attrTargetKind, ""))
	rawEndpoint := strings.TrimSpace(container.AttrOr(attrEndpoint, ""))
	if rawEndpoint == "" {
		return nil, fmt.Errorf("target %s has no endpoint", id)
	}
	ref, err := url.Parse(rawEndpoint)
	if err != nil {
		return nil, fmt.Errorf("target %s: invalid endpoint: %w", id, err)
	}

	like := p.ownControl(container, entity.ReactionLike)
	dislike := p.ownControl(container, entity.ReactionDislike)
	if like.Length() == 0 || dislike.Length() == 0 {
		return nil, fmt.Errorf("target %s is missing its like/dislike pair", id)
	}

	view := &selectionView{page: p, like: like, dislike: dislike}
	return NewTarget(id, kind, p.url.ResolveReference(ref).String(),
		p.initialCount(id, like), p.initialCount(id, dislike), view)
}

// ownControl finds the control whose nearest target ancestor is container, so
// a post never picks up the counters of a comment nested inside it.
func (p *Page) ownControl(container *goquery.Selection, direction entity.ReactionType) *goquery.Selection {
	found := container.Find(fmt.Sprintf("[data-reaction=%q]", direction)).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Closest(targetSelector).IsSelection(container)
	})
	if found.Length() > 1 {
		p.logger.Warnf("target %s has %d %s controls, using the first", container.AttrOr(attrTargetID, ""), found.Length(), direction)
	}
	return found.First()
}

func (p *Page) initialCount(id string, control *goquery.Selection) int {
	raw, ok := control.Attr(attrCount)
	if !ok {
		fields := strings.Fields(labelOf(control))
		if len(fields) > 0 {
			raw = fields[len(fields)-1]
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		p.logger.Warnf("target %s: unreadable counter %q, assuming 0", id, raw)
		return 0
	}
	return n
}

func labelOf(s *goquery.Selection) string {
	if goquery.NodeName(s) == "input" {
		return s.AttrOr("value", "")
	}
	return s.Text()
}

// selectionView writes labels back into the page's document.
type selectionView struct {
	page    *Page
	like    *goquery.Selection
	dislike *goquery.Selection
}

func (v *selectionView) Render(likes, dislikes int) {
	v.page.mu.Lock()
	defer v.page.mu.Unlock()
	setLabel(v.like, LikeLabel(likes))
	setLabel(v.dislike, DislikeLabel(dislikes))
	if _, ok := v.like.Attr(attrCount); ok {
		v.like.SetAttr(attrCount, strconv.Itoa(likes))
	}
	if _, ok := v.dislike.Attr(attrCount); ok {
		v.dislike.SetAttr(attrCount, strconv.Itoa(dislikes))
	}
}

func setLabel(s *goquery.Selection, label string) {
	if goquery.NodeName(s) == "input" {
		s.SetAttr("value", label)
		return
	}
	s.SetText(label)
}
