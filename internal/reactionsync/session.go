package reactionsync

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/config"
	applogger "github.com/mikiasgoitom/reactsync/internal/infrastructure/logger"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// Session wires one page load: a Controller per registered target, sharing
// the page's token source and login redirector.
type Session struct {
	page        *Page
	redirector  *AuthRedirector
	controllers map[string]*Controller
}

// NewSession builds the controllers for every target on page. With
// cfg.RefreshTokenPerRequest the token is re-read from the document before
// each submit; otherwise the token read at load time is used throughout.
func NewSession(page *Page, client Submitter, nav Navigator, cfg config.ClientConfig, logger usecasecontract.IAppLogger) *Session {
	logger = applogger.OrNop(logger)

	var tokens TokenSource = StaticToken(page.LoadToken())
	if cfg.RefreshTokenPerRequest {
		tokens = TokenFunc(page.Token)
	}
	loginURL, _ := page.LoginURL()
	redirector := NewAuthRedirector(loginURL, nav, logger)

	s := &Session{
		page:        page,
		redirector:  redirector,
		controllers: make(map[string]*Controller, len(page.targets)),
	}
	for _, target := range page.Targets() {
		s.controllers[target.ID()] = NewController(target, client, tokens, redirector, logger)
	}
	return s
}

func (s *Session) Page() *Page { return s.page }

func (s *Session) Controller(id string) (*Controller, bool) {
	c, ok := s.controllers[id]
	return c, ok
}

// Activate triggers a reaction on the target with the given id.
func (s *Session) Activate(ctx context.Context, id string, direction entity.ReactionType) (Outcome, bool, error) {
	c, ok := s.controllers[id]
	if !ok {
		return Outcome{}, false, fmt.Errorf("no reaction target %q on %s", id, s.page.URL())
	}
	outcome, sent := c.Activate(ctx, NewTriggerEvent(direction))
	return outcome, sent, nil
}
