package reactionsync

import (
	"context"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	applogger "github.com/mikiasgoitom/reactsync/internal/infrastructure/logger"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// TokenSource yields the anti-forgery token to send with a mutation.
type TokenSource interface {
	Token() string
}

// StaticToken is a token read once at page load.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// TokenFunc re-reads the token on every call.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Redirector is notified when a mutation is rejected as unauthorized.
type Redirector interface {
	Redirect() bool
}

// TriggerEvent is one activation of a like or dislike control.
type TriggerEvent struct {
	direction        entity.ReactionType
	defaultPrevented bool
}

func NewTriggerEvent(direction entity.ReactionType) *TriggerEvent {
	return &TriggerEvent{direction: direction}
}

func (e *TriggerEvent) Direction() entity.ReactionType { return e.direction }

// PreventDefault stops the control's native form submission.
func (e *TriggerEvent) PreventDefault() { e.defaultPrevented = true }

func (e *TriggerEvent) DefaultPrevented() bool { return e.defaultPrevented }

// Controller binds one Target to the mutation client. It keeps at most one
// mutation in flight for its target; activations while one is pending are dropped.
type Controller struct {
	target     *Target
	client     Submitter
	tokens     TokenSource
	redirector Redirector
	logger     usecasecontract.IAppLogger
}

func NewController(target *Target, client Submitter, tokens TokenSource, redirector Redirector, logger usecasecontract.IAppLogger) *Controller {
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &Controller{
		target:     target,
		client:     client,
		tokens:     tokens,
		redirector: redirector,
		logger:     applogger.OrNop(logger),
	}
}

func (c *Controller) Target() *Target { return c.target }

// Activate handles one trigger activation. It blocks until the mutation
// completes and reports the outcome and whether a request was sent at all.
// The trigger's default action is always suppressed so a dropped activation
// cannot fall through to a native submit.
func (c *Controller) Activate(ctx context.Context, ev *TriggerEvent) (Outcome, bool) {
	ev.PreventDefault()

	if !c.target.tryBegin() {
		c.logger.Debugf("dropped %s on %s: mutation already pending", ev.Direction(), c.target.ID())
		return Dropped(), false
	}
	defer c.target.finish()

	req, err := NewMutationRequest(c.target, ev.Direction(), c.tokens.Token())
	if err != nil {
		c.logger.Warnf("reaction on %s not sent: %v", c.target.ID(), err)
		return Failure("%v", err), false
	}

	outcome := c.client.Submit(ctx, req)
	switch outcome.Kind {
	case OutcomeSuccess:
		c.target.ApplySuccess(outcome.Likes, outcome.Dislikes)
	case OutcomeUnauthorized:
		if c.redirector == nil {
			c.logger.Errorf("%s on %s unauthorized and no redirector configured", ev.Direction(), c.target.ID())
		} else {
			c.redirector.Redirect()
		}
	default:
		c.logger.Warnf("%s on %s failed: %s", ev.Direction(), c.target.ID(), outcome.Detail)
	}
	return outcome, true
}
