package reactionsync

import (
	"sync"

	applogger "github.com/mikiasgoitom/reactsync/internal/infrastructure/logger"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// Navigator moves the browsing context to another URL.
type Navigator interface {
	// Replace swaps the current history entry for rawURL.
	Replace(rawURL string)
}

// AuthRedirector sends the browsing context to the login page after an
// unauthorized mutation.
type AuthRedirector struct {
	destination string
	nav         Navigator
	logger      usecasecontract.IAppLogger
}

var _ Redirector = (*AuthRedirector)(nil)

// NewAuthRedirector takes the login URL discovered on the page; an empty
// destination means the page offers no login link.
func NewAuthRedirector(destination string, nav Navigator, logger usecasecontract.IAppLogger) *AuthRedirector {
	return &AuthRedirector{destination: destination, nav: nav, logger: applogger.OrNop(logger)}
}

func (r *AuthRedirector) Destination() (string, bool) {
	return r.destination, r.destination != ""
}

// Redirect replaces the current navigation entry with the login URL. Without
// a known destination or navigator it logs a configuration failure and does
// nothing. It reports whether navigation happened.
func (r *AuthRedirector) Redirect() bool {
	if r.destination == "" {
		r.logger.Errorf("authentication required but the page has no login link")
		return false
	}
	if r.nav == nil {
		r.logger.Errorf("authentication required but no navigator is attached")
		return false
	}
	r.logger.Infof("redirecting to login: %s", r.destination)
	r.nav.Replace(r.destination)
	return true
}

// Location is a browsing context's session history.
type Location struct {
	mu      sync.Mutex
	entries []string
}

var _ Navigator = (*Location)(nil)

func NewLocation(start string) *Location {
	return &Location{entries: []string{start}}
}

// Current returns the URL of the active entry.
func (l *Location) Current() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[len(l.entries)-1]
}

// Push navigates to rawURL, adding a history entry.
func (l *Location) Push(rawURL string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, rawURL)
}

// Replace navigates to rawURL without adding a history entry.
func (l *Location) Replace(rawURL string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[len(l.entries)-1] = rawURL
}

// Back pops the active entry. It returns false at the first entry.
func (l *Location) Back() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 1 {
		return l.entries[0], false
	}
	l.entries = l.entries[:len(l.entries)-1]
	return l.entries[len(l.entries)-1], true
}

// History returns a copy of all entries, oldest first.
func (l *Location) History() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}
